package repositories

import (
	"context"

	"blogpost/app/models"
)

// BlogPostRepository is the document store holding blog posts.
type BlogPostRepository interface {
	// FindAll returns at most limit posts in the store's natural order.
	// A limit of zero or less returns every post.
	FindAll(ctx context.Context, limit int) ([]*models.BlogPost, error)
	// FindByID returns ErrNotFound when no post has the id.
	FindByID(ctx context.Context, id string) (*models.BlogPost, error)
	// Insert assigns ID and Created before storing the post.
	Insert(ctx context.Context, post *models.BlogPost) error
	// UpdateByID merges the patch into the stored post.
	UpdateByID(ctx context.Context, id string, patch models.BlogPostPatch) error
	// DeleteByID succeeds whether or not the post exists.
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}
