package services

import (
	"context"
	"errors"
	"fmt"

	"blogpost/app/apperr"
	"blogpost/app/models"
	"blogpost/app/repositories"
)

// MaxListSize caps the number of posts returned by List.
const MaxListSize = 10

// BlogPostService handles business logic for blog posts. Every method
// makes at most one store call.
type BlogPostService struct {
	repo repositories.BlogPostRepository
}

// NewBlogPostService creates a new BlogPostService
func NewBlogPostService(repo repositories.BlogPostRepository) *BlogPostService {
	return &BlogPostService{repo: repo}
}

// List returns up to MaxListSize posts.
func (s *BlogPostService) List(ctx context.Context) ([]*models.BlogPost, error) {
	posts, err := s.repo.FindAll(ctx, MaxListSize)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list posts: %w", err))
	}
	return posts, nil
}

// Get returns the post with the id, or a not-found error.
func (s *BlogPostService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(fmt.Sprintf("get post %s", id), err)
	}
	return post, nil
}

// Create validates the request and inserts exactly its title, content and
// author.
func (s *BlogPostService) Create(ctx context.Context, req models.CreateBlogPostRequest) (*models.BlogPost, error) {
	if field := req.MissingField(); field != "" {
		return nil, apperr.BadRequest(fmt.Sprintf("Missing `%s` in request body", field))
	}
	if err := req.Validate(); err != nil {
		return nil, invalidField(err)
	}

	post := req.NewBlogPost()
	if err := s.repo.Insert(ctx, post); err != nil {
		return nil, apperr.Internal(fmt.Errorf("create post: %w", err))
	}
	return post, nil
}

// Update merges the updatable fields present in req into the post at
// pathID. The body id must be present and equal to pathID.
func (s *BlogPostService) Update(ctx context.Context, pathID string, req models.UpdateBlogPostRequest) error {
	bodyID := req.BodyID()
	if pathID == "" || bodyID == "" || pathID != bodyID {
		return apperr.BadRequest(fmt.Sprintf(
			"Request path id (%s) and request body id (%s) must match", pathID, bodyID))
	}
	if err := req.Validate(); err != nil {
		return invalidField(err)
	}

	if err := s.repo.UpdateByID(ctx, pathID, req.Patch()); err != nil {
		return storeError(fmt.Sprintf("update post %s", pathID), err)
	}
	return nil
}

// Delete removes the post. Missing posts are not an error.
func (s *BlogPostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return apperr.Internal(fmt.Errorf("delete post %s: %w", id, err))
	}
	return nil
}

// Health checks the store is reachable.
func (s *BlogPostService) Health(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return apperr.Internal(fmt.Errorf("ping store: %w", err))
	}
	return nil
}

func storeError(op string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.NotFound()
	}
	return apperr.Internal(fmt.Errorf("%s: %w", op, err))
}

func invalidField(err error) error {
	field := models.InvalidField(err)
	if field == "" {
		return apperr.BadRequest("Invalid request body")
	}
	return apperr.BadRequest(fmt.Sprintf("Invalid `%s` in request body", field))
}
