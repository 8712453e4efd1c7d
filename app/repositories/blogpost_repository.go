package repositories

import (
	"context"
	"errors"
	"fmt"

	"blogpost/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBlogPostRepository implements BlogPostRepository using BadgerDB
type BadgerBlogPostRepository struct {
	db *badger.DB
}

// NewBadgerBlogPostRepository creates a new BadgerBlogPostRepository
func NewBadgerBlogPostRepository(db *badger.DB) *BadgerBlogPostRepository {
	return &BadgerBlogPostRepository{db: db}
}

// Insert stores a new post under a freshly generated id
func (r *BadgerBlogPostRepository) Insert(ctx context.Context, post *models.BlogPost) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, err := newID()
	if err != nil {
		return err
	}
	post.ID = id
	post.BeforeCreate()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(blogPostKey(post.ID), data)
	})
}

// FindByID retrieves a post by ID
func (r *BadgerBlogPostRepository) FindByID(ctx context.Context, id string) (*models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var post models.BlogPost
	err := r.db.View(func(txn *badger.Txn) error {
		return getBlogPost(txn, id, &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindAll retrieves up to limit posts in key order
func (r *BadgerBlogPostRepository) FindAll(ctx context.Context, limit int) ([]*models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	posts := make([]*models.BlogPost, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(BlogPostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(posts) >= limit {
				break
			}
			var post models.BlogPost
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to read post %s: %w", it.Item().Key(), err)
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateByID merges the patch into the stored post in a single transaction
func (r *BadgerBlogPostRepository) UpdateByID(ctx context.Context, id string, patch models.BlogPostPatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		var post models.BlogPost
		if err := getBlogPost(txn, id, &post); err != nil {
			return err
		}
		post.Apply(patch)

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(blogPostKey(id), data)
	})
}

// DeleteByID deletes a post by ID. Deleting a missing post is not an error.
func (r *BadgerBlogPostRepository) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(blogPostKey(id))
	})
}

// Count returns the number of stored posts
func (r *BadgerBlogPostRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(BlogPostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Ping opens and discards a read transaction to check the store is usable.
func (r *BadgerBlogPostRepository) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.db.IsClosed() {
		return errors.New("database is closed")
	}
	return r.db.View(func(txn *badger.Txn) error { return nil })
}

func getBlogPost(txn *badger.Txn, id string, post *models.BlogPost) error {
	item, err := txn.Get(blogPostKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, post)
	})
}
