// Package seed generates placeholder blog posts for tests and `db seed`.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"

	"blogpost/app/models"
	"blogpost/app/repositories"
)

var (
	titles = []string{
		"Blah One", "Blah Two", "The Blah", "The Blah Blah", "The Super Blah",
	}
	contents = []string{
		"Yup Yup Yup Yup Yup Yup",
		"In Space, no one can hear you scream",
		"Ambition is always the shadow of dreams",
	}
	firstNames = []string{"Russ", "Darth", "Luke", "R2", "James"}
	lastNames  = []string{"Sabs", "Vader", "Skywalker", "D2", "Kirk"}
)

// Generator picks field values from fixed pools.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a Generator; equal seeds give equal sequences.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rnd.IntN(len(pool))]
}

// BlogPost returns an unsaved post with every field populated.
func (g *Generator) BlogPost() *models.BlogPost {
	return &models.BlogPost{
		Title:   g.pick(titles),
		Content: g.pick(contents),
		Author: models.Author{
			FirstName: g.pick(firstNames),
			LastName:  g.pick(lastNames),
		},
	}
}

// CreateRequest returns a complete create payload.
func (g *Generator) CreateRequest() models.CreateBlogPostRequest {
	post := g.BlogPost()
	return models.CreateBlogPostRequest{
		Title:   &post.Title,
		Content: &post.Content,
		Author:  &post.Author,
	}
}

// Insert stores n generated posts and returns them with ids assigned.
func (g *Generator) Insert(ctx context.Context, repo repositories.BlogPostRepository, n int) ([]*models.BlogPost, error) {
	posts := make([]*models.BlogPost, 0, n)
	for i := 0; i < n; i++ {
		post := g.BlogPost()
		if err := repo.Insert(ctx, post); err != nil {
			return posts, fmt.Errorf("seed post %d: %w", i+1, err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}
