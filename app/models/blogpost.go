package models

import (
	"errors"
	"strings"
	"time"
)

// FullName joins first and last name with a single space, trimmed.
func (a Author) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Represent maps a stored blog post to its API representation.
func Represent(post *BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
		Author:  post.Author.FullName(),
	}
}

// RepresentAll maps posts in order. The result is never nil.
func RepresentAll(posts []*BlogPost) []BlogPostResponse {
	out := make([]BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, Represent(post))
	}
	return out
}

// Validate checks if the post meets all validation requirements
func (p *BlogPost) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.ID == "" {
		return errors.New("id cannot be empty")
	}
	if p.Created.IsZero() {
		return errors.New("created cannot be zero")
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *BlogPost) BeforeCreate() {
	if p.Created.IsZero() {
		p.Created = time.Now().UTC()
	}
}

// Apply writes the fields present in the patch onto the post.
func (p *BlogPost) Apply(patch BlogPostPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Author != nil {
		p.Author = *patch.Author
	}
}

// IsEmpty reports whether the patch carries no fields.
func (p BlogPostPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Author == nil
}
