package models

import "time"

// Author is the structured author of a blog post. Either part may be empty.
type Author struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// BlogPost is the persisted blog post document.
type BlogPost struct {
	ID      string    `json:"id"`
	Title   string    `json:"title" validate:"required"`
	Content string    `json:"content"`
	Author  Author    `json:"author"`
	Created time.Time `json:"created"`
}

// BlogPostResponse is the API representation of a BlogPost.
type BlogPostResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// BlogPostList is the body returned when listing blog posts.
type BlogPostList struct {
	BlogPosts []BlogPostResponse `json:"blogpost"`
}

// CreateBlogPostRequest is the payload accepted when creating a blog post.
// A nil field was absent from the request body.
type CreateBlogPostRequest struct {
	Title   *string `json:"title" validate:"omitnil,min=1"`
	Content *string `json:"content"`
	Author  *Author `json:"author"`
}

// UpdateBlogPostRequest is the payload accepted when updating a blog post.
// Only non-nil fields are written.
type UpdateBlogPostRequest struct {
	ID      *string `json:"id"`
	Title   *string `json:"title" validate:"omitnil,min=1"`
	Content *string `json:"content"`
	Author  *Author `json:"author"`
}

// BlogPostPatch is the set of fields a partial update replaces.
type BlogPostPatch struct {
	Title   *string
	Content *string
	Author  *Author
}
