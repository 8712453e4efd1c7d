package models

// MissingField returns the JSON name of the first required field absent from
// the request, checked in the order title, content, author. It returns ""
// when every field is present.
func (r *CreateBlogPostRequest) MissingField() string {
	switch {
	case r.Title == nil:
		return "title"
	case r.Content == nil:
		return "content"
	case r.Author == nil:
		return "author"
	}
	return ""
}

// Validate runs the struct tag rules on the request.
func (r *CreateBlogPostRequest) Validate() error {
	return validate.Struct(r)
}

// NewBlogPost builds the document to insert. Call only after MissingField
// returned "".
func (r *CreateBlogPostRequest) NewBlogPost() *BlogPost {
	return &BlogPost{
		Title:   *r.Title,
		Content: *r.Content,
		Author:  *r.Author,
	}
}

// Validate runs the struct tag rules on the request.
func (r *UpdateBlogPostRequest) Validate() error {
	return validate.Struct(r)
}

// BodyID returns the id carried in the body, or "" when absent.
func (r *UpdateBlogPostRequest) BodyID() string {
	if r.ID == nil {
		return ""
	}
	return *r.ID
}

// Patch collects the updatable fields present in the request.
func (r *UpdateBlogPostRequest) Patch() BlogPostPatch {
	return BlogPostPatch{
		Title:   r.Title,
		Content: r.Content,
		Author:  r.Author,
	}
}
