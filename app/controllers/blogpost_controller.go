package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"blogpost/app/apperr"
	"blogpost/app/models"
	"blogpost/app/respond"
	"blogpost/app/services"

	"github.com/gorilla/mux"
)

// maxBodyBytes bounds request bodies read by Create and Edit.
const maxBodyBytes = 1 << 20

// BlogPostController handles HTTP requests for blog posts
type BlogPostController struct {
	service *services.BlogPostService
}

// NewBlogPostController creates a new BlogPostController
func NewBlogPostController(service *services.BlogPostService) *BlogPostController {
	return &BlogPostController{service: service}
}

// Index lists up to ten posts as {"blogpost": [...]}.
func (c *BlogPostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := c.service.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, models.BlogPostList{BlogPosts: models.RepresentAll(posts)})
}

// Show returns a single post.
func (c *BlogPostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := c.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, models.Represent(post))
}

// Create inserts a post and echoes its representation with 201.
func (c *BlogPostController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlogPostRequest
	if err := decodeBody(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	post, err := c.service.Create(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, models.Represent(post))
}

// Edit applies a partial update and answers 204 with no body.
func (c *BlogPostController) Edit(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBlogPostRequest
	if err := decodeBody(w, r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := c.service.Update(r.Context(), mux.Vars(r)["id"], req); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}

// Delete removes a post and answers 204 whether or not it existed.
func (c *BlogPostController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}

// Health reports whether the store answers.
func (c *BlogPostController) Health(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Health(r.Context()); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound is the catch-all for unknown routes and methods.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, r, apperr.NotFound())
}

// decodeBody reads exactly one JSON value into dst. An empty body leaves
// dst zero so the service can name what is missing.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperr.BadRequest("Invalid JSON in request body")
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var sizeErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return apperr.BadRequest(fmt.Sprintf("Invalid `%s` in request body", typeErr.Field))
	case errors.As(err, &sizeErr):
		return apperr.BadRequest("Request body too large")
	default:
		return apperr.BadRequest("Invalid JSON in request body")
	}
}
