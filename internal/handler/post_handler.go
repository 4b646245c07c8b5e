package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "github.com/atendemei/painel/internal/pkg/errors"
	"github.com/atendemei/painel/internal/pkg/response"
	"github.com/atendemei/painel/internal/service"
)

type PostHandler struct {
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.JSON(c, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "Post not found")
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if appErr.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, "Post not found")
			return
		}
		handleError(c, err)
		return
	}
	response.JSON(c, post)
}

// Create and Update read multipart form fields; the image part is optional.
func (h *PostHandler) Create(c *gin.Context) {
	input := postInput(c)
	image, _ := c.FormFile("image")
	id, err := h.posts.Create(c.Request.Context(), input, image)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Post created successfully"})
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "Post not found")
		return
	}
	input := postInput(c)
	image, _ := c.FormFile("image")
	if err := h.posts.Update(c.Request.Context(), id, input, image); err != nil {
		if appErr.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, "Post not found")
			return
		}
		handleError(c, err)
		return
	}
	response.Message(c, "Post updated successfully")
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "Post not found")
		return
	}
	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		if appErr.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, "Post not found")
			return
		}
		handleError(c, err)
		return
	}
	response.Message(c, "Post deleted successfully")
}

func postInput(c *gin.Context) service.PostInput {
	return service.PostInput{
		Title:   c.PostForm("title"),
		Resume:  c.PostForm("resume"),
		Content: c.PostForm("content"),
		Author:  c.PostForm("author"),
		Date:    c.PostForm("date"),
	}
}
