package handlers

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/supabase"
)

type PostsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewPostsHandler(dbClient *supabase.DatabaseClient) *PostsHandler {
	return &PostsHandler{dbClient: dbClient}
}

func (h *PostsHandler) Create(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}
	if len(req.Title) > maxTitleLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title exceeds 100 characters"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}

	post, err := h.dbClient.CreatePost(userID, req.Title, slug, req.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create post",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, postResponse(post))
}

func (h *PostsHandler) List(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	posts, err := h.dbClient.ListPosts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list posts",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.PostResponse, len(posts))
	for i := range posts {
		responses[i] = postResponse(&posts[i])
	}
	c.JSON(http.StatusOK, models.PostListResponse{Posts: responses})
}

func (h *PostsHandler) Get(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	post, err := h.dbClient.GetPost(postID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "post not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, postResponse(post))
}

func (h *PostsHandler) Update(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}
	if req.Title != nil && len(*req.Title) > maxTitleLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "title exceeds 100 characters"})
		return
	}

	post, err := h.dbClient.UpdatePost(postID, userID, &req)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "post not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, postResponse(post))
}

func (h *PostsHandler) Delete(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.dbClient.DeletePost(postID, userID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "post not found",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// slugify lowercases the title and collapses runs of non-alphanumeric
// characters into single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func postResponse(post *models.Post) models.PostResponse {
	resp := models.PostResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		Slug:      post.Slug,
		Published: post.Published,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if post.Body.Valid {
		resp.Body = post.Body.String
	}
	if post.PublishedAt.Valid {
		t := post.PublishedAt.Time
		resp.PublishedAt = &t
	}
	return resp
}
