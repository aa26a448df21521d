package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogts/blogapi/models"
	"github.com/blogts/blogapi/store"
	"github.com/blogts/blogapi/utils"
)

// PostController manages CRUD operations for blog posts.
type PostController struct {
	posts *store.PostStore
}

// NewPostController creates a new PostController instance.
func NewPostController(posts *store.PostStore) *PostController {
	return &PostController{posts: posts}
}

type postRequest struct {
	Author           string    `json:"author" binding:"required"`
	Title            string    `json:"title" binding:"required,min=1"`
	Content          string    `json:"content" binding:"required"`
	ShortDescription string    `json:"short_description"`
	FeaturedImageURL string    `json:"featured_image_url"`
	URLHandle        string    `json:"url_handle" binding:"required"`
	PublishedDate    time.Time `json:"published_date"`
	IsVisible        bool      `json:"is_visible"`
	Categories       []string  `json:"categories"`
}

func (r *postRequest) toModel() models.Post {
	return models.Post{
		Author:           strings.TrimSpace(r.Author),
		Title:            utils.Sanitize(strings.TrimSpace(r.Title)),
		Content:          utils.Sanitize(r.Content),
		ShortDescription: utils.Sanitize(r.ShortDescription),
		FeaturedImageURL: strings.TrimSpace(r.FeaturedImageURL),
		URLHandle:        strings.TrimSpace(r.URLHandle),
		PublishedDate:    r.PublishedDate,
		IsVisible:        r.IsVisible,
	}
}

// CreatePost stores a new post. Unknown category ids are dropped unless the
// store runs in strict mode.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req postRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	post := req.toModel()
	created, err := p.posts.Create(&post, req.Categories)
	if errors.Is(err, store.ErrUnknownCategory) {
		utils.Error(ctx, http.StatusBadRequest, 40021, "unknown category id")
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to create post")
		return
	}

	utils.InvalidateByPrefix("cache:posts:")
	utils.Success(ctx, created)
}

// ListPosts returns all posts with their category sets.
func (p *PostController) ListPosts(ctx *gin.Context) {
	const cacheKey = "cache:posts:list"
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	posts, err := p.posts.GetAll()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to list posts")
		return
	}

	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: posts}
	utils.CacheSetJSON(cacheKey, wrapper, time.Hour)
	utils.Success(ctx, posts)
}

// GetPost returns a single post by id.
func (p *PostController) GetPost(ctx *gin.Context) {
	id := ctx.Param("id")

	cacheKey := "cache:posts:detail:" + id
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	post, err := p.posts.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to load post")
		return
	}

	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: post}
	utils.CacheSetJSON(cacheKey, wrapper, time.Hour)
	utils.Success(ctx, post)
}

// GetPostByURLHandle returns a single post by its URL handle.
func (p *PostController) GetPostByURLHandle(ctx *gin.Context) {
	handle := ctx.Param("urlHandle")

	post, err := p.posts.GetByURLHandle(handle)
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(ctx, http.StatusNotFound, 40421, "post not found")
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to load post")
		return
	}

	utils.Success(ctx, post)
}

// UpdatePost overwrites every field of the post and replaces its category
// set with the supplied one.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	id := ctx.Param("id")

	var req postRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40022, "invalid request payload")
		return
	}

	updated, err := p.posts.Update(id, req.toModel(), req.Categories)
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(ctx, http.StatusNotFound, 40422, "post not found")
		return
	}
	if errors.Is(err, store.ErrUnknownCategory) {
		utils.Error(ctx, http.StatusBadRequest, 40023, "unknown category id")
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50024, "failed to update post")
		return
	}

	utils.InvalidateByPrefix("cache:posts:")
	utils.Success(ctx, updated)
}

// DeletePost removes a post and answers with the removed snapshot.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id := ctx.Param("id")

	deleted, err := p.posts.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(ctx, http.StatusNotFound, 40423, "post not found")
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50025, "failed to delete post")
		return
	}

	utils.InvalidateByPrefix("cache:posts:")
	utils.Success(ctx, deleted)
}
