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

// CategoryController manages CRUD operations for categories.
type CategoryController struct {
	categories *store.CategoryStore
}

// NewCategoryController creates a new CategoryController instance.
func NewCategoryController(categories *store.CategoryStore) *CategoryController {
	return &CategoryController{categories: categories}
}

type categoryRequest struct {
	Name      string `json:"name" binding:"required,min=1"`
	URLHandle string `json:"url_handle" binding:"required"`
}

// CreateCategory stores a new category.
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req categoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}

	category := models.Category{
		Name:      strings.TrimSpace(req.Name),
		URLHandle: strings.TrimSpace(req.URLHandle),
	}
	created, err := c.categories.Create(&category)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to create category")
		return
	}

	utils.InvalidateByPrefix("cache:categories:")
	utils.Success(ctx, created)
}

// ListCategories returns all categories.
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	const cacheKey = "cache:categories:list"
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	categories, err := c.categories.GetAll()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to list categories")
		return
	}

	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: categories}
	utils.CacheSetJSON(cacheKey, wrapper, time.Hour)
	utils.Success(ctx, categories)
}

// GetCategory returns a single category by id.
func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id := ctx.Param("id")

	category, err := c.categories.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(ctx, http.StatusNotFound, 40430, "category not found")
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to load category")
		return
	}

	utils.Success(ctx, category)
}

// UpdateCategory overwrites the category's name and URL handle.
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id := ctx.Param("id")

	var req categoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
		return
	}

	updated, err := c.categories.Update(id, models.Category{
		Name:      strings.TrimSpace(req.Name),
		URLHandle: strings.TrimSpace(req.URLHandle),
	})
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(ctx, http.StatusNotFound, 40431, "category not found")
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50033, "failed to update category")
		return
	}

	utils.InvalidateByPrefix("cache:categories:")
	utils.Success(ctx, updated)
}

// DeleteCategory removes a category. Posts keep existing; they simply lose
// the reference.
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id := ctx.Param("id")

	deleted, err := c.categories.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(ctx, http.StatusNotFound, 40432, "category not found")
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50034, "failed to delete category")
		return
	}

	utils.InvalidateByPrefix("cache:categories:")
	utils.InvalidateByPrefix("cache:posts:")
	utils.Success(ctx, deleted)
}
