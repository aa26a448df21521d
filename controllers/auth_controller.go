package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blogts/blogapi/config"
	"github.com/blogts/blogapi/store"
	"github.com/blogts/blogapi/utils"
)

// AuthController handles login and registration.
type AuthController struct {
	users *store.UserStore
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(users *store.UserStore) *AuthController {
	return &AuthController{users: users}
}

// Login verifies credentials and answers with a role-carrying bearer token.
// Unknown email and wrong password produce the same response.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	user, err := a.users.VerifyCredentials(strings.TrimSpace(req.Email), req.Password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "invalid email or password")
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to verify credentials")
		return
	}

	cfg := config.Get()
	roles := store.RoleNames(user)
	token, err := utils.GenerateToken(user.Email, roles, cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50002, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"email": user.Email,
		"roles": roles,
		"token": token,
	})
}

// Register creates a new Reader account.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40002, "invalid request payload")
		return
	}

	user, err := a.users.Register(strings.TrimSpace(req.Email), req.Password)
	if errors.Is(err, store.ErrDuplicateEmail) {
		utils.Error(ctx, http.StatusBadRequest, 40003, "email already registered")
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50003, "failed to register user")
		return
	}

	utils.Success(ctx, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"roles": store.RoleNames(user),
	})
}
