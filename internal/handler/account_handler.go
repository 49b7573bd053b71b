package handler

import (
	"fmt"
	"net/http"

	"eventflow/internal/model"
	"eventflow/internal/service"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	service service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) RegisterRoutes(r gin.IRouter, auth *AuthMiddleware) {
	router := r.Group("/auth")
	{
		router.POST("/signup", h.Signup)
		router.POST("/login", h.Login)
		router.POST("/logout", auth.Required(), h.Logout)
	}
}

// SignupRequest 註冊請求，password_confirm 必須與 password 相同
type SignupRequest struct {
	Username        string  `json:"username" binding:"required,min=3,max=150"`
	Email           *string `json:"email" binding:"omitempty,email|eq="`
	Password        string  `json:"password" binding:"required,min=8"`
	PasswordConfirm string  `json:"password_confirm" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AccountHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	user, err := h.service.Signup(c, service.SignupParams{
		Username: req.Username,
		Email:    nonEmpty(req.Email),
		Password: req.Password,
	})
	if err != nil {
		handleError(c, err, "Signup")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully. Please login.",
		"user":    model.NewUserResponse(user),
	})
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	result, err := h.service.Login(c, req.Username, req.Password)
	if err != nil {
		handleError(c, err, "Login")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("Welcome back, %s!", result.User.Username),
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"user":       model.NewUserResponse(result.User),
	})
}

func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c, currentToken(c)); err != nil {
		handleError(c, err, "Logout")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You have been logged out."})
}
