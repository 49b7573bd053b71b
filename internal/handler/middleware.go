package handler

import (
	"errors"
	"net/http"
	"strings"

	"eventflow/internal/model"
	"eventflow/internal/service"
	apperrors "eventflow/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

const (
	userContextKey  = "eventflow.user"
	tokenContextKey = "eventflow.token"
)

type AuthMiddleware struct {
	accounts service.AccountService
}

func NewAuthMiddleware(accounts service.AccountService) *AuthMiddleware {
	return &AuthMiddleware{accounts: accounts}
}

// Required 未登入回 401
func (m *AuthMiddleware) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !m.authenticate(c, token) {
			return
		}
		c.Next()
	}
}

// Optional 有帶 token 才驗證；token 無效仍視為匿名
func (m *AuthMiddleware) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if user, err := m.accounts.Authenticate(c, token); err == nil {
				c.Set(userContextKey, user)
				c.Set(tokenContextKey, token)
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context, token string) bool {
	user, err := m.accounts.Authenticate(c, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return false
		}
		handleError(c, err, "Authenticate")
		c.Abort()
		return false
	}
	c.Set(userContextKey, user)
	c.Set(tokenContextKey, token)
	return true
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// CurrentUser 取得已驗證的使用者
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok && user != nil
}

func mustCurrentUser(c *gin.Context) *model.User {
	user, ok := CurrentUser(c)
	if !ok {
		panic("handler requires AuthMiddleware.Required")
	}
	return user
}

func currentToken(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}
