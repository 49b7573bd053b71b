package handler

import (
	"errors"
	"net/http"

	apperrors "eventflow/pkg/app_errors"
	"eventflow/pkg/logger"
	"eventflow/pkg/validator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondBindError(c, err)
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		respondBindError(c, err)
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
		return err
	}
	return nil
}

// respondBindError 驗證錯誤回傳各欄位訊息，格式錯誤只回傳通用訊息
func respondBindError(c *gin.Context, err error) {
	if fields := validator.FieldErrors(err); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid input",
			"fields": fields,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Invalid request format",
	})
}

type idURI struct {
	ID int `uri:"id" binding:"required,min=1"`
}

// handleError 將 service 錯誤轉成 HTTP 回應；訊息會直接顯示給使用者
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrProfileNotFound):
		log.Warn("Profile not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
	case errors.Is(err, apperrors.ErrQRCodeNotReady):
		log.Warn("QR code not ready")
		c.JSON(http.StatusNotFound, gin.H{"error": "QR code not available"})
	case errors.Is(err, apperrors.ErrForbidden):
		log.Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": forbiddenMessage(operation)})
	case errors.Is(err, apperrors.ErrNotRegistered):
		log.Warn("Not registered")
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not registered for this event."})
	case errors.Is(err, apperrors.ErrUnauthorized):
		log.Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, apperrors.ErrUsernameTaken):
		log.Warn("Username taken")
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func forbiddenMessage(operation string) string {
	switch operation {
	case "UpdateEvent":
		return "You are not authorized to edit this event."
	case "DeleteEvent":
		return "You are not authorized to delete this event."
	case "ListRegistrations":
		return "Only the organizer can view registrations."
	default:
		return "You are not allowed to do that."
	}
}
