package handler

import (
	"mime"
	"net/http"

	"eventflow/internal/model"
	"eventflow/internal/service"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	service service.RegistrationService
}

func NewRegistrationHandler(service service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) RegisterRoutes(r gin.IRouter, auth *AuthMiddleware) {
	router := r.Group("/events/:id", auth.Required())
	{
		router.POST("/register", h.Register)
		router.GET("/ticket", h.DownloadTicket)
		router.GET("/registrations", h.ListRegistrations)
	}
}

func (h *RegistrationHandler) Register(c *gin.Context) {
	user := mustCurrentUser(c)
	var uri idURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	result, err := h.service.Register(c, uri.ID, user)
	if err != nil {
		handleError(c, err, "Register")
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, gin.H{
			"message":    "You are already registered for this event.",
			"registered": true,
			"event":      model.NewEventResponse(result.Event),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "You have successfully registered for the event.",
		"registered": true,
		"event":      model.NewEventResponse(result.Event),
	})
}

func (h *RegistrationHandler) DownloadTicket(c *gin.Context) {
	user := mustCurrentUser(c)
	var uri idURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	ticket, err := h.service.DownloadTicket(c, uri.ID, user)
	if err != nil {
		handleError(c, err, "DownloadTicket")
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": ticket.Filename}))
	c.Data(http.StatusOK, "application/pdf", ticket.Content)
}

func (h *RegistrationHandler) ListRegistrations(c *gin.Context) {
	user := mustCurrentUser(c)
	var uri idURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	users, err := h.service.ListRegistrations(c, user.ID, uri.ID)
	if err != nil {
		handleError(c, err, "ListRegistrations")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"event_id":      uri.ID,
		"registrations": model.NewUserResponses(users),
	})
}
