package handler

import (
	"net/http"
	"time"

	"eventflow/internal/model"
	"eventflow/internal/service"
	"eventflow/pkg/validator"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service       service.EventService
	registrations service.RegistrationService
}

func NewEventHandler(service service.EventService, registrations service.RegistrationService) *EventHandler {
	return &EventHandler{service: service, registrations: registrations}
}

func (h *EventHandler) RegisterRoutes(r gin.IRouter, auth *AuthMiddleware) {
	router := r.Group("/events")
	{
		router.GET("", h.List)
		router.POST("", auth.Required(), h.Create)
		router.GET("/:id", auth.Optional(), h.Get)
		router.PUT("/:id", auth.Required(), h.Update)
		router.DELETE("/:id", auth.Required(), h.Delete)
		router.GET("/:id/qr-code", h.QRCode)
	}
}

// ListEventsQuery 首頁搜尋與日期篩選
type ListEventsQuery struct {
	Q    string `form:"q"`
	Date string `form:"date"`
}

// CreateEventRequest 建立活動請求
type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required"`
	Date        string  `json:"date" binding:"required,isodate"`
	Time        string  `json:"time" binding:"required,clock"`
	Location    string  `json:"location" binding:"required,max=200"`
	Address     string  `json:"address" binding:"required,max=300"`
	MapLink     *string `json:"map_link" binding:"omitempty,url|eq="`
}

// UpdateEventRequest 更新活動請求；未帶的欄位保持不變，map_link 給空字串代表清除
type UpdateEventRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Date        *string `json:"date" binding:"omitempty,isodate"`
	Time        *string `json:"time" binding:"omitempty,clock"`
	Location    *string `json:"location" binding:"omitempty,min=1,max=200"`
	Address     *string `json:"address" binding:"omitempty,min=1,max=300"`
	MapLink     *string `json:"map_link" binding:"omitempty,url|eq="`
}

func (h *EventHandler) List(c *gin.Context) {
	var query ListEventsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	events, err := h.service.List(c, query.Q, model.DateFilter(query.Date))
	if err != nil {
		handleError(c, err, "ListEvents")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"events": model.NewEventResponses(events),
		"query":  query.Q,
		"date":   query.Date,
	})
}

func (h *EventHandler) Get(c *gin.Context) {
	var uri idURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	event, err := h.service.Get(c, uri.ID)
	if err != nil {
		handleError(c, err, "GetEvent")
		return
	}

	resp := model.NewEventResponse(event)
	if user, ok := CurrentUser(c); ok {
		registered, err := h.registrations.IsRegistered(c, event.ID, user.ID)
		if err != nil {
			handleError(c, err, "GetEvent")
			return
		}
		resp.IsRegistered = &registered
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) Create(c *gin.Context) {
	user := mustCurrentUser(c)
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	// 格式已由 isodate / clock 驗證
	date, _ := time.Parse(validator.DateLayout, req.Date)
	clock, _ := time.Parse(validator.ClockLayout, req.Time)
	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        clock,
		Location:    req.Location,
		Address:     req.Address,
		MapLink:     nonEmpty(req.MapLink),
	}
	created, err := h.service.Create(c, user.ID, event)
	if err != nil {
		handleError(c, err, "CreateEvent")
		return
	}
	c.JSON(http.StatusCreated, model.NewEventResponse(created))
}

func (h *EventHandler) Update(c *gin.Context) {
	user := mustCurrentUser(c)
	var uri idURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	params := model.UpdateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Address:     req.Address,
		MapLink:     req.MapLink,
	}
	if req.Date != nil {
		date, _ := time.Parse(validator.DateLayout, *req.Date)
		params.Date = &date
	}
	if req.Time != nil {
		clock, _ := time.Parse(validator.ClockLayout, *req.Time)
		params.Time = &clock
	}
	if params.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}

	updated, err := h.service.Update(c, user.ID, uri.ID, params)
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}
	c.JSON(http.StatusOK, model.NewEventResponse(updated))
}

func (h *EventHandler) Delete(c *gin.Context) {
	user := mustCurrentUser(c)
	var uri idURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	if err := h.service.Delete(c, user.ID, uri.ID); err != nil {
		handleError(c, err, "DeleteEvent")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully."})
}

func (h *EventHandler) QRCode(c *gin.Context) {
	var uri idURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	png, err := h.service.QRCode(c, uri.ID)
	if err != nil {
		handleError(c, err, "EventQRCode")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
