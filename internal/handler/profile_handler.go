package handler

import (
	"net/http"
	"time"

	"eventflow/internal/model"
	"eventflow/internal/service"
	"eventflow/pkg/validator"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profiles      service.ProfileService
	events        service.EventService
	registrations service.RegistrationService
}

func NewProfileHandler(
	profiles service.ProfileService,
	events service.EventService,
	registrations service.RegistrationService,
) *ProfileHandler {
	return &ProfileHandler{
		profiles:      profiles,
		events:        events,
		registrations: registrations,
	}
}

func (h *ProfileHandler) RegisterRoutes(r gin.IRouter, auth *AuthMiddleware) {
	router := r.Group("/me", auth.Required())
	{
		router.GET("/dashboard", h.Dashboard)
		router.GET("/profile", h.GetProfile)
		router.PUT("/profile", h.UpdateProfile)
		router.GET("/events", h.MyEvents)
		router.GET("/registrations", h.MyRegistrations)
	}
}

// UpdateProfileRequest 未帶的欄位保持不變；gender、birth_date 與社群連結給空字串代表清除
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" binding:"omitempty,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Education *string `json:"education" binding:"omitempty,max=200"`
	Location  *string `json:"location" binding:"omitempty,max=100"`
	Gender    *string `json:"gender" binding:"omitempty,oneof=Male Female|eq="`
	BirthDate *string `json:"birth_date" binding:"omitempty,isodate"`
	Bio       *string `json:"bio"`
	LinkedIn  *string `json:"linkedin" binding:"omitempty,url|eq="`
	GitHub    *string `json:"github" binding:"omitempty,url|eq="`
	Instagram *string `json:"instagram" binding:"omitempty,url|eq="`
}

type DashboardResponse struct {
	User             model.UserResponse    `json:"user"`
	Profile          *model.Profile        `json:"profile"`
	RegisteredEvents []model.EventResponse `json:"registered_events"`
	OrganizedEvents  []model.EventResponse `json:"organized_events"`
}

func (h *ProfileHandler) Dashboard(c *gin.Context) {
	user := mustCurrentUser(c)
	dashboard, err := h.profiles.Dashboard(c, user.ID)
	if err != nil {
		handleError(c, err, "Dashboard")
		return
	}
	c.JSON(http.StatusOK, DashboardResponse{
		User:             model.NewUserResponse(user),
		Profile:          dashboard.Profile,
		RegisteredEvents: model.NewEventResponses(dashboard.RegisteredEvents),
		OrganizedEvents:  model.NewEventResponses(dashboard.OrganizedEvents),
	})
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user := mustCurrentUser(c)
	profile, err := h.profiles.Get(c, user.ID)
	if err != nil {
		handleError(c, err, "GetProfile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user := mustCurrentUser(c)
	var req UpdateProfileRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	params := model.UpdateProfileParams{
		FullName:  req.FullName,
		Phone:     req.Phone,
		Education: req.Education,
		Location:  req.Location,
		Bio:       req.Bio,
		LinkedIn:  req.LinkedIn,
		GitHub:    req.GitHub,
		Instagram: req.Instagram,
	}
	if req.Gender != nil {
		gender := model.Gender(*req.Gender)
		params.Gender = &gender
	}
	if req.BirthDate != nil {
		// 空字串代表清除，以零值時間傳給 repository
		var birthDate time.Time
		if *req.BirthDate != "" {
			birthDate, _ = time.Parse(validator.DateLayout, *req.BirthDate)
		}
		params.BirthDate = &birthDate
	}
	if params.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}

	profile, err := h.profiles.Update(c, user.ID, params)
	if err != nil {
		handleError(c, err, "UpdateProfile")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully.",
		"profile": profile,
	})
}

func (h *ProfileHandler) MyEvents(c *gin.Context) {
	user := mustCurrentUser(c)
	events, err := h.events.ListByOrganizer(c, user.ID)
	if err != nil {
		handleError(c, err, "MyEvents")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": model.NewEventResponses(events)})
}

func (h *ProfileHandler) MyRegistrations(c *gin.Context) {
	user := mustCurrentUser(c)
	events, err := h.registrations.MyRegistrations(c, user.ID)
	if err != nil {
		handleError(c, err, "MyRegistrations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": model.NewEventResponses(events)})
}
