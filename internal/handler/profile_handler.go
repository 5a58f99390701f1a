package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/application"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/auth"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/middleware"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/response"
)

// AdminProfileHandler handles admin HTTP requests for the profile catalogue.
type AdminProfileHandler struct {
	service *application.ProfileService
}

// NewAdminProfileHandler creates a new AdminProfileHandler.
func NewAdminProfileHandler(service *application.ProfileService) *AdminProfileHandler {
	return &AdminProfileHandler{service: service}
}

// RegisterRoutes registers admin profile routes.
func (h *AdminProfileHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)
	adminRole := middleware.RequireRole(auth.RoleAdmin)

	admin := r.Group("/api/v1/admin")
	admin.Use(authMW, adminRole)
	{
		admin.GET("/profiles", h.ListProfiles)
		admin.GET("/profiles/:profile", h.GetProfile)
		admin.PUT("/profiles/:profile", h.UpdateProfile)
	}
}

// ListProfiles handles GET /api/v1/admin/profiles.
func (h *AdminProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.service.ListProfiles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, profiles)
}

// GetProfile handles GET /api/v1/admin/profiles/:profile.
func (h *AdminProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.Param("profile"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, profile)
}

// UpdateProfile handles PUT /api/v1/admin/profiles/:profile.
func (h *AdminProfileHandler) UpdateProfile(c *gin.Context) {
	var req application.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), c.Param("profile"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, profile)
}
