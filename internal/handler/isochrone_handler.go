package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/application"
	"github.com/Kilat-Pet-Delivery/service-isochrone/internal/response"
)

// IsochroneHandler handles HTTP requests for isochrone computation.
type IsochroneHandler struct {
	service *application.IsochroneService
}

// NewIsochroneHandler creates a new IsochroneHandler.
func NewIsochroneHandler(service *application.IsochroneService) *IsochroneHandler {
	return &IsochroneHandler{service: service}
}

// RegisterRoutes registers isochrone routes.
func (h *IsochroneHandler) RegisterRoutes(r *gin.RouterGroup) {
	isochrones := r.Group("/v2/isochrones")
	{
		isochrones.POST("/:profile", h.RequestIsochrones)
	}
}

// RequestIsochrones handles POST /v2/isochrones/:profile.
func (h *IsochroneHandler) RequestIsochrones(c *gin.Context) {
	var req application.IsochronesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RequestIsochrones(c.Request.Context(), c.Param("profile"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, result)
}
