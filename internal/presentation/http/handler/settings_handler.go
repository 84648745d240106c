package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dguedes/marmitaria-api/internal/application/service"
	"github.com/dguedes/marmitaria-api/internal/presentation/http/dto/request"
	"github.com/dguedes/marmitaria-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings handles fetching store settings
// @Summary Get Settings
// @Description Get the store-wide settings, created with defaults on first call
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings handles settings updates
// @Summary Update Settings
// @Description Apply a partial update to the store-wide settings (admin only)
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateSettingsRequest true "Settings data"
// @Success 200 {object} response.APIResponse
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		StoreName:       req.StoreName,
		StoreAddress:    req.StoreAddress,
		StorePhone:      req.StorePhone,
		LogoURL:         req.LogoURL,
		PrinterType:     req.PrinterType,
		PrinterIP:       req.PrinterIP,
		PrinterPort:     req.PrinterPort,
		SoftwareCompany: req.SoftwareCompany,
		SoftwarePhone:   req.SoftwarePhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
