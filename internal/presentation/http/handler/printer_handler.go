package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dguedes/marmitaria-api/internal/application/service"
	"github.com/dguedes/marmitaria-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer status and test HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus handles printer status queries
// @Summary Printer Status
// @Description Report the configured print backend and its reachability
// @Tags printer
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status, err := h.printerService.GetStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printer status retrieved successfully", status)
}

// TestPrint handles sending a test page
// @Summary Test Print
// @Description Send a short test page to the configured print backend
// @Tags printer
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/test [post]
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	result, err := h.printerService.TestPrint(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result.Message, result)
}
