package handler

import (
	"fmt"
	"net/http"
	"time"

	model "autoplate/internal/models"
	"autoplate/internal/repository"
	"autoplate/services/auction/helpers"
	"autoplate/utils"

	"github.com/gin-gonic/gin"
)

type PlateServiceInterface interface {
	ListPlates(filter repository.PlateFilter) ([]model.Plate, error)
	CreatePlate(ownerID uint, number, description string, deadline time.Time) (model.Plate, error)
	GetPlate(id uint) (model.Plate, error)
	UpdatePlate(id uint, number, description string, deadline time.Time, isActive bool) (model.Plate, error)
	DeletePlate(id uint) error
}

type PlateHandler struct {
	service PlateServiceInterface
}

func NewPlateHandler(service PlateServiceInterface) *PlateHandler {
	return &PlateHandler{service: service}
}

// ListPlatesHandler handles GET /plates/ with optional `ordering=deadline`
// and `plate_number__contains=<substr>` query parameters.
func (h *PlateHandler) ListPlatesHandler(c *gin.Context) {
	filter := repository.PlateFilter{
		NumberContains:  c.Query("plate_number__contains"),
		OrderByDeadline: c.Query("ordering") == "deadline",
	}

	plates, err := h.service.ListPlates(filter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListPlatesHandler: error retrieving plates", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.PlateResponse, 0, len(plates))
	for _, p := range plates {
		resp = append(resp, helpers.FromPlate(p))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "plates retrieved successfully")
	helpers.LogSuccess("ListPlatesHandler", "plates retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// CreatePlateHandler handles POST /plates/ (admin only)
func (h *PlateHandler) CreatePlateHandler(c *gin.Context) {
	caller, _ := CurrentUser(c)

	var req helpers.PlateCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreatePlateHandler", err)
		return
	}

	plate, err := h.service.CreatePlate(caller.ID, req.PlateNumber, req.Description, req.Deadline)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreatePlateHandler: failed to create plate", map[string]any{
			"plate_number": req.PlateNumber,
			"owner_id":     caller.ID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.FromPlate(plate), "plate created successfully")
	helpers.LogSuccess("CreatePlateHandler", "plate created successfully", map[string]any{
		"plate_id":     plate.ID,
		"plate_number": plate.PlateNumber,
		"owner_id":     plate.OwnerID,
	})
}

// GetPlateHandler handles GET /plates/:id/
func (h *PlateHandler) GetPlateHandler(c *gin.Context) {
	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "GetPlateHandler", err)
		return
	}

	plate, err := h.service.GetPlate(id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPlateHandler: error retrieving plate", map[string]any{"plate_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.FromPlate(plate), "plate retrieved successfully")
	helpers.LogSuccess("GetPlateHandler", "plate retrieved successfully", map[string]any{"plate_id": plate.ID})
}

// UpdatePlateHandler handles PUT /plates/:id/ (admin only). All fields are
// replaced; omitting is_active keeps the plate active.
func (h *PlateHandler) UpdatePlateHandler(c *gin.Context) {
	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "UpdatePlateHandler", err)
		return
	}

	var req helpers.PlateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdatePlateHandler", err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	plate, err := h.service.UpdatePlate(id, req.PlateNumber, req.Description, req.Deadline, isActive)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdatePlateHandler: failed to update plate", map[string]any{
			"plate_id": id,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.FromPlate(plate), "plate updated successfully")
	helpers.LogSuccess("UpdatePlateHandler", "plate updated successfully", map[string]any{
		"plate_id":     plate.ID,
		"plate_number": plate.PlateNumber,
		"is_active":    plate.IsActive,
	})
}

// DeletePlateHandler handles DELETE /plates/:id/ (admin only). Deletion is
// blocked while bids reference the plate.
func (h *PlateHandler) DeletePlateHandler(c *gin.Context) {
	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "DeletePlateHandler", err)
		return
	}

	if err := h.service.DeletePlate(id); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DeletePlateHandler: failed to delete plate", map[string]any{
			"plate_id": id,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "plate deleted successfully")
	helpers.LogSuccess("DeletePlateHandler", "plate deleted successfully", map[string]any{"plate_id": id})
}
