package handler

import (
	"fmt"
	"net/http"

	model "autoplate/internal/models"
	"autoplate/services/auction/helpers"
	"autoplate/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BiddingServiceInterface interface {
	PlaceBid(userID, plateID uint, amount decimal.Decimal) (model.Bid, error)
	ListBidsForUser(userID uint) ([]model.Bid, error)
	GetBid(callerID, id uint) (model.Bid, error)
	UpdateBid(callerID, id uint, amount decimal.Decimal) (model.Bid, error)
	DeleteBid(callerID, id uint) error
}

type BidHandler struct {
	service BiddingServiceInterface
}

func NewBidHandler(service BiddingServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// ListMyBidsHandler handles GET /bids/
func (h *BidHandler) ListMyBidsHandler(c *gin.Context) {
	caller, _ := CurrentUser(c)

	bids, err := h.service.ListBidsForUser(caller.ID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListMyBidsHandler: error retrieving bids", map[string]any{"user_id": caller.ID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.FromBid(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("ListMyBidsHandler", "bids retrieved successfully", map[string]any{
		"user_id": caller.ID,
		"count":   len(resp),
	})
}

// PlaceBidHandler handles POST /bids/
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	caller, _ := CurrentUser(c)

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(caller.ID, req.PlateID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"plate_id": req.PlateID,
			"user_id":  caller.ID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.FromBid(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":   bid.ID,
		"plate_id": bid.PlateID,
		"user_id":  bid.UserID,
		"amount":   bid.Amount.StringFixed(2),
	})
}

// GetBidHandler handles GET /bids/:id/ (owner only)
func (h *BidHandler) GetBidHandler(c *gin.Context) {
	caller, _ := CurrentUser(c)

	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "GetBidHandler", err)
		return
	}

	bid, err := h.service.GetBid(caller.ID, id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHandler: error retrieving bid", map[string]any{
			"bid_id":  id,
			"user_id": caller.ID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.FromBid(bid), "bid retrieved successfully")
	helpers.LogSuccess("GetBidHandler", "bid retrieved successfully", map[string]any{
		"bid_id":  bid.ID,
		"user_id": caller.ID,
	})
}

// UpdateBidHandler handles PUT /bids/:id/ (owner only, before deadline)
func (h *BidHandler) UpdateBidHandler(c *gin.Context) {
	caller, _ := CurrentUser(c)

	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	bid, err := h.service.UpdateBid(caller.ID, id, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdateBidHandler: failed to update bid", map[string]any{
			"bid_id":  id,
			"user_id": caller.ID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.FromBid(bid), "bid updated successfully")
	helpers.LogSuccess("UpdateBidHandler", "bid updated successfully", map[string]any{
		"bid_id":  bid.ID,
		"user_id": caller.ID,
		"amount":  bid.Amount.StringFixed(2),
	})
}

// DeleteBidHandler handles DELETE /bids/:id/ (owner only, before deadline)
func (h *BidHandler) DeleteBidHandler(c *gin.Context) {
	caller, _ := CurrentUser(c)

	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		helpers.HandleBindError(c, "DeleteBidHandler", err)
		return
	}

	if err := h.service.DeleteBid(caller.ID, id); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DeleteBidHandler: failed to delete bid", map[string]any{
			"bid_id":  id,
			"user_id": caller.ID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid withdrawn successfully")
	helpers.LogSuccess("DeleteBidHandler", "bid withdrawn successfully", map[string]any{
		"bid_id":  id,
		"user_id": caller.ID,
	})
}
