package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Niksiiii/BuConnect/pkg/resp"
	"github.com/Niksiiii/BuConnect/services"
	"github.com/Niksiiii/BuConnect/utils"
)

type DeliveryController struct {
	Delivery *services.DeliveryService
}

func NewDeliveryController(delivery *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Delivery: delivery}
}

// GET /delivery/orders — ready orders with no volunteer yet
func (dc *DeliveryController) Available(c *gin.Context) {
	resp.OK(c, gin.H{"orders": dc.Delivery.Available()})
}

// POST /delivery/orders/:id/accept
func (dc *DeliveryController) Accept(c *gin.Context) {
	req, err := dc.Delivery.Accept(utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		orderError(c, err)
		return
	}
	resp.Created(c, req)
}

type CompleteDeliveryReq struct {
	RequestID string `json:"requestId" binding:"required"`
	Code      string `json:"code" binding:"required"`
}

// POST /delivery/orders/:id/complete — re-validates the pickup code, then
// delivers, closes the request and credits points
func (dc *DeliveryController) Complete(c *gin.Context) {
	var req CompleteDeliveryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := dc.Delivery.Complete(utils.CurrentUserID(c), c.Param("id"), req.RequestID, req.Code)
	if errors.Is(err, services.ErrCodeMismatch) || errors.Is(err, services.ErrInvalidCode) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		orderError(c, err)
		return
	}

	body := gin.H{"delivered": out.Delivered, "pointsAwarded": out.PointsAwarded}
	if out.Partial() {
		// delivered, but a durable step failed; surface it instead of masking
		warnings := []string{}
		if out.RequestErr != nil {
			warnings = append(warnings, "delivery request not closed")
		}
		if out.PointsErr != nil {
			warnings = append(warnings, "points not credited")
		}
		body["warnings"] = warnings
	}
	resp.OK(c, body)
}

// GET /delivery/mine
func (dc *DeliveryController) Mine(c *gin.Context) {
	reqs, err := dc.Delivery.Mine(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deliveries": reqs})
}

// GET /delivery/points
func (dc *DeliveryController) Points(c *gin.Context) {
	points, err := dc.Delivery.Points(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"points": points})
}
