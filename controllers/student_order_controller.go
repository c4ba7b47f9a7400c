package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Niksiiii/BuConnect/pkg/resp"
	"github.com/Niksiiii/BuConnect/services"
	"github.com/Niksiiii/BuConnect/utils"
)

type StudentOrderController struct {
	Orders *services.OrderService
}

func NewStudentOrderController(orders *services.OrderService) *StudentOrderController {
	return &StudentOrderController{Orders: orders}
}

// GET /orders — the student's history, split into active and completed
func (oc *StudentOrderController) List(c *gin.Context) {
	active, completed := oc.Orders.StudentOrders(utils.CurrentUserID(c))
	resp.OK(c, gin.H{"active": active, "completed": completed})
}

type VerifyReq struct {
	Code string `json:"code" binding:"required"`
}

// POST /orders/:id/verify — code entry at pickup; a match delivers the order
func (oc *StudentOrderController) Verify(c *gin.Context) {
	var req VerifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	verified, err := oc.Orders.VerifyPickup(utils.CurrentUserID(c), c.Param("id"), req.Code)
	if err != nil {
		orderError(c, err)
		return
	}
	if !verified {
		resp.OK(c, gin.H{"verified": false, "error": "Invalid OTP. Please try again."})
		return
	}
	resp.OK(c, gin.H{"verified": true, "status": "delivered"})
}
