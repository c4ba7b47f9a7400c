package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Niksiiii/BuConnect/pkg/resp"
	"github.com/Niksiiii/BuConnect/services"
	"github.com/Niksiiii/BuConnect/utils"
)

type LaundryController struct {
	Laundry *services.LaundryService
	Auth    *services.AuthService
}

func NewLaundryController(laundry *services.LaundryService, auth *services.AuthService) *LaundryController {
	return &LaundryController{Laundry: laundry, Auth: auth}
}

// GET /laundry/cart
func (lc *LaundryController) Get(c *gin.Context) {
	resp.OK(c, lc.Laundry.Cart(utils.CurrentUserID(c)))
}

type AddLaundryReq struct {
	ItemID string `json:"itemId" binding:"required"`
}

// POST /laundry/cart/items
func (lc *LaundryController) Add(c *gin.Context) {
	var req AddLaundryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := lc.Laundry.Add(utils.CurrentUserID(c), req.ItemID); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, lc.Laundry.Cart(utils.CurrentUserID(c)))
}

// DELETE /laundry/cart/items/:id
func (lc *LaundryController) Remove(c *gin.Context) {
	if err := lc.Laundry.Remove(utils.CurrentUserID(c), c.Param("id")); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, lc.Laundry.Cart(utils.CurrentUserID(c)))
}

// DELETE /laundry/cart
func (lc *LaundryController) Clear(c *gin.Context) {
	lc.Laundry.Clear(utils.CurrentUserID(c))
	resp.OK(c, gin.H{"cleared": true})
}

// POST /laundry/orders
func (lc *LaundryController) PlaceOrder(c *gin.Context) {
	user, ok := currentUser(c, lc.Auth)
	if !ok {
		return
	}
	order, err := lc.Laundry.PlaceOrder(user)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"order": order, "pickupCode": order.PickupCode})
}
