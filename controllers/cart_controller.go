package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Niksiiii/BuConnect/pkg/resp"
	"github.com/Niksiiii/BuConnect/services"
	"github.com/Niksiiii/BuConnect/utils"
)

type CartController struct {
	Carts *services.CartService
	Auth  *services.AuthService
}

func NewCartController(carts *services.CartService, auth *services.AuthService) *CartController {
	return &CartController{Carts: carts, Auth: auth}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	resp.OK(c, cc.Carts.Cart(utils.CurrentUserID(c)))
}

type AddToCartReq struct {
	VendorID string `json:"vendorId" binding:"required"`
	ItemID   string `json:"itemId" binding:"required"`
}

// POST /cart/items
func (cc *CartController) Add(c *gin.Context) {
	var req AddToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Carts.Add(utils.CurrentUserID(c), req.VendorID, req.ItemID); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, cc.Carts.Cart(utils.CurrentUserID(c)))
}

// DELETE /cart/items/:id
func (cc *CartController) Remove(c *gin.Context) {
	if err := cc.Carts.Remove(utils.CurrentUserID(c), c.Param("id")); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, cc.Carts.Cart(utils.CurrentUserID(c)))
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	cc.Carts.Clear(utils.CurrentUserID(c))
	resp.OK(c, gin.H{"cleared": true})
}

// POST /orders — submit the food cart to the ledger
func (cc *CartController) PlaceOrder(c *gin.Context) {
	user, ok := currentUser(c, cc.Auth)
	if !ok {
		return
	}
	order, err := cc.Carts.PlaceOrder(user)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// confirmation payload includes the pickup code for the student
	resp.Created(c, gin.H{"order": order, "pickupCode": order.PickupCode})
}
