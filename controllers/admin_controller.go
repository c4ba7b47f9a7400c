package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Niksiiii/BuConnect/pkg/resp"
	"github.com/Niksiiii/BuConnect/repository"
)

// AdminController is a thin read-only surface over the durable mirror.
type AdminController struct {
	Orders *repository.OrderRepository
}

func NewAdminController(orders *repository.OrderRepository) *AdminController {
	return &AdminController{Orders: orders}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	counts, err := ac.Orders.Counts()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, counts)
}

// GET /admin/orders?limit=
func (ac *AdminController) OrderList(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	rows, err := ac.Orders.ListWithCustomers(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}
