package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Niksiiii/BuConnect/entity"
	"github.com/Niksiiii/BuConnect/pkg/resp"
	"github.com/Niksiiii/BuConnect/repository"
	"github.com/Niksiiii/BuConnect/services"
)

type VendorOrderController struct {
	Orders  *services.OrderService
	Auth    *services.AuthService
	Catalog *repository.CatalogRepository
}

func NewVendorOrderController(orders *services.OrderService, auth *services.AuthService, catalog *repository.CatalogRepository) *VendorOrderController {
	return &VendorOrderController{Orders: orders, Auth: auth, Catalog: catalog}
}

// vendorScope binds the signed-in vendor identity to the catalog vendor its
// orders are addressed to. Laundry vendors always map to the fixed laundry
// vendor; food vendors match their sign-in name against the catalog.
func (vc *VendorOrderController) vendorScope(u *entity.User) string {
	if u.Role == entity.RoleLaundryVendor {
		return services.LaundryVendorID
	}
	if v, err := vc.Catalog.Vendor(strings.ToLower(u.VendorName)); err == nil {
		return v.ID
	}
	if vendors, err := vc.Catalog.Vendors(); err == nil {
		for _, v := range vendors {
			if strings.EqualFold(v.Name, u.VendorName) {
				return v.ID
			}
		}
	}
	return u.ID
}

// vendorOrderView adds the pickup code once the order is ready; the vendor
// reads it out and the student enters it.
type vendorOrderView struct {
	entity.Order
	PickupCode string `json:"pickupCode,omitempty"`
}

func withCodes(orders []entity.Order) []vendorOrderView {
	out := make([]vendorOrderView, 0, len(orders))
	for _, o := range orders {
		v := vendorOrderView{Order: o}
		if o.Status == entity.StatusReady {
			v.PickupCode = o.PickupCode
		}
		out = append(out, v)
	}
	return out
}

// GET /vendor/orders
func (vc *VendorOrderController) List(c *gin.Context) {
	user, ok := currentUser(c, vc.Auth)
	if !ok {
		return
	}
	b := vc.Orders.VendorOrders(vc.vendorScope(user))
	resp.OK(c, gin.H{
		"new":        withCodes(b.New),
		"processing": withCodes(b.Processing),
		"completed":  withCodes(b.Completed),
	})
}

// PATCH /vendor/orders/:id/accept    pending → confirmed
func (vc *VendorOrderController) Accept(c *gin.Context) {
	vc.transition(c, vc.Orders.VendorAccept)
}

// PATCH /vendor/orders/:id/reject    pending → cancelled
func (vc *VendorOrderController) Reject(c *gin.Context) {
	vc.transition(c, vc.Orders.VendorReject)
}

// PATCH /vendor/orders/:id/prepare   confirmed → preparing
func (vc *VendorOrderController) StartPreparing(c *gin.Context) {
	vc.transition(c, vc.Orders.VendorStartPreparing)
}

// PATCH /vendor/orders/:id/ready     preparing → ready
func (vc *VendorOrderController) MarkReady(c *gin.Context) {
	vc.transition(c, vc.Orders.VendorMarkReady)
}

func (vc *VendorOrderController) transition(c *gin.Context, do func(vendorID, orderID string) error) {
	user, ok := currentUser(c, vc.Auth)
	if !ok {
		return
	}
	if err := do(vc.vendorScope(user), c.Param("id")); err != nil {
		orderError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
