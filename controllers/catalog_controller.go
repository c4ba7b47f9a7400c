package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Niksiiii/BuConnect/pkg/resp"
	"github.com/Niksiiii/BuConnect/repository"
)

type CatalogController struct {
	Catalog *repository.CatalogRepository
}

func NewCatalogController(catalog *repository.CatalogRepository) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// GET /vendors
func (cc *CatalogController) Vendors(c *gin.Context) {
	vendors, err := cc.Catalog.Vendors()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"vendors": vendors})
}

// GET /vendors/:id
func (cc *CatalogController) Vendor(c *gin.Context) {
	v, err := cc.Catalog.Vendor(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "vendor not found")
		return
	}
	resp.OK(c, v)
}

// GET /vendors/:id/menu
func (cc *CatalogController) Menu(c *gin.Context) {
	if _, err := cc.Catalog.Vendor(c.Param("id")); err != nil {
		resp.NotFound(c, "vendor not found")
		return
	}
	items, err := cc.Catalog.MenuForVendor(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /laundry/items
func (cc *CatalogController) LaundryItems(c *gin.Context) {
	items, err := cc.Catalog.LaundryItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
