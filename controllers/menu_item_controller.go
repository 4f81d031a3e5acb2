package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/alisherkhudoyberdiev/qrplatform/pkg/resp"
	"github.com/alisherkhudoyberdiev/qrplatform/services"
	"github.com/alisherkhudoyberdiev/qrplatform/utils"
)

type MenuItemController struct {
	svc *services.MenuService
}

func NewMenuItemController(svc *services.MenuService) *MenuItemController {
	return &MenuItemController{svc: svc}
}

func (mc *MenuItemController) List(c *gin.Context) {
	scope := utils.CurrentPrincipal(c).RestaurantID
	items, err := mc.svc.ListItems(scope)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, items)
}

func (mc *MenuItemController) Create(c *gin.Context) {
	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "invalid menu item payload")
		return
	}
	scope := utils.CurrentPrincipal(c).RestaurantID
	item, err := mc.svc.CreateItem(scope, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, item)
}

// Update applies a partial edit: only fields present in the body change.
func (mc *MenuItemController) Update(c *gin.Context) {
	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "invalid menu item payload")
		return
	}
	scope := utils.CurrentPrincipal(c).RestaurantID
	item, err := mc.svc.UpdateItem(c.Param("id"), scope, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}

func (mc *MenuItemController) Delete(c *gin.Context) {
	scope := utils.CurrentPrincipal(c).RestaurantID
	if err := mc.svc.DeleteItem(c.Param("id"), scope); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
