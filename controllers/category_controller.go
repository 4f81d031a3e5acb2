package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/alisherkhudoyberdiev/qrplatform/pkg/resp"
	"github.com/alisherkhudoyberdiev/qrplatform/services"
	"github.com/alisherkhudoyberdiev/qrplatform/utils"
)

type CategoryController struct {
	svc *services.MenuService
}

func NewCategoryController(svc *services.MenuService) *CategoryController {
	return &CategoryController{svc: svc}
}

func (cc *CategoryController) List(c *gin.Context) {
	scope := utils.CurrentPrincipal(c).RestaurantID
	cats, err := cc.svc.ListCategories(scope)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, cats)
}

type categoryReq struct {
	Name string `json:"name" binding:"required"`
}

func (cc *CategoryController) Create(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "category name is required")
		return
	}
	scope := utils.CurrentPrincipal(c).RestaurantID
	cat, err := cc.svc.CreateCategory(scope, req.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, cat)
}

func (cc *CategoryController) Update(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "category name is required")
		return
	}
	scope := utils.CurrentPrincipal(c).RestaurantID
	cat, err := cc.svc.RenameCategory(c.Param("id"), scope, req.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, cat)
}

// Delete cascades to the category's menu items.
func (cc *CategoryController) Delete(c *gin.Context) {
	scope := utils.CurrentPrincipal(c).RestaurantID
	if err := cc.svc.DeleteCategory(c.Param("id"), scope); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
