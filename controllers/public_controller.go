package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/alisherkhudoyberdiev/qrplatform/pkg/poll"
	"github.com/alisherkhudoyberdiev/qrplatform/pkg/resp"
	"github.com/alisherkhudoyberdiev/qrplatform/services"
)

// PublicController serves the unauthenticated customer surface: menus,
// order placement and the polled status page.
type PublicController struct {
	menuSvc  *services.MenuService
	orderSvc *services.OrderService
	restSvc  *services.RestaurantService
}

func NewPublicController(menuSvc *services.MenuService, orderSvc *services.OrderService, restSvc *services.RestaurantService) *PublicController {
	return &PublicController{menuSvc: menuSvc, orderSvc: orderSvc, restSvc: restSvc}
}

func (pc *PublicController) Menu(c *gin.Context) {
	menu, err := pc.menuSvc.Menu(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, menu)
}

func (pc *PublicController) MenuItem(c *gin.Context) {
	item, err := pc.menuSvc.Item(c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}

func (pc *PublicController) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid order payload")
		return
	}
	order, err := pc.orderSvc.PlaceOrder(&req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, gin.H{
		"id":        order.ID,
		"status":    order.Status,
		"createdAt": order.CreatedAt,
		"items":     order.Items,
	})
}

// OrderStatus backs the customer status page, polled every
// poll.CustomerStatusInterval. The order id is the only capability needed.
func (pc *PublicController) OrderStatus(c *gin.Context) {
	status, err := pc.orderSvc.Status(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{
		"order":           status,
		"refreshInterval": poll.CustomerStatusInterval.Milliseconds(),
	})
}

// TenantMenu is the rewrite target for subdomain tenants
// (/r/{slug}/{locale}): it resolves the slug and serves that tenant's
// menu with the negotiated locale.
func (pc *PublicController) TenantMenu(c *gin.Context) {
	rest, err := pc.restSvc.FindBySubdomain(c.Param("subdomain"))
	if err != nil {
		respondErr(c, err)
		return
	}
	menu, err := pc.menuSvc.Menu(rest.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{
		"locale": c.Param("locale"),
		"menu":   menu,
	})
}
