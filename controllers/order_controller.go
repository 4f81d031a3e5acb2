package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alisherkhudoyberdiev/qrplatform/pkg/poll"
	"github.com/alisherkhudoyberdiev/qrplatform/pkg/resp"
	"github.com/alisherkhudoyberdiev/qrplatform/services"
	"github.com/alisherkhudoyberdiev/qrplatform/utils"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// List is the admin order list; clients re-fetch it every
// poll.AdminListInterval.
func (oc *OrderController) List(c *gin.Context) {
	scope := utils.CurrentPrincipal(c).RestaurantID
	views, err := oc.svc.List(scope)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, views)
}

// Board serves the kitchen board. The client passes the order ids it saw
// on its previous poll (?known=a,b,c); the response flags everything it
// has not seen yet, plus anything younger than the fresh-age window.
func (oc *OrderController) Board(c *gin.Context) {
	scope := utils.CurrentPrincipal(c).RestaurantID
	known := poll.ParseKnown(c.Query("known"))
	views, err := oc.svc.Board(scope, known, time.Now())
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{
		"orders":          views,
		"refreshInterval": poll.KitchenBoardInterval.Milliseconds(),
	})
}

type setStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (oc *OrderController) SetStatus(c *gin.Context) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "status is required")
		return
	}
	scope := utils.CurrentPrincipal(c).RestaurantID
	order, err := oc.svc.SetStatus(c.Param("id"), req.Status, scope)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) Dashboard(c *gin.Context) {
	scope := utils.CurrentPrincipal(c).RestaurantID
	dash, err := oc.svc.Dashboard(scope, time.Now())
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, dash)
}
