package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/alisherkhudoyberdiev/qrplatform/pkg/resp"
	"github.com/alisherkhudoyberdiev/qrplatform/pkg/session"
	"github.com/alisherkhudoyberdiev/qrplatform/services"
	"github.com/alisherkhudoyberdiev/qrplatform/utils"
)

type SuperAdminController struct {
	svc   *services.RestaurantService
	store *session.Store
}

func NewSuperAdminController(svc *services.RestaurantService, store *session.Store) *SuperAdminController {
	return &SuperAdminController{svc: svc, store: store}
}

func (sc *SuperAdminController) ListRestaurants(c *gin.Context) {
	restaurants, err := sc.svc.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, restaurants)
}

type createRestaurantReq struct {
	Name      string `json:"name" binding:"required"`
	Subdomain string `json:"subdomain"`
}

func (sc *SuperAdminController) CreateRestaurant(c *gin.Context) {
	var req createRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "restaurant name is required")
		return
	}
	rest, err := sc.svc.Create(req.Name, req.Subdomain)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, rest)
}

type createAdminReq struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

func (sc *SuperAdminController) CreateAdmin(c *gin.Context) {
	var req createAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "restaurant, email and password are required")
		return
	}
	admin, err := sc.svc.CreateAdmin(req.RestaurantID, req.Email, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, admin)
}

type switchReq struct {
	RestaurantID string `json:"restaurantId"`
}

// Switch re-scopes the super-admin session to a restaurant, or back to the
// unscoped platform view when the id is empty. The session cookie is the
// only state touched.
func (sc *SuperAdminController) Switch(c *gin.Context) {
	var req switchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// An empty body means "exit restaurant context".
		req.RestaurantID = ""
	}

	acting, err := sc.svc.Switch(req.RestaurantID)
	if err != nil {
		respondErr(c, err)
		return
	}

	sess := utils.CurrentSession(c)
	sess.RestaurantID = acting
	if err := sc.store.Save(c, sess); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurantId": nullable(acting)})
}
