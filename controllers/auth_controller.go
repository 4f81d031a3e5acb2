package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/alisherkhudoyberdiev/qrplatform/pkg/resp"
	"github.com/alisherkhudoyberdiev/qrplatform/pkg/session"
	"github.com/alisherkhudoyberdiev/qrplatform/services"
	"github.com/alisherkhudoyberdiev/qrplatform/utils"
)

type AuthController struct {
	svc   *services.AuthService
	store *session.Store
}

func NewAuthController(svc *services.AuthService, store *session.Store) *AuthController {
	return &AuthController{svc: svc, store: store}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email and password are required")
		return
	}

	result, err := ac.svc.Login(req.Email, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	sess := session.Session{
		AdminID:      result.AdminID,
		RestaurantID: result.RestaurantID,
		Email:        result.Email,
		IsLoggedIn:   true,
		IsSuperAdmin: result.IsSuperAdmin,
	}
	if err := ac.store.Save(c, sess); err != nil {
		respondErr(c, err)
		return
	}

	resp.OK(c, gin.H{
		"isSuperAdmin":   result.IsSuperAdmin,
		"restaurantId":   nullable(result.RestaurantID),
		"restaurantName": nullable(result.RestaurantName),
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	ac.store.Clear(c)
	resp.OK(c, gin.H{"loggedOut": true})
}

// Me reports the effective principal, resolving the acting restaurant's
// display name when scoped.
func (ac *AuthController) Me(c *gin.Context) {
	sess := utils.CurrentSession(c)
	p := sess.Principal()

	name, err := ac.svc.RestaurantName(p.RestaurantID)
	if err != nil {
		respondErr(c, err)
		return
	}

	resp.OK(c, gin.H{
		"email":          sess.Email,
		"isSuperAdmin":   sess.IsSuperAdmin,
		"restaurantId":   nullable(p.RestaurantID),
		"restaurantName": nullable(name),
	})
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
