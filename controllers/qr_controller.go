package controllers

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/alisherkhudoyberdiev/qrplatform/repository"
	"github.com/alisherkhudoyberdiev/qrplatform/services"
	"github.com/alisherkhudoyberdiev/qrplatform/utils"
)

// QRController renders the printable QR code linking a table to the
// tenant's public menu.
type QRController struct {
	restRepo   *repository.RestaurantRepository
	baseURL    string
	rootDomain string
}

func NewQRController(restRepo *repository.RestaurantRepository, baseURL, rootDomain string) *QRController {
	return &QRController{restRepo: restRepo, baseURL: baseURL, rootDomain: rootDomain}
}

// MenuQR returns a PNG. Subdomain tenants get their subdomain URL;
// path-only tenants get the /menu/{restaurantId} form. ?table=N is
// carried into the link so the placed order records the table.
func (qc *QRController) MenuQR(c *gin.Context) {
	scope := utils.CurrentPrincipal(c).RestaurantID
	rest, err := qc.restRepo.FindByID(scope)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondErr(c, services.ErrNotFound)
			return
		}
		respondErr(c, err)
		return
	}

	var link string
	if rest.Subdomain != nil && qc.rootDomain != "" {
		link = fmt.Sprintf("https://%s.%s", *rest.Subdomain, qc.rootDomain)
	} else {
		link = fmt.Sprintf("%s/menu/%s", qc.baseURL, rest.ID)
	}
	if table := c.Query("table"); table != "" {
		link += "?table=" + url.QueryEscape(table)
	}

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Data(200, "image/png", png)
}
