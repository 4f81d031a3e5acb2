package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/alisherkhudoyberdiev/qrplatform/pkg/resp"
	"github.com/alisherkhudoyberdiev/qrplatform/services"
)

// respondErr maps the domain error taxonomy onto HTTP. Anything outside
// the taxonomy is a backing-store failure: logged, generic 500.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUnauthenticated):
		resp.Unauthorized(c, "invalid credentials")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrAmbiguousCredential):
		resp.Conflict(c, "email is registered in more than one admin table")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, "already exists")
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		resp.ServerError(c)
	}
}
