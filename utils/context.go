package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/alisherkhudoyberdiev/qrplatform/pkg/session"
)

const (
	CtxSession   = "session"
	CtxPrincipal = "principal"
)

func CurrentSession(c *gin.Context) session.Session {
	if v, ok := c.Get(CtxSession); ok {
		if s, ok := v.(session.Session); ok {
			return s
		}
	}
	return session.Session{}
}

func CurrentPrincipal(c *gin.Context) session.Principal {
	if v, ok := c.Get(CtxPrincipal); ok {
		if p, ok := v.(session.Principal); ok {
			return p
		}
	}
	return session.Principal{}
}
