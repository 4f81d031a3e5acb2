package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/alisherkhudoyberdiev/qrplatform/configs"
	"github.com/alisherkhudoyberdiev/qrplatform/middlewares"
	"github.com/alisherkhudoyberdiev/qrplatform/pkg/tenant"
	"github.com/alisherkhudoyberdiev/qrplatform/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedSuperAdmin(cfg); err != nil {
		log.Fatalf("seed super-admin failed: %v", err)
	}
	if err := configs.SeedDemo(cfg); err != nil {
		log.Fatalf("seed demo data failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	// Edge: subdomain tenants are rewritten, bare paths get their locale.
	resolver := tenant.NewResolver(cfg.RootDomain)
	r.Use(middlewares.TenantRewrite(r, resolver))

	routes.RegisterRoutes(r, configs.DB(), cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
