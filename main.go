package main

import (
	"github.com/blogts/blogapi/config"
	"github.com/blogts/blogapi/models"
	"github.com/blogts/blogapi/routes"
	"github.com/blogts/blogapi/store"
	"github.com/blogts/blogapi/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{}, &models.Role{},
		&models.Category{}, &models.Post{}, &models.BlogImage{},
	)

	// Seed the fixed roles and the privileged account before accepting
	// requests; a dead store means no startup.
	if err := store.SeedIdentity(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		utils.Sugar.Fatalf("identity seed failed: %v", err)
	}

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
