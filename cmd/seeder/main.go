package main

import (
	"log"

	"github.com/kelseaconrad19/avian-eye-sight/internal/config"
	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
	"github.com/kelseaconrad19/avian-eye-sight/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	tableModels := []interface{}{
		&models.User{},
		&models.Profile{},
		&models.BirdSpecies{},
		&models.Sighting{},
		&models.BibleVerse{},
		&models.ScriptureOverlay{},
	}
	for _, m := range tableModels {
		if err := database.DB.AutoMigrate(m); err != nil {
			log.Fatalf("Failed to migrate table for %T: %v", m, err)
		}
	}

	seeds.SeedSpecies()
	seeds.SeedVerses()

	log.Println("✅ Seeding complete")
}
