package seeds

import (
	"log"

	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/utils"
)

// SeedSpecies loads a starter set of common North American backyard birds so
// search and the community feed aren't empty on a fresh install.
func SeedSpecies() {
	log.Println("🐦 Seeding Bird Species...")

	species := []models.BirdSpecies{
		{Name: "Northern Cardinal", ScientificName: "Cardinalis cardinalis", Description: "A vibrant red songbird with a distinctive crest, common in gardens and woodlands across eastern North America."},
		{Name: "American Robin", ScientificName: "Turdus migratorius", Description: "A familiar thrush with a warm orange breast, often seen pulling earthworms from lawns."},
		{Name: "Blue Jay", ScientificName: "Cyanocitta cristata", Description: "A bold, intelligent corvid with striking blue plumage and a loud, varied voice."},
		{Name: "Black-capped Chickadee", ScientificName: "Poecile atricapillus", Description: "A tiny, curious bird with a black cap and bib, famous for its chick-a-dee-dee call."},
		{Name: "House Sparrow", ScientificName: "Passer domesticus", Description: "A small, adaptable bird found nearly everywhere humans live."},
		{Name: "Mourning Dove", ScientificName: "Zenaida macroura", Description: "A graceful, slender dove with a soft, mournful cooing song."},
		{Name: "Red-tailed Hawk", ScientificName: "Buteo jamaicensis", Description: "A large raptor with a brick-red tail, often seen soaring over open country or perched on poles."},
		{Name: "American Goldfinch", ScientificName: "Spinus tristis", Description: "A bright yellow finch with black wings, bouncing through fields in an undulating flight."},
		{Name: "Great Blue Heron", ScientificName: "Ardea herodias", Description: "A tall, stately wader that stalks fish in shallows with slow, deliberate steps."},
		{Name: "Ruby-throated Hummingbird", ScientificName: "Archilochus colubris", Description: "A tiny iridescent jewel that hovers at flowers, the only hummingbird breeding in eastern North America."},
	}

	for _, s := range species {
		var existing models.BirdSpecies
		if err := database.DB.Where("scientific_name = ?", s.ScientificName).First(&existing).Error; err == nil {
			continue
		}

		s.ID = utils.GenerateID()
		if err := database.DB.Create(&s).Error; err != nil {
			log.Printf("Failed to seed species %s: %v", s.ScientificName, err)
		}
	}

	log.Println("✅ Bird species seeded")
}
