package badges

import (
	"slices"
	"time"

	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
)

// Badge ids. Stable: they are persisted in profiles.badges and must never
// change once shipped.
const (
	BadgeFirstSighting     = "first_sighting"
	BadgeTenSpecies        = "ten_species"
	BadgeEarlyBird         = "early_bird"
	BadgeWeekendWarrior    = "weekend_warrior"
	BadgeDedicatedObserver = "dedicated_observer"
	BadgeNightOwl          = "night_owl"
)

// catalog is evaluated and reported in declaration order.
var catalog = []Definition{
	{
		ID:          BadgeFirstSighting,
		Title:       "First Flight",
		Description: "Recorded your very first bird sighting!",
		IconName:    "Award",
		Predicate: func(profile *models.Profile, sightings []Sighting, newSighting Sighting) bool {
			return len(sightings) == 1
		},
	},
	{
		ID:          BadgeTenSpecies,
		Title:       "Species Explorer",
		Description: "Discovered 10 different bird species!",
		IconName:    "Target",
		Predicate: func(profile *models.Profile, sightings []Sighting, newSighting Sighting) bool {
			unique := make(map[string]struct{}, len(sightings))
			for _, s := range sightings {
				unique[s.Bird.ScientificName] = struct{}{}
			}
			return len(unique) >= 10
		},
	},
	{
		ID:          BadgeEarlyBird,
		Title:       "Early Bird",
		Description: "Caught a bird between 5 AM and 8 AM!",
		IconName:    "Sunrise",
		Predicate: func(profile *models.Profile, sightings []Sighting, newSighting Sighting) bool {
			hour := newSighting.Date.Hour()
			return hour >= 5 && hour < 8
		},
	},
	{
		ID:          BadgeWeekendWarrior,
		Title:       "Weekend Warrior",
		Description: "Recorded 5 sightings on weekends!",
		IconName:    "Calendar",
		Predicate: func(profile *models.Profile, sightings []Sighting, newSighting Sighting) bool {
			weekend := 0
			for _, s := range sightings {
				switch s.Date.Weekday() {
				case time.Saturday, time.Sunday:
					weekend++
				}
			}
			return weekend >= 5
		},
	},
	{
		ID:          BadgeDedicatedObserver,
		Title:       "Dedicated Observer",
		Description: "Recorded sightings for 7 consecutive days!",
		IconName:    "Eye",
		Predicate: func(profile *models.Profile, sightings []Sighting, newSighting Sighting) bool {
			return longestDailyStreak(sightings) >= 7
		},
	},
	{
		ID:          BadgeNightOwl,
		Title:       "Night Owl",
		Description: "Spotted a bird after 9 PM - impressive dedication!",
		IconName:    "Moon",
		IsSecret:    true,
		Predicate: func(profile *models.Profile, sightings []Sighting, newSighting Sighting) bool {
			return newSighting.Date.Hour() >= 21
		},
	},
}

// Catalog returns the full badge catalog in declaration order.
func Catalog() []Definition {
	return catalog
}

// ByID looks a definition up by its stable id.
func ByID(id string) (Definition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// longestDailyStreak collapses sightings to distinct calendar days and
// returns the length of the longest run of consecutive days. Runs anywhere
// in the history count, not just the one ending at the newest sighting.
func longestDailyStreak(sightings []Sighting) int {
	if len(sightings) == 0 {
		return 0
	}

	seen := make(map[int64]struct{}, len(sightings))
	days := make([]int64, 0, len(sightings))
	for _, s := range sightings {
		y, m, d := s.Date.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	slices.Sort(days)

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}
