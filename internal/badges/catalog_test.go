package badges

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
)

func testSighting(sci string, date time.Time) Sighting {
	return Sighting{
		ID:   sci + date.Format(time.RFC3339),
		Bird: BirdInfo{Name: sci, ScientificName: sci},
		Date: date,
	}
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range Catalog() {
		assert.False(t, seen[def.ID], "duplicate badge id %q", def.ID)
		seen[def.ID] = true
		assert.NotNil(t, def.Predicate, "badge %q has no predicate", def.ID)
	}
}

func TestCatalogOrder(t *testing.T) {
	ids := []string{}
	for _, def := range Catalog() {
		ids = append(ids, def.ID)
	}
	assert.Equal(t, []string{
		BadgeFirstSighting,
		BadgeTenSpecies,
		BadgeEarlyBird,
		BadgeWeekendWarrior,
		BadgeDedicatedObserver,
		BadgeNightOwl,
	}, ids)
}

func TestFirstFlight(t *testing.T) {
	def, ok := ByID(BadgeFirstSighting)
	assert.True(t, ok)

	profile := &models.Profile{UserID: "u1"}
	s := testSighting("Turdus migratorius", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	assert.True(t, def.Predicate(profile, []Sighting{s}, s))

	s2 := testSighting("Cyanocitta cristata", time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC))
	assert.False(t, def.Predicate(profile, []Sighting{s, s2}, s2))
	assert.False(t, def.Predicate(profile, nil, s))
}

func TestSpeciesExplorerBoundary(t *testing.T) {
	def, _ := ByID(BadgeTenSpecies)
	profile := &models.Profile{UserID: "u1"}

	history := []Sighting{}
	for i := 0; i < 9; i++ {
		history = append(history, testSighting(fmt.Sprintf("Species %d", i), time.Date(2024, 3, 1+i, 12, 0, 0, 0, time.UTC)))
	}
	newSighting := history[len(history)-1]

	// 9 distinct species: not yet
	assert.False(t, def.Predicate(profile, history, newSighting))

	// Duplicates do not inflate the count
	history = append(history, testSighting("Species 0", time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, def.Predicate(profile, history, newSighting))

	// The 10th distinct species tips it
	history = append(history, testSighting("Species 9", time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC)))
	assert.True(t, def.Predicate(profile, history, newSighting))
}

func TestEarlyBirdHourBoundaries(t *testing.T) {
	def, _ := ByID(BadgeEarlyBird)
	profile := &models.Profile{UserID: "u1"}

	cases := []struct {
		hour, minute int
		want         bool
	}{
		{4, 59, false},
		{5, 0, true},
		{7, 59, true},
		{8, 0, false},
	}
	for _, tc := range cases {
		s := testSighting("Spinus tristis", time.Date(2024, 3, 4, tc.hour, tc.minute, 0, 0, time.UTC))
		assert.Equal(t, tc.want, def.Predicate(profile, []Sighting{s}, s), "hour %02d:%02d", tc.hour, tc.minute)
	}
}

func TestEarlyBirdUsesNewSightingLocalTime(t *testing.T) {
	def, _ := ByID(BadgeEarlyBird)
	profile := &models.Profile{UserID: "u1"}

	// 11:30 UTC is 06:30 in UTC-5: the observer's wall clock decides
	est := time.FixedZone("UTC-5", -5*3600)
	s := testSighting("Spinus tristis", time.Date(2024, 3, 4, 11, 30, 0, 0, time.UTC).In(est))
	assert.True(t, def.Predicate(profile, []Sighting{s}, s))
}

func TestNightOwlHourBoundaries(t *testing.T) {
	def, _ := ByID(BadgeNightOwl)
	profile := &models.Profile{UserID: "u1"}

	before := testSighting("Strix varia", time.Date(2024, 3, 4, 20, 59, 0, 0, time.UTC))
	assert.False(t, def.Predicate(profile, []Sighting{before}, before))

	after := testSighting("Strix varia", time.Date(2024, 3, 4, 21, 0, 0, 0, time.UTC))
	assert.True(t, def.Predicate(profile, []Sighting{after}, after))
}

func TestWeekendWarrior(t *testing.T) {
	def, _ := ByID(BadgeWeekendWarrior)
	profile := &models.Profile{UserID: "u1"}

	// 2024-03-02 is a Saturday
	history := []Sighting{}
	for i := 0; i < 4; i++ {
		history = append(history, testSighting("Passer domesticus", time.Date(2024, 3, 2+7*i, 12, 0, 0, 0, time.UTC)))
	}
	// Weekday sightings don't count
	history = append(history, testSighting("Passer domesticus", time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)))
	newSighting := history[len(history)-1]
	assert.False(t, def.Predicate(profile, history, newSighting))

	// A Sunday brings the weekend total to 5
	history = append(history, testSighting("Passer domesticus", time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)))
	assert.True(t, def.Predicate(profile, history, newSighting))
}

func TestDedicatedObserverConsecutiveRun(t *testing.T) {
	def, _ := ByID(BadgeDedicatedObserver)
	profile := &models.Profile{UserID: "u1"}

	// 7 consecutive days, with a duplicate entry on one of them
	history := []Sighting{}
	for day := 1; day <= 7; day++ {
		history = append(history, testSighting("Turdus migratorius", time.Date(2024, 1, day, 9, 0, 0, 0, time.UTC)))
	}
	history = append(history, testSighting("Cyanocitta cristata", time.Date(2024, 1, 3, 17, 0, 0, 0, time.UTC)))
	newSighting := history[len(history)-1]
	assert.True(t, def.Predicate(profile, history, newSighting))
}

func TestDedicatedObserverGapBreaksRun(t *testing.T) {
	def, _ := ByID(BadgeDedicatedObserver)
	profile := &models.Profile{UserID: "u1"}

	// Jan 1-5 plus Jan 7-8: the missing Jan 6 caps the longest run at 5
	history := []Sighting{}
	for _, day := range []int{1, 2, 3, 4, 5, 7, 8} {
		history = append(history, testSighting("Turdus migratorius", time.Date(2024, 1, day, 9, 0, 0, 0, time.UTC)))
	}
	newSighting := history[len(history)-1]
	assert.False(t, def.Predicate(profile, history, newSighting))
}

func TestDedicatedObserverIgnoresInputOrder(t *testing.T) {
	def, _ := ByID(BadgeDedicatedObserver)
	profile := &models.Profile{UserID: "u1"}

	// Same 7-day run delivered newest-first, as the store returns it
	history := []Sighting{}
	for day := 7; day >= 1; day-- {
		history = append(history, testSighting("Turdus migratorius", time.Date(2024, 1, day, 9, 0, 0, 0, time.UTC)))
	}
	newSighting := history[0]
	assert.True(t, def.Predicate(profile, history, newSighting))
}

func TestLongestDailyStreakFindsMidHistoryRun(t *testing.T) {
	// The longest run is in the middle, not ending at the newest day
	history := []Sighting{}
	for _, day := range []int{1, 3, 4, 5, 6, 7, 8, 9, 11} {
		history = append(history, testSighting("Turdus migratorius", time.Date(2024, 1, day, 9, 0, 0, 0, time.UTC)))
	}
	assert.Equal(t, 7, longestDailyStreak(history))

	assert.Equal(t, 0, longestDailyStreak(nil))
	assert.Equal(t, 1, longestDailyStreak(history[:1]))
}
