package services

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/kelseaconrad19/avian-eye-sight/internal/badges"
	"github.com/kelseaconrad19/avian-eye-sight/internal/database"
	"github.com/kelseaconrad19/avian-eye-sight/internal/models"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/logger"
)

// Badge evaluation failures are soft: the sighting that triggered the check
// has already been saved, so callers log these and move on.
var (
	// ErrFetchHistory marks a failure to load the user's sighting history.
	ErrFetchHistory = errors.New("badge engine: fetch sighting history")
	// ErrPersistBadges marks a failure to commit the updated badge list.
	ErrPersistBadges = errors.New("badge engine: persist badges")
)

// awardRetries bounds the compare-and-swap loop in appendProfileBadges.
const awardRetries = 3

// CheckAndAwardBadges evaluates every not-yet-earned badge against the user's
// full sighting history plus the just-recorded sighting, persists any newly
// earned badge ids, and returns their definitions in catalog order.
//
// Contract: newSighting has already been durably saved by the caller, so it
// is part of the fetched history as well ("First Flight" counts on that).
// The returned list exactly matches what was committed: on any fetch or
// persist failure the function returns nil and no badge is reported.
func CheckAndAwardBadges(profile *models.Profile, newSighting badges.Sighting) ([]badges.Definition, error) {
	history, err := fetchSightingHistory(profile.UserID, newSighting)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchHistory, err)
	}

	earned := make(map[string]bool, len(profile.Badges))
	for _, id := range profile.Badges {
		earned[id] = true
	}

	var newlyEarned []badges.Definition
	for _, def := range badges.Catalog() {
		if earned[def.ID] {
			continue
		}
		if evaluatePredicate(def, profile, history, newSighting) {
			newlyEarned = append(newlyEarned, def)
		}
	}

	if len(newlyEarned) == 0 {
		return nil, nil
	}

	ids := make([]string, len(newlyEarned))
	for i, def := range newlyEarned {
		ids[i] = def.ID
	}

	updated, err := appendProfileBadges(profile.UserID, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistBadges, err)
	}
	profile.Badges = updated

	return newlyEarned, nil
}

// BadgeSighting converts a stored sighting row into the shape predicates
// evaluate. A missing species record degrades to "Unknown" instead of
// failing the whole evaluation.
func BadgeSighting(s *models.Sighting) badges.Sighting {
	bird := badges.BirdInfo{Name: "Unknown", ScientificName: "Unknown"}
	if s.Species != nil {
		bird = badges.BirdInfo{
			Name:           s.Species.Name,
			ScientificName: s.Species.ScientificName,
			Description:    s.Species.Description,
			ImageURL:       s.Species.ImageURL,
			Confidence:     s.Species.Confidence,
		}
	}
	if bird.ImageURL == "" {
		bird.ImageURL = s.ImageURL
	}
	return badges.Sighting{
		ID:       s.ID,
		Bird:     bird,
		Date:     s.SightingDate,
		Location: s.Location,
		Notes:    s.Notes,
	}
}

// fetchSightingHistory loads the user's complete history with species rows
// joined in. Timestamps come back from the store in UTC; they are converted
// into the new sighting's wall-clock zone so that weekday and calendar-day
// predicates line up with how the observer experienced them.
func fetchSightingHistory(userID string, newSighting badges.Sighting) ([]badges.Sighting, error) {
	var rows []models.Sighting
	err := database.DB.
		Preload("Species").
		Where("user_id = ?", userID).
		Order("sighting_date desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	loc := newSighting.Date.Location()
	history := make([]badges.Sighting, 0, len(rows))
	for i := range rows {
		s := BadgeSighting(&rows[i])
		s.Date = s.Date.In(loc)
		history = append(history, s)
	}
	return history, nil
}

// evaluatePredicate runs one predicate, recovering a panic so a single bad
// rule cannot take down the whole evaluation. A panicking predicate counts
// as not satisfied and stays eligible for the next check.
func evaluatePredicate(def badges.Definition, profile *models.Profile, history []badges.Sighting, newSighting badges.Sighting) (result bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Str("badge_id", def.ID).
				Interface("panic", r).
				Msg("Badge predicate panicked, skipping")
			result = false
		}
	}()
	return def.Predicate(profile, history, newSighting)
}

// appendProfileBadges appends the given ids to the profile's badge list with
// an append-if-absent merge. The update is a compare-and-swap on the current
// array value: if a concurrent award got there first, the write matches zero
// rows and we re-read and merge rather than overwriting the other writer.
// Badges are never removed here, only appended.
func appendProfileBadges(userID string, earnedIDs []string) (pq.StringArray, error) {
	for attempt := 0; attempt < awardRetries; attempt++ {
		var profile models.Profile
		if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			return nil, err
		}

		current := make(map[string]bool, len(profile.Badges))
		for _, id := range profile.Badges {
			current[id] = true
		}

		updated := append(pq.StringArray{}, profile.Badges...)
		for _, id := range earnedIDs {
			if !current[id] {
				updated = append(updated, id)
			}
		}
		if len(updated) == len(profile.Badges) {
			// A concurrent call already landed every id.
			return profile.Badges, nil
		}

		query := database.DB.Model(&models.Profile{}).Where("user_id = ?", userID)
		if len(profile.Badges) == 0 {
			query = query.Where("badges IS NULL OR badges = ?", pq.StringArray{})
		} else {
			query = query.Where("badges = ?", profile.Badges)
		}

		res := query.Update("badges", updated)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected > 0 {
			return updated, nil
		}

		logger.Warn().
			Str("user_id", userID).
			Int("attempt", attempt+1).
			Msg("Badge update raced with a concurrent award, retrying merge")
	}
	return nil, errors.New("badge update contention: retries exhausted")
}
