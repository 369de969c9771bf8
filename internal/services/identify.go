package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kelseaconrad19/avian-eye-sight/internal/config"
	"github.com/kelseaconrad19/avian-eye-sight/pkg/logger"
)

// IdentificationResult is what the classifier returns for one image.
type IdentificationResult struct {
	Name           string  `json:"name"`
	ScientificName string  `json:"scientificName"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	Confidence     float64 `json:"confidence"`
}

type identifyRequest struct {
	Image string `json:"image"` // base64 encoded
}

type identifyResponse struct {
	Name           string  `json:"name"`
	ScientificName string  `json:"scientific_name"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"image_url"`
	Confidence     float64 `json:"confidence"`
}

var identifyClient = &http.Client{Timeout: 30 * time.Second}

// MinIdentifyConfidence is the floor below which a classification is treated
// as inconclusive and not offered to the user as a match.
const MinIdentifyConfidence = 0.5

// IdentifyBird submits a base64-encoded photo to the external classifier and
// returns the top match. The call honors the request context, so a client
// disconnect cancels it.
func IdentifyBird(ctx context.Context, imageBase64 string) (*IdentificationResult, error) {
	cfg := config.AppConfig
	if cfg.BirdAPIURL == "" {
		return nil, fmt.Errorf("bird identification API not configured")
	}

	payload, err := json.Marshal(identifyRequest{Image: imageBase64})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BirdAPIURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.BirdAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.BirdAPIKey)
	}

	start := time.Now()
	resp, err := identifyClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identification API returned status %d", resp.StatusCode)
	}

	var out identifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode identification response: %w", err)
	}

	logger.Debug().
		Str("species", out.ScientificName).
		Float64("confidence", out.Confidence).
		Dur("latency", time.Since(start)).
		Msg("Bird identification completed")

	if out.Confidence < MinIdentifyConfidence {
		return nil, fmt.Errorf("no confident match (confidence %.2f)", out.Confidence)
	}

	return &IdentificationResult{
		Name:           out.Name,
		ScientificName: out.ScientificName,
		Description:    out.Description,
		ImageURL:       out.ImageURL,
		Confidence:     out.Confidence,
	}, nil
}
