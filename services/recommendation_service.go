package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"

	"backend/config"
)

// Recommendation is one row of the generator's JSON output contract.
type Recommendation struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

// RecService runs the external recommendation generator as a black box: it
// owns the scoring, we only consume its JSON array on stdout.
type RecService struct {
	cmdline string
	timeout time.Duration
}

var ErrRecommenderUnconfigured = errors.New("RECOMMENDER_CMD not set")

func NewRecService() *RecService {
	return &RecService{
		cmdline: config.App.RecommenderCmd,
		timeout: 10 * time.Second,
	}
}

// GetRecommendations spawns the generator under a deadline. A process or
// parse failure yields an empty list rather than an error: the dashboard
// degrades to "no suggestions" instead of failing the whole request.
func (r *RecService) GetRecommendations(ctx context.Context) ([]Recommendation, error) {
	parts := strings.Fields(r.cmdline)
	if len(parts) == 0 {
		return nil, ErrRecommenderUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)

	out, err := cmd.Output()
	if err != nil {
		// Only a run that started and exited badly degrades to "no
		// suggestions". A lookup or launch failure is a misconfigured
		// deployment and must surface.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("recommendation generator failed to start: %w", err)
		}
		log.Printf("recommendation generator failed: %v", err)
		return []Recommendation{}, nil
	}

	var recs []Recommendation
	if err := json.Unmarshal(out, &recs); err != nil {
		log.Printf("recommendation output parse failed: %v", err)
		return []Recommendation{}, nil
	}
	if recs == nil {
		recs = []Recommendation{}
	}
	return recs, nil
}
