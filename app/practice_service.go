package app

import (
	"context"
	"log"
	"strings"

	"mathwiz/internal/config"
	appErrors "mathwiz/internal/errors"
	"mathwiz/models"
	"mathwiz/ports"
)

// PracticeService generates practice problems and awards practice XP.
type PracticeService struct {
	solver ports.Solver
	users  ports.UserRepository
	awards config.XPConfig
}

// NewPracticeService creates a practice service
func NewPracticeService(solver ports.Solver, users ports.UserRepository, awards config.XPConfig) *PracticeService {
	return &PracticeService{solver: solver, users: users, awards: awards}
}

// Generate produces a practice problem on topic, steering away from
// previousProblem when one is given, and awards practice XP. The
// returned pointer is nil when the XP update failed or no user is set.
func (s *PracticeService) Generate(ctx context.Context, user *models.User, topic, previousProblem string) (models.PracticeProblem, *int, error) {
	if strings.TrimSpace(topic) == "" {
		return models.PracticeProblem{}, nil, appErrors.InvalidInput("topic is required")
	}

	problem, err := s.solver.GeneratePractice(ctx, topic, previousProblem)
	if err != nil {
		return models.PracticeProblem{}, nil, err
	}

	var updatedXP *int
	if user != nil && s.awards.PracticeProblem > 0 {
		updated, err := s.users.IncrementXP(ctx, user.ID, s.awards.PracticeProblem)
		if err != nil {
			log.Printf("[Practice] Could not award %d XP to %s: %v", s.awards.PracticeProblem, user.Email, err)
		} else {
			updatedXP = &updated.CurrentXP
		}
	}
	return problem, updatedXP, nil
}
