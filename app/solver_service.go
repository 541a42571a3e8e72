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

// SolverService orchestrates problem solving, step explanations, mistake
// diagnosis and chat. Successful solves and explanations award XP; a
// failed XP update is logged and swallowed so the solution still reaches
// the student.
type SolverService struct {
	solver ports.Solver
	users  ports.UserRepository
	awards config.XPConfig
}

// NewSolverService creates a solver service
func NewSolverService(solver ports.Solver, users ports.UserRepository, awards config.XPConfig) *SolverService {
	return &SolverService{solver: solver, users: users, awards: awards}
}

// Solve produces a parsed solution without touching XP. Used by the
// unauthenticated endpoint.
func (s *SolverService) Solve(ctx context.Context, question string) (models.ParsedSolution, error) {
	if strings.TrimSpace(question) == "" {
		return models.ParsedSolution{}, appErrors.InvalidInput("question text is required")
	}
	return s.solver.SolveProblem(ctx, question)
}

// SolveForUser produces a parsed solution and awards solve XP. The
// returned pointer is nil when the XP update failed.
func (s *SolverService) SolveForUser(ctx context.Context, user *models.User, question string) (models.ParsedSolution, *int, error) {
	solution, err := s.Solve(ctx, question)
	if err != nil {
		return models.ParsedSolution{}, nil, err
	}
	return solution, s.award(ctx, user, s.awards.SolveProblem, "solving"), nil
}

// ExplainStep expands on one step of a solution and awards explain XP.
func (s *SolverService) ExplainStep(ctx context.Context, user *models.User, req ports.ExplainStepRequest) (string, *int, error) {
	explanation, err := s.solver.ExplainStep(ctx, req)
	if err != nil {
		return "", nil, err
	}
	return explanation, s.award(ctx, user, s.awards.ExplainStep, "explaining"), nil
}

// Diagnose reviews a student's own solution steps.
func (s *SolverService) Diagnose(ctx context.Context, problem, userSteps string) (string, error) {
	if strings.TrimSpace(problem) == "" || strings.TrimSpace(userSteps) == "" {
		return "", appErrors.InvalidInput("problem text and steps are required")
	}
	return s.solver.DiagnoseSolution(ctx, problem, userSteps)
}

// Chat answers a conversational question with history for context.
func (s *SolverService) Chat(ctx context.Context, question string, history []models.ChatMessage) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", appErrors.InvalidInput("question text is required")
	}
	return s.solver.Chat(ctx, question, history)
}

func (s *SolverService) award(ctx context.Context, user *models.User, amount int, activity string) *int {
	if user == nil || amount <= 0 {
		return nil
	}
	updated, err := s.users.IncrementXP(ctx, user.ID, amount)
	if err != nil {
		log.Printf("[Solver] Could not award %d XP to %s for %s: %v", amount, user.Email, activity, err)
		return nil
	}
	log.Printf("[Solver] Awarded %d XP to %s for %s. New XP: %d", amount, updated.Email, activity, updated.CurrentXP)
	return &updated.CurrentXP
}
