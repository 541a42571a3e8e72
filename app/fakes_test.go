package app

import (
	"context"
	"sync"

	"github.com/google/uuid"

	appErrors "mathwiz/internal/errors"
	"mathwiz/models"
	"mathwiz/ports"
)

// fakeSolver returns canned results and counts calls. Unset fields fall
// back to zero values; Err short-circuits every method.
type fakeSolver struct {
	Err error

	Solution models.ParsedSolution
	Practice models.PracticeProblem
	Puzzle   models.PuzzlePayload
	Question models.CSQuestion
	Feedback models.ParsedExplanationFeedback
	Text     string
	Cards    []models.Flashcard
	Points   []string

	PuzzleCalls int
}

func (f *fakeSolver) SolveProblem(ctx context.Context, question string) (models.ParsedSolution, error) {
	return f.Solution, f.Err
}

func (f *fakeSolver) ExplainStep(ctx context.Context, req ports.ExplainStepRequest) (string, error) {
	return f.Text, f.Err
}

func (f *fakeSolver) GeneratePractice(ctx context.Context, topic, previous string) (models.PracticeProblem, error) {
	return f.Practice, f.Err
}

func (f *fakeSolver) DiagnoseSolution(ctx context.Context, problem, steps string) (string, error) {
	return f.Text, f.Err
}

func (f *fakeSolver) Chat(ctx context.Context, question string, history []models.ChatMessage) (string, error) {
	return f.Text, f.Err
}

func (f *fakeSolver) GenerateDailyPuzzle(ctx context.Context) (models.PuzzlePayload, error) {
	f.PuzzleCalls++
	return f.Puzzle, f.Err
}

func (f *fakeSolver) GenerateCSQuestion(ctx context.Context, chapter string, kind models.CSQuestionKind) (models.CSQuestion, error) {
	return f.Question, f.Err
}

func (f *fakeSolver) EvaluateMCQ(ctx context.Context, sub ports.CSSubmission) (models.ParsedExplanationFeedback, error) {
	return f.Feedback, f.Err
}

func (f *fakeSolver) EvaluateSubmission(ctx context.Context, sub ports.CSSubmission) (models.ParsedExplanationFeedback, error) {
	return f.Feedback, f.Err
}

func (f *fakeSolver) GenerateFlashcards(ctx context.Context, chapter string) ([]models.Flashcard, error) {
	return f.Cards, f.Err
}

func (f *fakeSolver) GenerateSummary(ctx context.Context, chapter string) (string, error) {
	return f.Text, f.Err
}

func (f *fakeSolver) GenerateKeyPoints(ctx context.Context, chapter string) ([]string, error) {
	return f.Points, f.Err
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User

	IncrementErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return appErrors.InvalidInput("email already registered")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, appErrors.NotFound("user")
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, appErrors.NotFound("user")
}

func (r *fakeUserRepo) IncrementXP(ctx context.Context, id uuid.UUID, amount int) (*models.User, error) {
	if r.IncrementErr != nil {
		return nil, r.IncrementErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, appErrors.NotFound("user")
	}
	u.CurrentXP += amount
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.User
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}
