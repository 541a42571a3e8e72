package ui

import (
	"mathwiz/models"
)

// Request payloads.

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest binds from JSON or an OAuth2-style password form, where
// the form's username field carries the email.
type LoginRequest struct {
	Email    string `json:"email" form:"username"`
	Password string `json:"password" form:"password" binding:"required"`
}

type SolveTextRequest struct {
	QuestionText string `json:"question_text" binding:"required"`
}

type ExplanationRequest struct {
	ProblemText         string               `json:"problem_text" binding:"required"`
	AllSteps            []models.SolutionStep `json:"all_steps" binding:"required"`
	StepNumberToExplain int                  `json:"step_number_to_explain" binding:"required"`
	QueryType           string               `json:"query_type"`
}

type PracticeRequest struct {
	Topic           string `json:"topic" binding:"required"`
	PreviousProblem string `json:"previous_problem"`
}

type DiagnoseSolutionRequest struct {
	ProblemText string `json:"problem_text" binding:"required"`
	UserSteps   string `json:"user_steps" binding:"required"`
}

type ChatRequest struct {
	Question string               `json:"question" binding:"required"`
	History  []models.ChatMessage `json:"history"`
}

type SubmitPuzzleRequest struct {
	PuzzleID   string `json:"puzzle_id" binding:"required"`
	UserAnswer string `json:"user_answer" binding:"required"`
}

type CSQuestionRequest struct {
	ChapterName           string `json:"chapter_name" binding:"required"`
	RequestedQuestionType string `json:"requested_question_type"`
}

type CSSubmissionRequest struct {
	QuestionID   string             `json:"question_id" binding:"required"`
	QuestionType string             `json:"question_type" binding:"required"`
	QuestionText string             `json:"question_text" binding:"required"`
	Answer       string             `json:"answer" binding:"required"`
	Options      []models.MCQOption `json:"options"`
}

type LearningAidRequest struct {
	ChapterName string `json:"chapter_name" binding:"required"`
	AidType     string `json:"aid_type" binding:"required"`
}

type BookmarkCreateRequest struct {
	QuestionText   string  `json:"question_text" binding:"required"`
	QuestionSource *string `json:"question_source"`
	Metadata       *string `json:"metadata"`
}

// Response payloads.

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CurrentXP int    `json:"current_xp"`
}

type RegistrationResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type SolutionResponse struct {
	OriginalProblem string                `json:"original_problem"`
	Steps           []models.SolutionStep `json:"steps"`
	FinalAnswer     string                `json:"final_answer,omitempty"`
	Explanation     string                `json:"explanation,omitempty"`
	Error           string                `json:"error,omitempty"`
	UpdatedXP       *int                  `json:"updated_xp,omitempty"`
}

type ExplanationResponse struct {
	Explanation string `json:"explanation"`
	Error       string `json:"error,omitempty"`
	UpdatedXP   *int   `json:"updated_xp,omitempty"`
}

type PracticeResponse struct {
	Problem             string `json:"problem,omitempty"`
	SolutionExplanation string `json:"solution_explanation,omitempty"`
	Error               string `json:"error,omitempty"`
	UpdatedXP           *int   `json:"updated_xp,omitempty"`
}

type DiagnoseSolutionResponse struct {
	Feedback     string `json:"feedback"`
	FeedbackHTML string `json:"feedback_html,omitempty"`
	Error        string `json:"error,omitempty"`
}

type ChatResponse struct {
	Answer     string `json:"answer"`
	AnswerHTML string `json:"answer_html,omitempty"`
}

type DailyPuzzleResponse struct {
	PuzzleID   string `json:"puzzle_id"`
	Question   string `json:"question"`
	Difficulty string `json:"difficulty,omitempty"`
}

type SubmitPuzzleResponse struct {
	IsCorrect     bool   `json:"is_correct"`
	Message       string `json:"message"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	PuzzleID      string `json:"puzzle_id"`
}

type CSSubmissionFeedbackResponse struct {
	Correct           bool   `json:"correct"`
	Explanation       string `json:"explanation"`
	DetailedSolution  string `json:"detailed_solution,omitempty"`
	SimulatedOutput   string `json:"simulated_output,omitempty"`
	AIFeedback        string `json:"ai_feedback,omitempty"`
	CorrectOptionID   string `json:"correct_option_id,omitempty"`
	CorrectOptionText string `json:"correct_option_text,omitempty"`
}

type FlashcardsResponse struct {
	Chapter    string             `json:"chapter"`
	AidType    string             `json:"aid_type"`
	Flashcards []models.Flashcard `json:"flashcards"`
}

type SummaryResponse struct {
	Chapter string `json:"chapter"`
	AidType string `json:"aid_type"`
	Summary string `json:"summary"`
}

type KeyPointsResponse struct {
	Chapter   string   `json:"chapter"`
	AidType   string   `json:"aid_type"`
	KeyPoints []string `json:"key_points"`
}

type AdminXPStats struct {
	UserCount int     `json:"user_count"`
	TotalXP   int     `json:"total_xp"`
	MeanXP    float64 `json:"mean_xp"`
	MedianXP  float64 `json:"median_xp"`
	StdDevXP  float64 `json:"stddev_xp"`
	MaxXP     float64 `json:"max_xp"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CurrentXP: u.CurrentXP,
	}
}
