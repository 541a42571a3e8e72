package models

// SolutionStep is one numbered step of a worked solution. StepNumber is
// 1-based and strictly increasing within a solution.
type SolutionStep struct {
	StepNumber  int    `json:"step_number"`
	Explanation string `json:"explanation"`
}

// ParsedSolution is the typed result of parsing a free-form solver reply.
// A solution with zero steps is valid (final-answer-only), and Explanation
// is always populated when the upstream produced any text at all.
type ParsedSolution struct {
	Problem     string         `json:"problem"`
	Steps       []SolutionStep `json:"steps"`
	FinalAnswer string         `json:"final_answer,omitempty"`
	Explanation string         `json:"explanation,omitempty"`
}

// Canonical option identifiers for multiple-choice questions. Both letter
// ("A".."D") and digit ("1".."4") labels map onto this set.
const (
	OptionID1 = "opt1"
	OptionID2 = "opt2"
	OptionID3 = "opt3"
	OptionID4 = "opt4"
)

// MCQOption is one answer choice of a multiple-choice question.
type MCQOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ParsedMCQ is a multiple-choice question recovered from model text.
// Options always holds at least two entries; when fewer were recoverable the
// builder substitutes recognizable placeholder options instead of failing.
// CorrectOptionID is surfaced for evaluation callers only and is never part
// of the user-facing question payload.
type ParsedMCQ struct {
	QuestionText    string      `json:"question_text"`
	Options         []MCQOption `json:"options"`
	CorrectOptionID string      `json:"-"`
}

// ParsedExplanationFeedback is the typed result of an AI evaluation of a
// submitted answer. IsCorrect defaults to false whenever the correctness
// marker is missing or anything other than "yes".
type ParsedExplanationFeedback struct {
	IsCorrect         bool   `json:"correct"`
	Explanation       string `json:"explanation"`
	CorrectOptionID   string `json:"correct_option_id,omitempty"`
	CorrectOptionText string `json:"correct_option_text,omitempty"`
	AIFeedback        string `json:"ai_feedback,omitempty"`
	DetailedSolution  string `json:"detailed_solution,omitempty"`
	SimulatedOutput   string `json:"simulated_output,omitempty"`
}

// Flashcard is one question/answer pair of a learning aid.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PracticeProblem is a generated practice problem with its worked solution.
type PracticeProblem struct {
	Problem             string `json:"problem"`
	SolutionExplanation string `json:"solution_explanation"`
}

// CSQuestionKind enumerates the CS practice question flavors.
type CSQuestionKind string

const (
	CSQuestionMCQ    CSQuestionKind = "mcq"
	CSQuestionCoding CSQuestionKind = "coding"
	CSQuestionTheory CSQuestionKind = "theory"
)

// CSQuestion is a generated computer-science practice question. For MCQ
// questions Options is populated; for coding questions CodeStub may be.
type CSQuestion struct {
	ID              string         `json:"id"`
	Chapter         string         `json:"chapter"`
	QuestionType    CSQuestionKind `json:"question_type"`
	QuestionText    string         `json:"question_text"`
	Options         []MCQOption    `json:"options,omitempty"`
	CodeStub        string         `json:"initial_code_stub,omitempty"`
	CorrectOptionID string         `json:"-"`
}
