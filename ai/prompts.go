package ai

import (
	"fmt"
	"strings"

	"mathwiz/models"
)

// SolvePrompt asks for a worked solution in the labeled-section layout
// the solution parser understands.
func SolvePrompt(question string) string {
	return fmt.Sprintf(`You are a helpful math assistant.
Solve the following mathematical problem:
%s
Provide the final answer or solution clearly.
If applicable, provide a step-by-step derivation or calculation process.
Also provide a brief explanation of the method used or the reasoning.

Structure your response clearly, for example:

Explanation:
[Brief explanation of the approach]

Steps:
1. [First step]
2. [Second step]
...

Solution:
[Final answer or simplified expression]

If the problem is ambiguous or cannot be solved, please state why.
`, fence(question))
}

// ExplainStepPrompt asks for a deeper explanation of one step of an
// already-produced solution. queryType is "why" or "how".
func ExplainStepPrompt(problem string, allSteps []models.SolutionStep, step models.SolutionStep, queryType string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a patient math tutor.\nA student is working through this problem:\n%s\n", fence(problem))
	b.WriteString("The full solution they were shown is:\n")
	for _, s := range allSteps {
		fmt.Fprintf(&b, "%d. %s\n", s.StepNumber, s.Explanation)
	}
	fmt.Fprintf(&b, "\nThe student wants to understand step %d: %q\n", step.StepNumber, step.Explanation)
	switch queryType {
	case "how":
		b.WriteString("Explain HOW this step was performed: the method or formula applied and the mechanics of the calculation.\n")
	default:
		b.WriteString("Explain WHY this step is needed: what it accomplishes and how it follows from the previous steps.\n")
	}
	b.WriteString("Answer in a few clear sentences addressed directly to the student. Provide only the explanation.\n")
	return b.String()
}

// PracticePrompt asks for a fresh practice problem with its worked
// solution, varying away from previousProblem when one is given.
func PracticePrompt(topic, previousProblem string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a math tutor.\nGenerate a practice problem suitable for a student learning about %q.\nClearly state the problem.\n", topic)
	if previousProblem != "" {
		fmt.Fprintf(&b, "\nThe student was just given the following problem:\nPrevious Problem: %s\nPlease generate a DIFFERENT practice problem on the same topic (%q) with a similar difficulty level.\n", previousProblem, topic)
	} else {
		b.WriteString("\nThis is the first practice problem requested for this topic.\n")
	}
	b.WriteString(`
Then, provide a detailed step-by-step solution and explanation for the specific new problem you generated.

Format your response like this:

Problem:
[State the practice problem here]

Solution & Explanation:
[Provide the full solution steps and explanation here]
`)
	return b.String()
}

// DiagnosePrompt asks for feedback on a student's own solution steps,
// giving the model a correct solution to compare against when available.
func DiagnosePrompt(problem, userSteps string, correctSteps []models.SolutionStep, correctSolution string) string {
	stepLines := make([]string, 0, len(correctSteps))
	for _, s := range correctSteps {
		stepLines = append(stepLines, fmt.Sprintf("%d. %s", s.StepNumber, s.Explanation))
	}
	reference := strings.Join(stepLines, "\n")
	if reference == "" {
		reference = "Not available"
	}
	if correctSolution == "" {
		correctSolution = "Not available"
	}
	return fmt.Sprintf(`You are an expert math tutor.
A student is trying to solve the following math problem:
Problem:
%s

The student has provided the following steps for their solution:
Student's Steps:
%s

For your reference, a correct step-by-step solution is:
Correct Steps:
%s
Correct Final Solution: %s

Your task is to:
1. Analyze the student's steps carefully.
2. Compare the student's steps with the correct steps.
3. Identify any mistakes, misunderstandings, or missing steps in the student's solution.
4. Provide clear, constructive feedback to the student. Explain where they went wrong and guide them towards the correct thinking process.
5. If the student's solution is correct, acknowledge it.
6. Be encouraging and supportive.

Format your feedback clearly. You can use markdown.
Provide only the feedback to the student.
`, problem, userSteps, reference, correctSolution)
}

// ChatPrompt builds a conversational prompt carrying recent history and
// KaTeX formatting instructions.
func ChatPrompt(question string, history []models.ChatMessage) string {
	parts := []string{
		"You are a friendly and helpful Math Wiz Assistant.",
		"Your goal is to provide clear, conversational, and helpful responses to math-related questions.",
		"When providing explanations or steps, ensure they are easy to understand.",
		"IMPORTANT: For any mathematical expressions or formulas, use KaTeX formatting. For inline math, enclose it in single dollar signs (e.g., $E=mc^2$). For block-level math, enclose it in double dollar signs.",
	}
	if len(history) > 0 {
		parts = append(parts, "\nHere is the recent conversation history for context (last user message is the current question):")
		for _, m := range history {
			switch m.Sender {
			case "user":
				parts = append(parts, fmt.Sprintf("User previously asked: %q", m.Text))
			case "ai":
				parts = append(parts, fmt.Sprintf("You previously responded: %q", m.Text))
			}
		}
	}
	parts = append(parts,
		fmt.Sprintf("\nUser's current question: %q", question),
		"Your response:")
	return strings.Join(parts, "\n")
}

// DailyPuzzlePrompt asks for a self-contained puzzle as a strict JSON
// object so the reply can be decoded rather than section-parsed.
const DailyPuzzlePrompt = `You are a creative puzzle generator.
Generate a unique and engaging math puzzle suitable for a general audience.
The puzzle should be solvable with logic and basic math skills, not overly complex or involving very advanced topics unless specified.
Provide the following three pieces of information:
1. "question": The puzzle question itself (string).
2. "answer": The final numerical or short text answer (string or number).
3. "difficulty": A difficulty rating for the puzzle (string: 'easy', 'medium', or 'hard').

Format the output STRICTLY as a single JSON object with keys "question", "answer", and "difficulty".
Example:
{
  "question": "If a hen and a half lay an egg and a half in a day and a half, how many eggs do six hens lay in six days?",
  "answer": "24",
  "difficulty": "medium"
}

Do not include any other text, explanations, or markdown formatting outside of this JSON object.
`

// CSQuestionPrompt asks for one practice question of the given kind in
// the labeled layout the MCQ and question parsers understand.
func CSQuestionPrompt(chapter string, kind models.CSQuestionKind) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a single practice question suitable for a student learning about '%s' in Computer Science. The question type should be '%s'.\n\n", chapter, kind)
	switch kind {
	case models.CSQuestionMCQ:
		b.WriteString(`Provide the following:
1. The question text.
2. 3-4 multiple-choice options, clearly labeled (e.g., A, B, C, D or 1, 2, 3, 4).
3. Indicate the correct answer clearly (e.g., "Correct Answer: B").
Format:
Question: [Question text]
Option A: [Option A text]
Option B: [Option B text]
Option C: [Option C text]
Correct Answer: [Correct Letter/Number]
`)
	case models.CSQuestionCoding:
		b.WriteString(`Provide the following:
1. A clear description of the coding problem (assume Python unless specified otherwise).
2. An optional simple starting code stub (e.g., function definition with 'pass').
Format:
Problem: [Problem description]
Code Stub: (Optional)
[Code stub here]
`)
	default:
		b.WriteString(`Provide a clear theory or conceptual question.
Format:
Question: [Question text]
`)
	}
	return b.String()
}

// MCQEvalPrompt asks for a verdict on a multiple-choice selection in the
// strict labeled layout the feedback parser understands.
func MCQEvalPrompt(q models.CSQuestion, selectedID, selectedText string) string {
	var options strings.Builder
	for _, opt := range q.Options {
		fmt.Fprintf(&options, "- Option ID: %s, Text: %s\n", opt.ID, opt.Text)
	}
	return fmt.Sprintf(`You are an AI computer science tutor evaluating a student's answer to a multiple-choice question.
Question: %s

Available Options:
%s
Student selected Option ID: %s (Text: %q)

Please perform the following:
1. Identify the ID of the *correct* option from the "Available Options" list.
2. Provide the text of the correct option.
3. Determine if the student's selected option (ID: %s) is correct.
4. Provide a concise explanation for why the correct option is indeed correct.
5. If the student's answer was incorrect, briefly explain the flaw in their choice.

Format your response STRICTLY as follows, ensuring each field is on a new line:
Correctness: [Yes/No based on student's answer]
CorrectOptionID: [ID of the correct option]
CorrectOptionText: [Text of the correct option]
Explanation: [Your explanation of why the correct option is correct, and feedback on the student's choice if incorrect]
AI_Feedback: [Any brief, general feedback or encouragement for the student]
DetailedSolution: [Restate the correct option and a clear, comprehensive reason why it is the best answer among the choices]
`, q.QuestionText, options.String(), selectedID, selectedText, selectedID)
}

// SubmissionEvalPrompt asks for an evaluation of a free-form coding or
// theory answer in the looser labeled layout.
func SubmissionEvalPrompt(kind models.CSQuestionKind, questionText, answer string) string {
	var b strings.Builder
	b.WriteString("You are an AI programming and computer science tutor evaluating a student's answer.\n\n")
	fmt.Fprintf(&b, "Question Type: %s\n", kind)
	fmt.Fprintf(&b, "Original Question: %s\n", questionText)
	fmt.Fprintf(&b, "Student's Answer: %s\n\n", answer)
	if kind == models.CSQuestionCoding {
		b.WriteString(`Please evaluate the student's Python code. Assess the following:
1. Correctness: Does the code likely solve the problem based on the description? (Answer Yes/No/Partially)
2. Explanation: Briefly explain if the code is correct, or why it's incorrect or incomplete.
3. AI Feedback: Provide specific, constructive feedback on the code's logic, style, potential bugs, or areas for improvement.
4. Detailed Solution: Provide a correct and idiomatic Python solution to the original problem.
5. Simulated Output: Describe the expected output for a simple test case. Do NOT attempt to execute the code.

Format your response clearly, label each section (Correctness, Explanation, AI Feedback, Detailed Solution, Simulated Output).
`)
	} else {
		b.WriteString(`Please evaluate the student's explanation. Assess the following:
1. Correctness: Is the explanation conceptually accurate and complete? (Answer Yes/No/Partially)
2. Explanation: Briefly explain why the student's answer is correct or where it falls short.
3. AI Feedback: Provide specific feedback on clarity, accuracy, depth, and examples used. Suggest improvements.
4. Detailed Solution: Provide a clear, concise, and accurate model answer to the original question.

Format your response clearly, label each section (Correctness, Explanation, AI Feedback, Detailed Solution).
`)
	}
	return b.String()
}

// FlashcardsPrompt asks for Q/A pairs in the format ParseFlashcards reads.
func FlashcardsPrompt(chapter string) string {
	return fmt.Sprintf(`Generate 3-5 flashcards for the Computer Science chapter: '%s'.
Each flashcard should have a clear Question and a concise Answer.
Use the following format strictly for each flashcard:

Q: [Your Question Here]
A: [Your Answer Here]

Q: [Another Question Here]
A: [Another Answer Here]

(and so on...)
`, chapter)
}

// SummaryPrompt asks for a short prose summary of a chapter.
func SummaryPrompt(chapter string) string {
	return fmt.Sprintf("Generate a concise educational summary (around 150-250 words) for the Computer Science chapter: '%s'. The summary should cover the main concepts and be easy to understand for a student.", chapter)
}

// KeyPointsPrompt asks for a bullet list in the format ParseKeyPoints reads.
func KeyPointsPrompt(chapter string) string {
	return fmt.Sprintf("Generate a list of 5-7 key points for the Computer Science chapter: '%s'. Each key point should be a concise statement. Start each key point with a hyphen (-) or a number followed by a period (e.g., '1.').", chapter)
}

func fence(text string) string {
	return "```\n" + text + "\n```\n"
}
