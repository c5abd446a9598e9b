// Package quiz generates multiple-choice quizzes with the model, runs them
// on the console, scores the answers and explains the misses.
package quiz

// Quiz is the parsed model output:
// {"questions": [{"question", "options", "correct_answer"}]}.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Question is one multiple-choice question. Options are addressed by
// label in order: A, B, C, ...
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// AnswerRecord is the graded answer to one question.
type AnswerRecord struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// Result is the outcome of evaluating one quiz. Score keeps full
// precision; it is shown with two decimals.
type Result struct {
	Score   float64        `json:"score"`
	Correct int            `json:"correct"`
	Total   int            `json:"total"`
	Records []AnswerRecord `json:"results"`
	Level   string         `json:"level"`
}

// HistoryEntry is appended to the session for every completed quiz.
type HistoryEntry struct {
	Score   float64        `json:"score"`
	Level   string         `json:"level"`
	Results []AnswerRecord `json:"results"`
}

// HistoryEntry returns the history log entry for r.
func (r *Result) HistoryEntry() HistoryEntry {
	return HistoryEntry{Score: r.Score, Level: r.Level, Results: r.Records}
}
