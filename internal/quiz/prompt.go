package quiz

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/tutor/internal/learner"
)

// buildQuizPrompt builds the single generation instruction.
func buildQuizPrompt(topic, level string, prefs learner.Profile, cfg Config) string {
	prefsJSON := "{}"
	if len(prefs) > 0 {
		if b, err := json.Marshal(prefs); err == nil {
			prefsJSON = string(b)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on the user's learning preferences: %s,\n", prefsJSON)
	fmt.Fprintf(&b, "generate a short quiz (%d questions) on the topic: %s.\n", cfg.QuestionCount, topic)
	fmt.Fprintf(&b, "Difficulty level: %s.\n", level)
	fmt.Fprintf(&b, "Each question has exactly %d options and exactly one correct answer.\n", cfg.OptionCount)
	b.WriteString("correct_answer must be copied verbatim from options.\n")
	b.WriteString("Return ONLY a JSON object in this format, with no text before or after:\n")
	b.WriteString(`{
  "questions": [
    {
      "question": "...",
      "options": [`)
	for i := 0; i < cfg.OptionCount; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", "option "+Label(i))
	}
	b.WriteString(`],
      "correct_answer": "option B"
    }
  ]
}`)
	return b.String()
}

// buildReviewPrompt embeds the missed questions as indented JSON.
func buildReviewPrompt(missed []Question) (string, error) {
	body, err := json.MarshalIndent(missed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode missed questions: %w", err)
	}
	return fmt.Sprintf(`The user got these questions wrong:
%s

For each one, explain the correct answer simply and give a short explanation to help them understand.`, body), nil
}
