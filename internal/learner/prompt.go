package learner

import (
	"encoding/json"
	"fmt"
	"strings"
)

const elicitPrompt = `Ask me %d questions about my learning preferences covering: information processing style, preferred content formats, optimal study environment, motivation factors, memory techniques that work, attention span, and feedback preferences.
Do not answer them. Only return the questions as plain text, one per line, with no bullet points or explanations.`

const analysisPrompt = `Based on the following user responses, give a JSON-formatted analysis of their learning preferences and how to teach them best (include methods, formats, environment, motivation style, etc.).
Return ONLY a valid JSON object. No text before or after.

Responses:
%s`

func buildElicitPrompt(count int) string {
	return fmt.Sprintf(elicitPrompt, count)
}

// buildAnalysisPrompt embeds the interview as a question → answer object.
func buildAnalysisPrompt(answers []Answer) string {
	qa := make(map[string]string, len(answers))
	for _, a := range answers {
		qa[a.Question] = a.Answer
	}
	body, err := json.MarshalIndent(qa, "", "  ")
	if err != nil {
		var b strings.Builder
		for _, a := range answers {
			fmt.Fprintf(&b, "%s: %s\n", a.Question, a.Answer)
		}
		return fmt.Sprintf(analysisPrompt, b.String())
	}
	return fmt.Sprintf(analysisPrompt, body)
}
