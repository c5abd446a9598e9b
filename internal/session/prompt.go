package session

import (
	"fmt"

	"github.com/abhisek/tutor/internal/quiz"
)

const systemPromptTemplate = `You are a personalized AI tutor for %s.
Their learning preferences are: %s.

Topic to teach: %s
Current level: %s

Adapt your style to be clear, brief, and actionable. Don't explain everything at once. Teach one core idea at a time, using small code examples or analogies. Wait for the student to ask for more or quiz them after each chunk. Avoid long answers or full lessons unless explicitly asked.`

// BuildSystemPrompt renders the tutor persona for the session.
func BuildSystemPrompt(st *quiz.SessionState) string {
	name := st.Name
	if name == "" {
		name = "User"
	}
	topic := st.Topic
	if topic == "" {
		topic = "Unknown topic"
	}
	level := st.Level
	if level == "" {
		level = "Unknown level"
	}
	return fmt.Sprintf(systemPromptTemplate, name, st.Profile.JSON(), topic, level)
}
