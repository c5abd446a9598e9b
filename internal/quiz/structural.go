package quiz

import (
	"slices"
	"strings"
)

// maxOptions is the number of available option labels, A through Z.
const maxOptions = 26

// checkStructure rejects quizzes that cannot be administered or graded.
// Short quizzes and questions with fewer options than requested pass.
func checkStructure(q *Quiz) *ValidationError {
	if len(q.Questions) == 0 {
		return &ValidationError{Message: "no questions"}
	}
	for i, question := range q.Questions {
		n := i + 1
		if strings.TrimSpace(question.Question) == "" {
			return &ValidationError{Question: n, Message: "question text is empty"}
		}
		if len(question.Options) == 0 {
			return &ValidationError{Question: n, Message: "no options"}
		}
		if len(question.Options) > maxOptions {
			return &ValidationError{Question: n, Message: "more options than labels A-Z"}
		}
		if !slices.Contains(question.Options, question.CorrectAnswer) {
			return &ValidationError{Question: n, Message: "correct_answer is not one of the options"}
		}
	}
	return nil
}
