package quiz

import "fmt"

// Evaluate grades answers against q by exact, case-sensitive comparison
// with each correct_answer. It returns the result and every missed
// question in quiz order.
func Evaluate(q *Quiz, answers []string, level string) (*Result, []Question, error) {
	if q == nil || len(q.Questions) == 0 {
		return nil, nil, ErrEmptyQuiz
	}
	if len(answers) != len(q.Questions) {
		return nil, nil, fmt.Errorf("%w: %d questions, %d answers", ErrAnswerCountMismatch, len(q.Questions), len(answers))
	}

	res := &Result{
		Total:   len(q.Questions),
		Level:   level,
		Records: make([]AnswerRecord, 0, len(q.Questions)),
	}
	var missed []Question
	for i, question := range q.Questions {
		ok := answers[i] == question.CorrectAnswer
		res.Records = append(res.Records, AnswerRecord{
			Question:      question.Question,
			UserAnswer:    answers[i],
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     ok,
		})
		if ok {
			res.Correct++
		} else {
			missed = append(missed, question)
		}
	}
	res.Score = float64(res.Correct) / float64(res.Total) * 100
	return res, missed, nil
}

// FormatScore renders a score the way it is shown to the learner.
func FormatScore(score float64) string {
	return fmt.Sprintf("Your score: %.2f%%", score)
}
