package quiz

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// scriptedPrompter replays canned input lines and records output.
type scriptedPrompter struct {
	inputs []string
	shown  []string
	asked  int
}

func newPrompter(inputs ...string) *scriptedPrompter {
	return &scriptedPrompter{inputs: inputs}
}

func (p *scriptedPrompter) Ask(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.asked++
	if len(p.inputs) == 0 {
		return "", io.EOF
	}
	in := p.inputs[0]
	p.inputs = p.inputs[1:]
	return in, nil
}

func (p *scriptedPrompter) Show(text string) {
	p.shown = append(p.shown, text)
}

func (p *scriptedPrompter) output() string {
	return strings.Join(p.shown, "\n")
}

// quizJSON builds a quiz with n questions whose correct answer is always
// the second option.
func quizJSON(n int) string {
	var b strings.Builder
	b.WriteString(`{"questions": [`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"question": "Q%d?", "options": ["w%d", "r%d", "x%d", "y%d"], "correct_answer": "r%d"}`, i, i, i, i, i, i)
	}
	b.WriteString(`]}`)
	return b.String()
}

func sampleQuiz(n int) *Quiz {
	q, err := ParseQuiz(quizJSON(n))
	if err != nil {
		panic(err)
	}
	return q
}

// recorderFunc adapts a function to HistoryRecorder.
type recorderFunc func(ctx context.Context, st *SessionState, res *Result) error

func (f recorderFunc) Record(ctx context.Context, st *SessionState, res *Result) error {
	return f(ctx, st, res)
}
