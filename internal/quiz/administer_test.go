package quiz

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in     string
		n      int
		want   int
		wantOK bool
	}{
		{"A", 4, 0, true},
		{" c ", 3, 2, true},
		{"D", 3, 0, false},
		{"", 4, 0, false},
		{"AB", 4, 0, false},
		{"1", 4, 0, false},
		{"@", 4, 0, false},
		{"F", 6, 5, true},
	}
	for _, tt := range tests {
		got, ok := ParseLabel(tt.in, tt.n)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestAdminister_RejectsOutOfRangeLabel(t *testing.T) {
	q := &Quiz{Questions: []Question{
		{Question: "Pick", Options: []string{"one", "two", "three"}, CorrectAnswer: "three"},
	}}
	p := newPrompter("D", "C")

	answers, err := Administer(context.Background(), p, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"three"}, answers)
	assert.Equal(t, 2, p.asked)
	assert.Contains(t, p.output(), "Invalid input. Please enter A, B, or C.")
}

func TestAdminister_VariableOptionCounts(t *testing.T) {
	q := &Quiz{Questions: []Question{
		{Question: "Two", Options: []string{"yes", "no"}, CorrectAnswer: "no"},
		{Question: "Five", Options: []string{"a", "b", "c", "d", "e"}, CorrectAnswer: "e"},
	}}
	p := newPrompter("c", "b", "e")

	answers, err := Administer(context.Background(), p, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"no", "e"}, answers)

	out := p.output()
	assert.Contains(t, out, "Q1: Two")
	assert.Contains(t, out, "B. no")
	assert.Contains(t, out, "Q2: Five")
	assert.Contains(t, out, "E. e")
	assert.Contains(t, out, "Please enter A or B.")
}

func TestAdminister_EOFAborts(t *testing.T) {
	p := newPrompter("B")
	_, err := Administer(context.Background(), p, sampleQuiz(2))
	assert.ErrorIs(t, err, io.EOF)
}

func TestAdminister_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Administer(ctx, newPrompter("A"), sampleQuiz(1))
	assert.ErrorIs(t, err, context.Canceled)
}
