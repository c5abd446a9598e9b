package quiz

import (
	"context"
	"fmt"
	"strings"
)

// Prompter is the interactive surface administration runs on.
type Prompter interface {
	// Ask shows prompt and blocks for one line of input.
	Ask(ctx context.Context, prompt string) (string, error)

	// Show prints one line.
	Show(text string)
}

// Label returns the option label for position i: A, B, C, ...
func Label(i int) string {
	return string(rune('A' + i))
}

// ParseLabel maps learner input to an option index. Input is trimmed and
// upper-cased; only labels A through the n-th label are accepted.
func ParseLabel(input string, n int) (int, bool) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if len(s) != 1 {
		return 0, false
	}
	idx := int(s[0]) - 'A'
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

// Administer asks every question in order and returns the chosen option
// texts. Invalid labels are reported and asked again; input errors abort.
func Administer(ctx context.Context, p Prompter, q *Quiz) ([]string, error) {
	answers := make([]string, 0, len(q.Questions))
	for i, question := range q.Questions {
		labels := make([]string, len(question.Options))
		p.Show("")
		p.Show(fmt.Sprintf("Q%d: %s", i+1, question.Question))
		for j, opt := range question.Options {
			labels[j] = Label(j)
			p.Show(fmt.Sprintf("%s. %s", labels[j], opt))
		}

		prompt := fmt.Sprintf("Your answer (%s): ", strings.Join(labels, "/"))
		for {
			input, err := p.Ask(ctx, prompt)
			if err != nil {
				return nil, fmt.Errorf("read answer to question %d: %w", i+1, err)
			}
			if idx, ok := ParseLabel(input, len(question.Options)); ok {
				answers = append(answers, question.Options[idx])
				break
			}
			p.Show(fmt.Sprintf("Invalid input. Please enter %s.", orList(labels)))
		}
	}
	return answers, nil
}

// orList renders labels as "A, B, C, or D".
func orList(labels []string) string {
	switch len(labels) {
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " or " + labels[1]
	}
	return strings.Join(labels[:len(labels)-1], ", ") + ", or " + labels[len(labels)-1]
}
