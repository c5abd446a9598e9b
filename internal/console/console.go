// Package console is the line-oriented terminal the tutor talks through.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
)

// Console reads learner input line by line and writes styled output.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	theme Theme
	plain bool
}

// New creates a Console. When styled is false output carries no escape
// sequences.
func New(in io.Reader, out io.Writer, styled bool) *Console {
	c := &Console{in: bufio.NewReader(in), out: out, theme: PlainTheme(), plain: true}
	if styled {
		c.theme = DefaultTheme()
		c.plain = false
	}
	return c
}

// Stdio creates a Console on stdin/stdout, styled when stdout is a
// terminal and NO_COLOR is unset.
func Stdio() *Console {
	return New(os.Stdin, os.Stdout, isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "")
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// Ask prints prompt and reads one line, without its line ending. A final
// line with no newline is returned as is; end of input is io.EOF. The
// context is checked before blocking.
func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, c.render(c.theme.Prompt, prompt))

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Show prints one line of body text.
func (c *Console) Show(text string) {
	fmt.Fprintln(c.out, c.render(c.theme.Body, text))
}

// Title prints a heading.
func (c *Console) Title(text string) {
	fmt.Fprintln(c.out, c.render(c.theme.Title, text))
}

// Info prints a dimmed status line.
func (c *Console) Info(text string) {
	fmt.Fprintln(c.out, c.render(c.theme.Info, text))
}

// Success prints a confirmation line.
func (c *Console) Success(text string) {
	fmt.Fprintln(c.out, c.render(c.theme.Success, text))
}

// Error prints an error line.
func (c *Console) Error(text string) {
	fmt.Fprintln(c.out, c.render(c.theme.Error, text))
}

// Assistant prints a model reply prefixed with "Assistant:".
func (c *Console) Assistant(text string) {
	fmt.Fprintln(c.out, c.render(c.theme.Assistant, "Assistant:")+" "+text)
}

func (c *Console) render(style lipgloss.Style, text string) string {
	if c.plain || text == "" {
		return text
	}
	return style.Render(text)
}
