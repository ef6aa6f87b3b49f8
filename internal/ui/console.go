// Package ui is the interactive surface: styled console output, the
// decision prompt for the negotiation loop, a change-type picker, and
// a progress spinner around generation calls.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sprite-ai/gitscribe/internal/negotiate"
	"github.com/sprite-ai/gitscribe/internal/prompt"
)

// ErrInterrupted reports a user interrupt caught inside a full-screen
// prompt, where the process signal handler is not in effect.
var ErrInterrupted = errors.New("interrupted by user")

// Console reads decisions from In and writes styled output to Out.
// It implements negotiate.DecisionProvider.
type Console struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// NewConsole returns a Console bound to stdin/stdout.
func NewConsole() *Console {
	return &Console{In: os.Stdin, Out: os.Stdout}
}

func (c *Console) readLine() (string, error) {
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// Decide presents a suggestion and reads one decision. An empty line
// or "y" accepts, "r" regenerates, anything else cancels.
func (c *Console) Decide(kind prompt.Kind, suggestion string) (negotiate.Decision, error) {
	fmt.Fprintf(c.Out, "\n%s\n%s\n",
		headerStyle.Render("Suggested "+kind.String()+":"),
		suggestionStyle.Render(suggestion))
	fmt.Fprint(c.Out, promptStyle.Render("Accept? (Y) | Regenerate? (r) | Cancel? (n): "))

	answer, err := c.readLine()
	if err != nil {
		return negotiate.Cancel, fmt.Errorf("reading decision: %w", err)
	}

	switch answer {
	case "", "y":
		return negotiate.Accept, nil
	case "r":
		fmt.Fprintln(c.Out, infoStyle.Render("Trying a different suggestion..."))
		return negotiate.Regenerate, nil
	default:
		return negotiate.Cancel, nil
	}
}

// Confirm asks a yes/no question. An empty answer takes the default.
func (c *Console) Confirm(question string, defaultYes bool) (bool, error) {
	marker := "(y/N)"
	if defaultYes {
		marker = "(Y/n)"
	}
	fmt.Fprintf(c.Out, "%s ", promptStyle.Render(question+" "+marker+":"))

	answer, err := c.readLine()
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	if answer == "" {
		return defaultYes, nil
	}
	return strings.HasPrefix(answer, "y"), nil
}

// Infof prints a dim informational line.
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintln(c.Out, infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Successf prints a green line.
func (c *Console) Successf(format string, args ...any) {
	fmt.Fprintln(c.Out, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a yellow line.
func (c *Console) Warnf(format string, args ...any) {
	fmt.Fprintln(c.Out, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Errorf prints a red line.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.Out, errorStyle.Render(fmt.Sprintf(format, args...)))
}
