package notifier

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Notifier surfaces outcomes to the user and gates destructive actions
// behind a confirmation. Implementations decide how messages are shown.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)

	// Confirm asks the user to approve an action. Returning false means
	// the user dismissed the prompt and no mutation should happen.
	Confirm(title, message, confirmLabel, cancelLabel string) bool
}

// Console is a terminal-backed Notifier. Confirmations read a single
// line from the input; anything other than the confirm label's first
// letter (case-insensitive) or "y"/"s" counts as dismissal.
type Console struct {
	In  io.Reader
	Out io.Writer
}

// NewConsole creates a Console notifier over the given streams
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{In: in, Out: out}
}

// Ensure Console implements Notifier
var _ Notifier = (*Console)(nil)

// Success prints a success notification
func (c *Console) Success(title, message string) {
	if message == "" {
		fmt.Fprintln(c.Out, title)
		return
	}
	fmt.Fprintf(c.Out, "%s: %s\n", title, message)
}

// Error prints an error notification
func (c *Console) Error(title, message string) {
	if title == "" {
		fmt.Fprintf(c.Out, "Error: %s\n", message)
		return
	}
	fmt.Fprintf(c.Out, "%s: %s\n", title, message)
}

// Confirm prompts and waits for a line of input
func (c *Console) Confirm(title, message, confirmLabel, cancelLabel string) bool {
	fmt.Fprintf(c.Out, "%s\n%s [%s/%s]: ", title, message, confirmLabel, cancelLabel)

	reader := bufio.NewReader(c.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return false
	}
	if answer == strings.ToLower(confirmLabel) {
		return true
	}
	return answer == "y" || answer == "s" || answer == "yes" || answer == "si" || answer == "sí"
}
