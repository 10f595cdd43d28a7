package mocks

import (
	"github.com/lmoreno/courtbook/internal/dependencies/notifier"
)

// MockNotifier is a scripted Notifier for testing. Confirm answers are
// consumed from a queue; an empty queue answers false.
type MockNotifier struct {
	Successes []string
	Errors    []string

	ConfirmAnswers []bool
	confirmIndex   int
	ConfirmPrompts []string
}

// Ensure MockNotifier implements Notifier
var _ notifier.Notifier = (*MockNotifier)(nil)

// NewMockNotifier creates a new MockNotifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Success records the notification
func (n *MockNotifier) Success(title, message string) {
	n.Successes = append(n.Successes, title)
}

// Error records the notification
func (n *MockNotifier) Error(title, message string) {
	n.Errors = append(n.Errors, title)
}

// Confirm returns the next queued answer, or false if none remaining
func (n *MockNotifier) Confirm(title, message, confirmLabel, cancelLabel string) bool {
	n.ConfirmPrompts = append(n.ConfirmPrompts, title)
	if n.confirmIndex >= len(n.ConfirmAnswers) {
		return false
	}
	answer := n.ConfirmAnswers[n.confirmIndex]
	n.confirmIndex++
	return answer
}

// QueueConfirm adds answers to the confirmation queue
func (n *MockNotifier) QueueConfirm(answers ...bool) {
	n.ConfirmAnswers = append(n.ConfirmAnswers, answers...)
}
