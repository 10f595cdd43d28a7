package factory

import (
	"time"

	"github.com/lmoreno/courtbook/internal/dependencies/mocks"
	"github.com/lmoreno/courtbook/internal/storage/memory"
	"github.com/lmoreno/courtbook/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with in-memory
// storage and a mocked clock
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
