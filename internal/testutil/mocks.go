package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockPermissionGate is a mock for hotkey.PermissionGate
type MockPermissionGate struct {
	mock.Mock
}

func (m *MockPermissionGate) Authorized() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockNotifier is a mock for hotkey.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(title, message string) {
	m.Called(title, message)
}

// MockPositions is a mock for the persisted position store
type MockPositions struct {
	mock.Mock
}

func (m *MockPositions) Get(key string) (int, bool) {
	args := m.Called(key)
	return args.Int(0), args.Bool(1)
}

func (m *MockPositions) Set(key string, value int) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockPositions) Close() error {
	args := m.Called()
	return args.Error(0)
}

// DisplayRecorder collects every display string passed to it
type DisplayRecorder struct {
	mu    sync.Mutex
	shown []string
}

// Record stores a display string
func (r *DisplayRecorder) Record(display string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, display)
}

// Shown returns a copy of everything recorded so far
func (r *DisplayRecorder) Shown() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.shown))
	copy(out, r.shown)
	return out
}

// Last returns the most recent display string
func (r *DisplayRecorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.shown) == 0 {
		return ""
	}
	return r.shown[len(r.shown)-1]
}
