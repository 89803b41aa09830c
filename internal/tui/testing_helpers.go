package tui

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/porter/internal/collection"
	"github.com/studiowebux/porter/internal/config"
	"github.com/studiowebux/porter/internal/executor"
	"github.com/studiowebux/porter/internal/keybinds"
	"github.com/studiowebux/porter/internal/types"
)

// fakeDispatcher records requests instead of sending them
type fakeDispatcher struct {
	mu     sync.Mutex
	specs  []types.RequestSpec
	result *types.ResponseResult
}

func (f *fakeDispatcher) dispatch(ctx context.Context, spec types.RequestSpec, opts executor.Options) *types.ResponseResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.specs = append(f.specs, spec)
	if f.result != nil {
		return f.result
	}
	return &types.ResponseResult{StatusCode: 200, Headers: map[string]string{}, Body: "{}"}
}

func (f *fakeDispatcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.specs)
}

// testConfig returns a config rooted in a temporary directory
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DataDir:        dir,
		CollectionFile: filepath.Join(dir, "default.json"),
		RequestTimeout: 5,
		VerifyTLS:      true,
		LogFile:        filepath.Join(dir, "porter.log"),
		LogLevel:       "info",
	}
}

// CreateTestModel creates a Model with a temporary collection file and a
// fake dispatcher
func CreateTestModel(t *testing.T) (*Model, *fakeDispatcher) {
	t.Helper()
	return CreateTestModelWithConfig(t, testConfig(t))
}

// CreateTestModelWithConfig is CreateTestModel for a prepared config, so a
// collection file can be written before the model loads it
func CreateTestModelWithConfig(t *testing.T, cfg *config.Config) (*Model, *fakeDispatcher) {
	t.Helper()

	fake := &fakeDispatcher{}
	m := New(cfg, collection.NewStore(cfg.CollectionFile), keybinds.NewDefaultRegistry(), "test-version")
	m.dispatch = fake.dispatch
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	return m, fake
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
