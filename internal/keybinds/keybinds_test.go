package keybinds

import (
	"strings"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		context Context
		key     string
		want    Action
	}{
		{ContextGlobal, "ctrl+s", ActionSave},
		{ContextGlobal, "ctrl+r", ActionSend},
		{ContextGlobal, "ctrl+n", ActionAddHeader},
		{ContextGlobal, "ctrl+w", ActionRemoveHeader},
		{ContextGlobal, "ctrl+y", ActionCopyBody},
		{ContextGlobal, "ctrl+t", ActionNextTab},
		{ContextGlobal, "ctrl+f", ActionEditFilter},
		{ContextGlobal, "ctrl+q", ActionQuit},
		{ContextGlobal, "ctrl+c", ActionQuitForce},
		{ContextWorkbench, "up", ActionNavigateUp},
		{ContextWorkbench, "enter", ActionActivate},
		{ContextWorkbench, "ctrl+s", ActionSave}, // falls through to global
		{ContextFilter, "enter", ActionTextSubmit},
		{ContextFilter, "esc", ActionTextCancel},
	}
	for _, tt := range tests {
		got, ok := r.Match(tt.context, tt.key)
		if !ok || got != tt.want {
			t.Errorf("Match(%s, %q) = %q, %v; want %q", tt.context, tt.key, got, ok, tt.want)
		}
	}

	if _, ok := r.Match(ContextFilter, "up"); ok {
		t.Error("workbench keys should not leak into the filter context")
	}
}

func TestDefaultRegistryIsValid(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())
	if result.HasErrors() || result.HasWarnings() {
		t.Errorf("default registry should be clean:\n%s", result.String())
	}
	if result.String() != "No issues found" {
		t.Errorf("String() = %q", result.String())
	}
}

func TestEveryActionHasDefaultBinding(t *testing.T) {
	r := NewDefaultRegistry()
	for action, context := range actionContexts {
		if len(r.GetBinding(context, action)) == 0 {
			t.Errorf("action %s has no default key in %s", action, context)
		}
	}
}

func TestGetBinding(t *testing.T) {
	r := NewRegistry()
	r.RegisterMultiple(ContextGlobal, []string{"ctrl+r", "f5"}, ActionSend)

	if got := r.GetBindingString(ContextWorkbench, ActionSend); got != "ctrl+r, f5" {
		t.Errorf("GetBindingString() = %q", got)
	}
	if got := r.GetBindingString(ContextGlobal, ActionSave); got != "unbound" {
		t.Errorf("GetBindingString(unbound) = %q", got)
	}
}

func TestUnbind(t *testing.T) {
	r := NewRegistry()
	r.RegisterMultiple(ContextGlobal, []string{"a", "b"}, ActionSend)
	r.Register(ContextGlobal, "c", ActionSave)

	r.Unbind(ContextGlobal, ActionSend)

	if r.HasBinding(ContextGlobal, "a") || r.HasBinding(ContextGlobal, "b") {
		t.Error("send keys should be removed")
	}
	if !r.HasBinding(ContextGlobal, "c") {
		t.Error("save key should remain")
	}
}

func TestListBindings(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "ctrl+q", ActionQuit)
	r.Register(ContextWorkbench, "down", ActionNavigateDown)
	r.Register(ContextWorkbench, "up", ActionNavigateUp)

	got := r.ListBindings(ContextWorkbench)
	if len(got) != 3 {
		t.Fatalf("ListBindings() returned %d bindings", len(got))
	}
	if got[0].Key != "down" || got[1].Key != "up" || got[2].Context != ContextGlobal {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	r := NewDefaultRegistry()
	clone := r.Clone()
	clone.Register(ContextGlobal, "ctrl+s", ActionSend)

	if a, _ := r.Match(ContextGlobal, "ctrl+s"); a != ActionSave {
		t.Errorf("original changed: ctrl+s -> %s", a)
	}
}

func TestApplyOverrides(t *testing.T) {
	r := NewDefaultRegistry()
	result := ApplyOverrides(r, map[string][]string{
		"send":          {"ctrl+g", " f5 "},
		"navigate_left": {"ctrl+b"},
	})

	if result.HasErrors() {
		t.Fatalf("unexpected errors:\n%s", result.String())
	}
	if r.HasBinding(ContextGlobal, "ctrl+r") {
		t.Error("default send key should be replaced")
	}
	for _, key := range []string{"ctrl+g", "f5"} {
		if a, ok := r.Match(ContextGlobal, key); !ok || a != ActionSend {
			t.Errorf("%s -> %s, want send", key, a)
		}
	}
	if a, _ := r.Match(ContextWorkbench, "ctrl+b"); a != ActionNavigateLeft {
		t.Errorf("ctrl+b -> %s", a)
	}
	if _, ok := r.Match(ContextWorkbench, "left"); ok {
		t.Error("left should be unbound after override")
	}
}

func TestApplyOverridesReportsProblems(t *testing.T) {
	r := NewDefaultRegistry()
	result := ApplyOverrides(r, map[string][]string{
		"launch_rockets": {"x"},
		"save":           {"ctrl+c"},
		"copy_body":      {""},
		"next_tab":       {"ctrl+s"},
	})

	if len(result.Errors) != 3 {
		t.Fatalf("want 3 errors, got:\n%s", result.String())
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0].Message, "save") {
		t.Errorf("want a warning about replacing save, got:\n%s", result.String())
	}

	// rejected overrides keep their defaults
	if a, _ := r.Match(ContextGlobal, "ctrl+c"); a != ActionQuitForce {
		t.Errorf("ctrl+c -> %s", a)
	}
	if a, _ := r.Match(ContextGlobal, "ctrl+y"); a != ActionCopyBody {
		t.Errorf("ctrl+y -> %s", a)
	}
	if a, _ := r.Match(ContextGlobal, "ctrl+s"); a != ActionNextTab {
		t.Errorf("ctrl+s -> %s", a)
	}
}

func TestLoadOrDefault(t *testing.T) {
	r, result := LoadOrDefault(nil)
	if result.HasErrors() {
		t.Fatal(result.String())
	}
	if a, _ := r.Match(ContextGlobal, "ctrl+r"); a != ActionSend {
		t.Errorf("ctrl+r -> %s", a)
	}

	r, _ = LoadOrDefault(map[string][]string{"quit": {"ctrl+x"}})
	if a, _ := r.Match(ContextGlobal, "ctrl+x"); a != ActionQuit {
		t.Errorf("ctrl+x -> %s", a)
	}
}

func TestValidatorFlagsReservedAndShadowed(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "ctrl+c", ActionSend)
	r.Register(ContextGlobal, "ctrl+q", ActionQuit)
	r.Register(ContextWorkbench, "ctrl+q", ActionActivate)

	result := NewValidator().ValidateRegistry(r)
	if !result.HasErrors() {
		t.Error("rebinding ctrl+c should be an error")
	}

	var shadowed bool
	for _, w := range result.Warnings {
		if w.Key == "ctrl+q" && strings.Contains(w.Message, "shadows") {
			shadowed = true
		}
	}
	if !shadowed {
		t.Errorf("expected a shadowing warning:\n%s", result.String())
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"ctrl+s", false},
		{"f5", false},
		{"G", false},
		{"", true},
		{"ctrl+", true},
		{"ctrl s", true},
	}
	for _, tt := range tests {
		if err := ValidateKey(tt.key); (err != nil) != tt.wantErr {
			t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
		}
	}
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Type: "conflict", Context: ContextGlobal, Key: "ctrl+c", Message: "reserved key rebound"}
	want := "[conflict] ctrl+c in context 'global': reserved key rebound"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
