package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// ApplyOverrides rebinds actions from the config file's keybinds section.
// Each entry replaces every default key of that action. Invalid entries are
// skipped and reported in the result; valid ones are applied.
func ApplyOverrides(registry *Registry, overrides map[string][]string) *ValidationResult {
	result := &ValidationResult{}
	validator := NewValidator()

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action := Action(strings.TrimSpace(name))
		context, ok := ContextFor(action)
		if !ok {
			result.Errors = append(result.Errors, ValidationError{
				Type:    "invalid",
				Context: ContextGlobal,
				Message: fmt.Sprintf("unknown action %q", name),
			})
			continue
		}

		var keys []string
		valid := true
		for _, raw := range overrides[name] {
			key := strings.TrimSpace(raw)
			if err := ValidateKey(key); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Type: "invalid", Context: context, Key: raw, Message: err.Error(),
				})
				valid = false
				continue
			}
			if validator.reservedKeys[key] && action != ActionQuitForce {
				result.Errors = append(result.Errors, ValidationError{
					Type: "conflict", Context: context, Key: key, Message: "reserved key cannot be rebound",
				})
				valid = false
				continue
			}
			keys = append(keys, key)
		}
		if !valid || len(keys) == 0 {
			continue
		}

		registry.Unbind(context, action)
		for _, key := range keys {
			if existing, ok := registry.bindings[context][key]; ok && existing != action {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("replaces binding for %s", existing),
				})
			}
			registry.Register(context, key, action)
		}
	}

	return result
}

// LoadOrDefault builds the default registry and applies overrides on top
func LoadOrDefault(overrides map[string][]string) (*Registry, *ValidationResult) {
	registry := NewDefaultRegistry()
	if len(overrides) == 0 {
		return registry, &ValidationResult{}
	}
	return registry, ApplyOverrides(registry, overrides)
}
