// Where: internal/commands/mock_prompter_test.go
// What: Test helper prompter for interaction-dependent command tests.
// Why: Provide deterministic input/confirm behavior without TTY.
package commands

type mockPrompter struct {
	inputFn   func(title string, suggestions []string) (string, error)
	confirmFn func(title string, defaultValue bool) (bool, error)

	// Convenience fields for recording/controlling answers
	inputValue      string
	lastTitle       string
	lastSuggestions []string
	inputCalls      int
	confirmCalls    int
}

func (m *mockPrompter) Input(title string, suggestions []string) (string, error) {
	m.lastTitle = title
	m.lastSuggestions = suggestions
	m.inputCalls++
	if m.inputFn != nil {
		return m.inputFn(title, suggestions)
	}
	return m.inputValue, nil
}

func (m *mockPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	m.lastTitle = title
	m.confirmCalls++
	if m.confirmFn != nil {
		return m.confirmFn(title, defaultValue)
	}
	return defaultValue, nil
}
