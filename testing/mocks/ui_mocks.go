// Package mocks provides hand-written test doubles for urlseg interfaces.
package mocks

import (
	"github.com/sgaunet/urlseg/internal/ui"
	"github.com/sgaunet/urlseg/pkg/urlparser"
)

// MockPrompter is a mock implementation of ui.Prompter for testing.
// Fragments are returned in order; once exhausted, AskFragment returns "".
type MockPrompter struct {
	Fragments        []string
	AskFragmentError error
	SelectModeResult urlparser.Mode
	SelectModeError  error
	CallHistory      []string
	CallCount        map[string]int
}

var _ ui.Prompter = (*MockPrompter)(nil)

// NewMockPrompter creates a new mock prompter answering the given fragments.
func NewMockPrompter(fragments ...string) *MockPrompter {
	return &MockPrompter{
		Fragments:        fragments,
		SelectModeResult: urlparser.ModePartial,
		CallHistory:      []string{},
		CallCount:        make(map[string]int),
	}
}

// AskFragment implements ui.Prompter interface.
func (m *MockPrompter) AskFragment(message string) (string, error) {
	m.CallHistory = append(m.CallHistory, "AskFragment:"+message)
	m.CallCount["AskFragment"]++
	if m.AskFragmentError != nil {
		return "", m.AskFragmentError
	}
	if len(m.Fragments) == 0 {
		return "", nil
	}
	next := m.Fragments[0]
	m.Fragments = m.Fragments[1:]
	return next, nil
}

// SelectMode implements ui.Prompter interface.
func (m *MockPrompter) SelectMode(current urlparser.Mode) (urlparser.Mode, error) {
	m.CallHistory = append(m.CallHistory, "SelectMode:"+string(current))
	m.CallCount["SelectMode"]++
	return m.SelectModeResult, m.SelectModeError
}

// GetCallCountFor returns the number of times a method was called.
func (m *MockPrompter) GetCallCountFor(method string) int {
	return m.CallCount[method]
}
