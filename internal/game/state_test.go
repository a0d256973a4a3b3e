package game

import (
	"errors"
	"testing"
)

func TestStateMachineStartsShowingLogo(t *testing.T) {
	m := NewStateMachine()
	if m.Current() != StateShowingLogo {
		t.Errorf("Expected showing_logo, got %s", m.Current())
	}
}

func TestStateMachineTransitions(t *testing.T) {
	tests := []struct {
		name    string
		path    []GameState
		wantErr bool
	}{
		{"logo to playing", []GameState{StatePlaying}, false},
		{"full game", []GameState{StatePlaying, StateDead}, false},
		{"logo to dead", []GameState{StateDead}, true},
		{"playing twice", []GameState{StatePlaying, StatePlaying}, true},
		{"dead is terminal", []GameState{StatePlaying, StateDead, StateShowingLogo}, true},
		{"dead to playing", []GameState{StatePlaying, StateDead, StatePlaying}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStateMachine()
			var err error
			for _, s := range tt.path {
				if err = m.Transition(s); err != nil {
					break
				}
			}
			if tt.wantErr {
				if !errors.Is(err, ErrIllegalTransition) {
					t.Errorf("Expected ErrIllegalTransition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if m.Current() != tt.path[len(tt.path)-1] {
				t.Errorf("Expected %s, got %s", tt.path[len(tt.path)-1], m.Current())
			}
		})
	}
}

func TestIllegalTransitionKeepsState(t *testing.T) {
	m := NewStateMachine()
	if err := m.Transition(StateDead); err == nil {
		t.Fatal("Expected error")
	}
	if m.Current() != StateShowingLogo {
		t.Errorf("Expected state unchanged, got %s", m.Current())
	}
}

func TestEveryStateHasTapHandler(t *testing.T) {
	for _, s := range []GameState{StateShowingLogo, StatePlaying, StateDead} {
		if _, ok := tapHandlers[s]; !ok {
			t.Errorf("Expected tap handler for %s", s)
		}
	}
}

func TestGameStateString(t *testing.T) {
	tests := []struct {
		state GameState
		want  string
	}{
		{StateShowingLogo, "showing_logo"},
		{StatePlaying, "playing"},
		{StateDead, "dead"},
		{GameState(9), "GameState(9)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("Expected %s, got %s", tt.want, got)
		}
	}
}
