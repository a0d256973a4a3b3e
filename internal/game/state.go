package game

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var ErrIllegalTransition = errors.New("illegal game state transition")

type GameState int

const (
	StateShowingLogo GameState = iota
	StatePlaying
	StateDead
)

func (s GameState) String() string {
	switch s {
	case StateShowingLogo:
		return "showing_logo"
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

// Dead is terminal: a new scene is presented to play again.
var allowedTransitions = map[GameState][]GameState{
	StateShowingLogo: {StatePlaying},
	StatePlaying:     {StateDead},
}

type StateMachine struct {
	current GameState
}

func NewStateMachine() *StateMachine {
	return &StateMachine{current: StateShowingLogo}
}

func (m *StateMachine) Current() GameState {
	return m.current
}

func (m *StateMachine) CanTransition(to GameState) bool {
	return lo.Contains(allowedTransitions[m.current], to)
}

func (m *StateMachine) Transition(to GameState) error {
	if !m.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, m.current, to)
	}
	m.current = to
	return nil
}

type tapHandler func(s *Scene)

var tapHandlers = map[GameState]tapHandler{
	StateShowingLogo: (*Scene).tapShowingLogo,
	StatePlaying:     (*Scene).tapPlaying,
	StateDead:        (*Scene).tapDead,
}
