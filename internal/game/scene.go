package game

import (
	"fmt"

	"github.com/shvbsle/crashyplane/internal/engine"
	"github.com/shvbsle/crashyplane/internal/log"
)

// ScoreBoard keeps the best scores across games.
type ScoreBoard interface {
	Best() int
	// Record stores a finished game and returns the rank it reached, or 0.
	Record(score int) int
}

type Option func(*Scene)

// WithScoreBoard records every finished game on b and shows its best score.
func WithScoreBoard(b ScoreBoard) Option {
	return func(s *Scene) {
		s.board = b
	}
}

// Scene is the single game screen: a plane that falls under gravity, flaps
// on tap and flies through gaps between rock pairs.
type Scene struct {
	world *engine.World
	fsm   *StateMachine
	gaps  *ShuffledBag
	score int
	board ScoreBoard

	player     engine.Handle
	scoreLabel engine.Handle
	logo       engine.Handle
	gameOver   engine.Handle
	music      engine.Handle
	bestLabel  engine.Handle
}

func NewScene(opts ...Option) *Scene {
	s := &Scene{
		fsm: NewStateMachine(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scene) OnEnter(w *engine.World) error {
	s.world = w
	w.Gravity = Gravity

	frame := w.Frame()
	s.gaps = NewShuffledBag(int(frame.H*GapMinFactor), int(frame.H*GapMaxFactor), w.Rand())

	builders := []struct {
		name  string
		build func() error
	}{
		{"player", s.createPlayer},
		{"sky", s.createSky},
		{"background", s.createBackground},
		{"ground", s.createGround},
		{"score", s.createScore},
		{"logos", s.createLogos},
		{"music", s.createMusic},
	}
	for _, b := range builders {
		if err := b.build(); err != nil {
			return fmt.Errorf("could not create %s: %w", b.name, err)
		}
	}

	log.Scene().Info("scene entered", "state", s.fsm.Current().String())
	return nil
}

func (s *Scene) OnUpdate(currentTime float64) {
	n, ok := s.world.Node(s.player)
	if !ok || n.Body == nil {
		return
	}

	value := n.Body.Velocity.Y * RotationFactor
	s.world.RunKeyed(s.player, rotateKey, engine.RotateTo(value, RotateDuration))
}

// OnTouch dispatches a tap to the handler of the current state.
func (s *Scene) OnTouch() {
	handler, ok := tapHandlers[s.fsm.Current()]
	if !ok {
		log.Scene().Warn("no tap handler", "state", s.fsm.Current().String())
		return
	}
	handler(s)
}

func (s *Scene) OnEvent(h engine.Handle, ev engine.Event) {
	switch ev {
	case eventActivatePlayer:
		s.activatePlayer()
	case eventSpawnRocks:
		if err := s.createRocks(); err != nil {
			log.Scene().Error("could not spawn rocks", "error", err)
		}
	default:
		log.Scene().Warn("unhandled scene event", "event", int(ev))
	}
}

func (s *Scene) State() GameState {
	return s.fsm.Current()
}

func (s *Scene) Score() int {
	return s.score
}

func (s *Scene) World() *engine.World {
	return s.world
}

func (s *Scene) Player() engine.Handle {
	return s.player
}

func (s *Scene) setScore(score int) {
	s.score = score
	if label, ok := s.world.Node(s.scoreLabel); ok {
		label.Text = fmt.Sprintf("SCORE: %d", score)
	}
}

func (s *Scene) setBest(best int) {
	if label, ok := s.world.Node(s.bestLabel); ok {
		label.Text = fmt.Sprintf("BEST: %d", best)
	}
}

func (s *Scene) tapShowingLogo() {
	if err := s.fsm.Transition(StatePlaying); err != nil {
		log.Scene().Error("tap ignored", "error", err)
		return
	}
	log.Scene().Info("game started")

	s.world.Run(s.logo, engine.Sequence(
		engine.FadeOut(LogoFadeDuration),
		engine.Wait(LogoWaitDuration),
		engine.Run(eventActivatePlayer),
		engine.RemoveFromParent(),
	))
}

func (s *Scene) tapPlaying() {
	n, ok := s.world.Node(s.player)
	if !ok || n.Body == nil {
		return
	}
	n.Body.Velocity = engine.Vec{}
	n.Body.ApplyImpulse(engine.Vec{Y: FlapImpulse})
}

func (s *Scene) tapDead() {
	view := s.world.View()
	if view == nil {
		log.Scene().Warn("restart requested without a view")
		return
	}
	if err := view.Present(NewScene(WithScoreBoard(s.board)), engine.MoveIn(engine.DirectionRight, RestartTransition)); err != nil {
		log.Scene().Error("could not restart", "error", err)
	}
}

func (s *Scene) activatePlayer() {
	if n, ok := s.world.Node(s.player); ok && n.Body != nil {
		n.Body.Dynamic = true
	}
	s.startRocks()
}
