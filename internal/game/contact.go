package game

import (
	"github.com/shvbsle/crashyplane/internal/engine"
	"github.com/shvbsle/crashyplane/internal/log"
)

func (s *Scene) isScoreTrigger(h engine.Handle) bool {
	n, ok := s.world.Node(h)
	return ok && n.Name == NameScoreTrigger
}

// OnContact scores when a trigger is involved and kills the player on any
// other contact with it. A contact that is both is only a score.
func (s *Scene) OnContact(c engine.Contact) {
	if s.isScoreTrigger(c.A) || s.isScoreTrigger(c.B) {
		if c.A == s.player {
			s.world.Remove(c.B)
		} else {
			s.world.Remove(c.A)
		}

		s.world.Run(s.world.Root(), engine.PlaySound(SoundCoin))
		s.setScore(s.score + 1)
		log.Scene().Info("scored", "score", s.score)
		return
	}

	if c.Involves(s.player) {
		s.die()
	}
}

func (s *Scene) die() {
	player, ok := s.world.Node(s.player)
	if !ok {
		return
	}

	explosion, err := engine.NewEmitter(s.world.Assets(), EmitterExplosion)
	if err != nil {
		log.Scene().Warn("explosion skipped", "error", err)
	} else {
		explosion.Name = NameExplosion
		explosion.Position = player.Position
		s.world.Add(explosion)
	}

	s.world.Run(s.world.Root(), engine.PlaySound(SoundExplosion))

	if n, ok := s.world.Node(s.gameOver); ok {
		n.Alpha = 1
	}
	if err := s.fsm.Transition(StateDead); err != nil {
		log.Scene().Error("unexpected death", "error", err)
	}
	s.world.Run(s.music, engine.Stop())

	s.world.Remove(s.player)
	s.world.Speed = 0

	log.Scene().Info("player died", "score", s.score)

	if s.board == nil {
		return
	}
	if rank := s.board.Record(s.score); rank > 0 {
		log.Scene().Info("high score", "score", s.score, "rank", rank)
	}
	s.setBest(s.board.Best())
}
