package game

import (
	"github.com/shvbsle/crashyplane/internal/engine"
	"github.com/shvbsle/crashyplane/internal/log"
)

func (s *Scene) startRocks() {
	s.world.Run(s.world.Root(), engine.RepeatForever(engine.Sequence(
		engine.Run(eventSpawnRocks),
		engine.Wait(SpawnInterval),
	)))
	log.Scene().Debug("rock spawner started", "interval", SpawnInterval)
}

// createRocks spawns a rock pair around a shuffled gap centre and the score
// trigger that follows it. All three travel off the left edge and are removed.
func (s *Scene) createRocks() error {
	frame := s.world.Frame()

	top, err := engine.NewSprite(s.world.Assets(), TextureTopRock)
	if err != nil {
		return err
	}
	bottom, err := engine.NewSprite(s.world.Assets(), TextureBottomRock)
	if err != nil {
		return err
	}
	top.Name, bottom.Name = NameTopRock, NameBottomRock
	top.Z, bottom.Z = -20, -20

	x := frame.W + top.Size.W
	gap := float64(s.gaps.Next())

	top.Position = engine.Vec{X: x, Y: gap + top.Size.H*0.5 + RockDistance}
	bottom.Position = engine.Vec{X: x, Y: gap - bottom.Size.H*0.5 - RockDistance}
	top.Body = engine.NewBody(top.Size, false)
	bottom.Body = engine.NewBody(bottom.Size, false)

	trigger := engine.NewColorSprite(engine.ColorTrigger, engine.Size{W: TriggerWidth, H: frame.H})
	trigger.Name = NameScoreTrigger
	trigger.Hidden = true
	trigger.Position = engine.Vec{X: x + trigger.Size.W*2, Y: frame.H / 2}
	trigger.Body = engine.NewBody(trigger.Size, false)

	end := frame.W + top.Size.W*2
	travel := engine.Sequence(
		engine.MoveBy(-end, 0, RockTravel),
		engine.RemoveFromParent(),
	)
	for _, n := range []*engine.Node{top, bottom, trigger} {
		s.world.Run(s.world.Add(n), travel)
	}

	log.Scene().Debug("rocks spawned", "gap_center", gap, "x", x)
	return nil
}
