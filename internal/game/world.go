package game

import (
	"github.com/shvbsle/crashyplane/internal/engine"
)

func (s *Scene) addSprite(texture, name string, z int, pos engine.Vec) (engine.Handle, *engine.Node, error) {
	n, err := engine.NewSprite(s.world.Assets(), texture)
	if err != nil {
		return engine.Handle{}, nil, err
	}
	n.Name = name
	n.Z = z
	n.Position = pos
	return s.world.Add(n), n, nil
}

func (s *Scene) createPlayer() error {
	frame := s.world.Frame()
	h, n, err := s.addSprite(TexturePlayer1, NamePlayer, 10, engine.Vec{X: frame.W / 6, Y: frame.H * 0.75})
	if err != nil {
		return err
	}

	n.Body = engine.NewBody(n.Size, false)
	n.Body.Mass = PlayerMass
	n.Body.ContactMask = engine.AllCategories
	s.player = h

	frames := []string{TexturePlayer1, TexturePlayer2, TexturePlayer3, TexturePlayer2}
	for _, f := range frames[1:3] {
		if _, err := s.world.Assets().Texture(f); err != nil {
			return err
		}
	}
	s.world.Run(h, engine.RepeatForever(engine.Animate(frames, AnimationFrameTime)))
	return nil
}

func (s *Scene) createSky() error {
	frame := s.world.Frame()

	top := engine.NewColorSprite(engine.ColorSkyTop, engine.Size{W: frame.W, H: frame.H * 0.67})
	top.Name = NameSky
	top.Z = -40
	top.Position = engine.Vec{X: frame.W / 2, Y: frame.H - top.Size.H/2}
	s.world.Add(top)

	bottom := engine.NewColorSprite(engine.ColorSkyBottom, engine.Size{W: frame.W, H: frame.H * 0.33})
	bottom.Name = NameSky
	bottom.Z = -40
	bottom.Position = engine.Vec{X: frame.W / 2, Y: bottom.Size.H / 2}
	s.world.Add(bottom)
	return nil
}

// scrollForever loops a node left by its own width and snaps it back.
func scrollForever(width, duration float64) engine.Action {
	return engine.RepeatForever(engine.Sequence(
		engine.MoveBy(-width, 0, duration),
		engine.MoveBy(width, 0, 0),
	))
}

func (s *Scene) createBackground() error {
	for i := 0; i < 2; i++ {
		h, n, err := s.addSprite(TextureBackground, NameBackground, -30, engine.Vec{})
		if err != nil {
			return err
		}
		n.Position = engine.Vec{
			X: n.Size.W * (float64(i) + 0.5),
			Y: BackgroundBase + n.Size.H*0.5,
		}
		s.world.Run(h, scrollForever(n.Size.W, BackgroundLoop))
	}
	return nil
}

func (s *Scene) createGround() error {
	for i := 0; i < 2; i++ {
		h, n, err := s.addSprite(TextureGround, NameGround, -10, engine.Vec{})
		if err != nil {
			return err
		}
		n.Position = engine.Vec{
			X: n.Size.W * (float64(i) + 0.5),
			Y: n.Size.H * 0.5,
		}
		n.Body = engine.NewBody(n.Size, false)
		s.world.Run(h, scrollForever(n.Size.W, GroundLoop))
	}
	return nil
}

func (s *Scene) createScore() error {
	frame := s.world.Frame()
	label := engine.NewLabel("")
	label.Name = NameScore
	label.Z = 30
	label.Align = engine.AlignRight
	label.Position = engine.Vec{X: frame.W - 20, Y: frame.H - 40}
	s.scoreLabel = s.world.Add(label)
	s.setScore(0)

	if s.board == nil {
		return nil
	}
	best := engine.NewLabel("")
	best.Name = NameBest
	best.Z = 30
	best.Align = engine.AlignLeft
	best.Position = engine.Vec{X: 20, Y: frame.H - 40}
	s.bestLabel = s.world.Add(best)
	s.setBest(s.board.Best())
	return nil
}

func (s *Scene) createLogos() error {
	frame := s.world.Frame()
	mid := engine.Vec{X: frame.W / 2, Y: frame.H / 2}

	logo, _, err := s.addSprite(TextureLogo, NameLogo, 40, mid)
	if err != nil {
		return err
	}
	s.logo = logo

	gameOver, n, err := s.addSprite(TextureGameOver, NameGameOver, 40, mid)
	if err != nil {
		return err
	}
	n.Alpha = 0
	s.gameOver = gameOver
	return nil
}

func (s *Scene) createMusic() error {
	music := engine.NewAudio(SoundMusic)
	music.Name = NameMusic
	s.music = s.world.Add(music)
	return nil
}
