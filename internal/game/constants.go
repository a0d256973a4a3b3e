package game

import "github.com/shvbsle/crashyplane/internal/engine"

const (
	GameTitle = "CRASHY PLANE"

	FrameWidth  = 640
	FrameHeight = 480

	PlayerMass     = 6.0
	FlapImpulse    = 20.0
	RotationFactor = 0.001
	RotateDuration = 0.1

	SpawnInterval = 3.0
	RockTravel    = 6.2
	RockDistance  = 70.0
	GapMinFactor  = 0.20
	GapMaxFactor  = 0.80

	TriggerWidth = 32.0

	LogoFadeDuration  = 0.5
	LogoWaitDuration  = 0.5
	RestartTransition = 1.0

	BackgroundLoop = 20.0
	GroundLoop     = 5.0
	BackgroundBase = 100.0

	AnimationFrameTime = 0.01
)

// Node names. The score trigger name doubles as its contact tag.
const (
	NamePlayer       = "player"
	NameScoreTrigger = "scoreDetect"
	NameTopRock      = "topRock"
	NameBottomRock   = "bottomRock"
	NameGround       = "ground"
	NameBackground   = "background"
	NameSky          = "sky"
	NameScore        = "score"
	NameBest         = "best"
	NameLogo         = "logo"
	NameGameOver     = "gameOver"
	NameMusic        = "music"
	NameExplosion    = "explosion"
)

// Named assets.
const (
	TexturePlayer1    = "player-1"
	TexturePlayer2    = "player-2"
	TexturePlayer3    = "player-3"
	TextureBackground = "background"
	TextureGround     = "ground"
	TextureTopRock    = "topRock"
	TextureBottomRock = "bottomRock"
	TextureLogo       = "logo"
	TextureGameOver   = "gameover"

	EmitterExplosion = "PlayerExplosion"

	SoundCoin      = "coin.wav"
	SoundExplosion = "explosion.wav"
	SoundMusic     = "music.mp3"
)

var Frame = engine.Size{W: FrameWidth, H: FrameHeight}

// Gravity is in metres per second squared.
var Gravity = engine.Vec{Y: -5}

const (
	eventActivatePlayer engine.Event = iota + 1
	eventSpawnRocks
)

const rotateKey = "rotate"
