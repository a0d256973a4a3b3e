package engine

type NodeKind int

const (
	KindSprite NodeKind = iota
	KindColor
	KindLabel
	KindEmitter
	KindAudio
)

func (k NodeKind) String() string {
	switch k {
	case KindSprite:
		return "sprite"
	case KindColor:
		return "color"
	case KindLabel:
		return "label"
	case KindEmitter:
		return "emitter"
	case KindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// Align controls how a label is placed relative to its position.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Node is a world object. Position is the centre of the node.
type Node struct {
	Kind     NodeKind
	Name     string
	Position Vec
	Size     Size
	Z        int
	Alpha    float64
	Rotation float64
	Hidden   bool

	Texture string
	Text    string
	Align   Align
	Tint    Color
	Sound   string

	Body *Body

	emitter *emitter
	actions []*runner
	playing bool
}

// Frame returns the rectangle the node covers.
func (n *Node) Frame() Rect {
	return RectAround(n.Position, n.Size)
}

// Particles returns the live particles of an emitter node.
func (n *Node) Particles() []Particle {
	if n.emitter == nil {
		return nil
	}
	return n.emitter.particles
}

// NewSprite creates a sprite sized to the named texture.
func NewSprite(assets Assets, texture string) (*Node, error) {
	tex, err := assets.Texture(texture)
	if err != nil {
		return nil, err
	}
	return &Node{
		Kind:    KindSprite,
		Texture: tex.Name,
		Size:    tex.Size,
		Tint:    tex.Color,
		Alpha:   1,
	}, nil
}

// NewColorSprite creates a solid rectangle.
func NewColorSprite(tint Color, size Size) *Node {
	return &Node{
		Kind:  KindColor,
		Size:  size,
		Tint:  tint,
		Alpha: 1,
	}
}

func NewLabel(text string) *Node {
	return &Node{
		Kind:  KindLabel,
		Text:  text,
		Tint:  ColorText,
		Alpha: 1,
	}
}

// NewAudio creates a node that loops the named sound while it is in a world.
func NewAudio(sound string) *Node {
	return &Node{
		Kind:   KindAudio,
		Sound:  sound,
		Hidden: true,
		Alpha:  1,
	}
}
