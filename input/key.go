package input

// Key is a physical keyboard key the game listens to.
type Key int

const (
	KeyArrowLeft Key = iota + 1
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeyZ
	KeySpace
	KeyP
	KeyX
	KeyO
	KeyB
	KeyEscape
)

var keyNames = map[Key]string{
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyA:          "A",
	KeyD:          "D",
	KeyW:          "W",
	KeyS:          "S",
	KeyZ:          "Z",
	KeySpace:      "Space",
	KeyP:          "P",
	KeyX:          "X",
	KeyO:          "O",
	KeyB:          "B",
	KeyEscape:     "Escape",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// AllKeys lists every key a KeyState implementation needs to track.
func AllKeys() []Key {
	keys := make([]Key, 0, len(keyNames))
	for k := KeyArrowLeft; k <= KeyEscape; k++ {
		keys = append(keys, k)
	}
	return keys
}

// KeyState reports raw keyboard state.
type KeyState interface {
	// PressDuration returns how many ticks k has been held continuously.
	// It is 0 while the key is up and 1 on the tick it went down.
	PressDuration(k Key) int
}

// Bindings maps logical actions to the physical keys that trigger them.
type Bindings struct {
	Left   []Key
	Right  []Key
	Up     []Key
	Down   []Key
	Jump   []Key
	Dash   []Key
	Escape []Key
}

func DefaultBindings() Bindings {
	return Bindings{
		Left:   []Key{KeyArrowLeft, KeyA},
		Right:  []Key{KeyArrowRight, KeyD},
		Up:     []Key{KeyArrowUp, KeyW},
		Down:   []Key{KeyArrowDown, KeyS},
		Jump:   []Key{KeyZ, KeySpace, KeyP},
		Dash:   []Key{KeyX, KeyO, KeyB},
		Escape: []Key{KeyEscape},
	}
}
