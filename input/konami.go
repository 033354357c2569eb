package input

// konamiCode is up up down down left right left right b a.
var konamiCode = []string{
	KeyUp, KeyUp, KeyDown, KeyDown,
	KeyLeft, KeyRight, KeyLeft, KeyRight,
	"b", "a",
}

// Konami watches the key stream for the Konami code.
type Konami struct {
	recent []string
}

// Press records a key and reports whether the sequence just completed.
func (k *Konami) Press(key string) bool {
	k.recent = append(k.recent, Normalize(key))
	if len(k.recent) > len(konamiCode) {
		k.recent = k.recent[1:]
	}
	if len(k.recent) != len(konamiCode) {
		return false
	}
	for i, want := range konamiCode {
		if k.recent[i] != want {
			return false
		}
	}
	k.recent = k.recent[:0]
	return true
}
