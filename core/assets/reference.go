package assets

// AssetReference is the resolved form of one sign token: either a whole-word
// clip or an ordered finger-spelling sequence.
type AssetReference interface {
	// Key is the lookup key the reference resolves, for reporting.
	Key() string
	// ClipPaths lists the underlying clip files in playback order.
	ClipPaths() []string
}

// WordAsset is a single whole-word sign clip.
type WordAsset struct {
	Word string
	Path string
}

func (a WordAsset) Key() string         { return a.Word }
func (a WordAsset) ClipPaths() []string { return []string{a.Path} }

// LetterAsset is a single finger-spelling letter clip.
type LetterAsset struct {
	Letter rune
	Path   string
}

// FingerSpellSequence spells a word letter by letter. Joining the letters
// reproduces the word's alphabetic characters in their original order.
type FingerSpellSequence struct {
	Word    string
	Letters []LetterAsset
}

func (s FingerSpellSequence) Key() string { return s.Word }

func (s FingerSpellSequence) ClipPaths() []string {
	paths := make([]string, 0, len(s.Letters))
	for _, letter := range s.Letters {
		paths = append(paths, letter.Path)
	}
	return paths
}

// Spelled returns the concatenated letters of the sequence.
func (s FingerSpellSequence) Spelled() string {
	letters := make([]rune, 0, len(s.Letters))
	for _, letter := range s.Letters {
		letters = append(letters, letter.Letter)
	}
	return string(letters)
}
