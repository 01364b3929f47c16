// Package assets maps ISL sign tokens to pre-recorded video clips.
//
// A Catalog is built once from the asset directory listing and is read-only
// afterwards, so resolution stays pure: the same token always resolves to the
// same reference for a given catalog.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/srinithi0406/ISL/core/grammar"
)

const clipExtension = ".mp4"

// MissingLetterError reports an incomplete finger-spelling alphabet. The
// letter set is expected to cover A-Z, so this is a configuration error that
// should fail startup.
type MissingLetterError struct {
	Letter rune
}

func (e MissingLetterError) Error() string {
	return fmt.Sprintf("asset catalog is missing letter clip %q", string(e.Letter))
}

// Catalog is the immutable word/letter clip lookup table.
type Catalog struct {
	dir     string
	words   map[string]string
	letters map[rune]string
}

// NewCatalog reads dir once and indexes its clips. Files named by a lowercase
// word become word assets; files named by a single uppercase letter become
// finger-spelling letters. Returns MissingLetterError if any of A-Z has no
// clip.
func NewCatalog(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset directory: %w", err)
	}

	catalog := &Catalog{
		dir:     dir,
		words:   map[string]string{},
		letters: map[rune]string{},
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), clipExtension) {
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		path := filepath.Join(dir, entry.Name())

		runes := []rune(stem)
		if len(runes) == 1 && unicode.IsUpper(runes[0]) {
			catalog.letters[runes[0]] = path
			continue
		}
		if stem == strings.ToLower(stem) && stem != "" {
			catalog.words[stem] = path
		}
	}

	for letter := 'A'; letter <= 'Z'; letter++ {
		if _, ok := catalog.letters[letter]; !ok {
			return nil, MissingLetterError{Letter: letter}
		}
	}

	return catalog, nil
}

// Dir returns the directory the catalog was built from.
func (c *Catalog) Dir() string { return c.dir }

// HasWord reports whether a whole-word clip exists for the key.
func (c *Catalog) HasWord(word string) bool {
	_, ok := c.words[strings.ToLower(word)]
	return ok
}

// Resolve maps a sign token to its asset reference. Resolution is total:
// a word clip for the surface text, else for the lemma, else a
// finger-spelling sequence over the token's alphabetic characters.
func (c *Catalog) Resolve(token grammar.SignToken) AssetReference {
	if path, ok := c.words[token.Text]; ok {
		return WordAsset{Word: token.Text, Path: path}
	}
	if token.Lemma != "" && token.Lemma != token.Text {
		if path, ok := c.words[token.Lemma]; ok {
			return WordAsset{Word: token.Lemma, Path: path}
		}
	}
	return c.fingerSpell(token.Text)
}

// ResolveWord resolves a bare lookup key outside of any parsed sentence.
func (c *Catalog) ResolveWord(word string) AssetReference {
	return c.Resolve(grammar.SignToken{Text: strings.ToLower(word)})
}

func (c *Catalog) fingerSpell(word string) FingerSpellSequence {
	sequence := FingerSpellSequence{Word: word}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		letter := unicode.ToUpper(r)
		sequence.Letters = append(sequence.Letters, LetterAsset{
			Letter: letter,
			Path:   c.letters[letter],
		})
	}
	return sequence
}
