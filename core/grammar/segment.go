package grammar

import (
	"strings"
	"unicode"
)

// Sentences splits transcript text into individual sentences.
//
// The split happens on sentence-final punctuation; a trailing fragment
// without punctuation (common in incremental transcripts) is still emitted as
// the last sentence. Empty or whitespace-only input yields an empty slice.
func Sentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		current.Reset()
		if strings.ContainsFunc(sentence, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}) {
			sentences = append(sentences, sentence)
		}
	}

	for _, r := range text {
		current.WriteRune(r)
		switch r {
		case '.', '!', '?':
			flush()
		}
	}
	flush()

	return sentences
}
