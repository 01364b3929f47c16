package events

import (
	"strings"

	"github.com/srinithi0406/ISL/core/grammar"
)

const (
	// KindSentenceReordered identifies a sentence's reordered ISL token
	// sequence. The order is final once emitted.
	KindSentenceReordered Kind = "sign_stream.sentence_reordered"
	// KindClipQueued identifies a resolved clip entering the clip queue.
	KindClipQueued Kind = "sign_stream.clip_queued"
)

// SentenceReordered carries one sentence's ISL token sequence.
type SentenceReordered struct {
	Base
	Sentence string
	Tokens   []grammar.SignToken
}

// NewSentenceReordered creates a reordered-sentence event.
func NewSentenceReordered(sentence string, tokens []grammar.SignToken) SentenceReordered {
	return SentenceReordered{Base: NewBase(KindSentenceReordered), Sentence: sentence, Tokens: tokens}
}

// TokenText renders the token sequence as a display string.
func (e SentenceReordered) TokenText() string {
	texts := make([]string, 0, len(e.Tokens))
	for _, token := range e.Tokens {
		texts = append(texts, strings.ToUpper(token.Text))
	}
	return strings.Join(texts, " ")
}

// ClipQueued carries one resolved clip path entering the clip queue.
type ClipQueued struct {
	Base
	Key  string
	Path string
}

// NewClipQueued creates a clip queued event.
func NewClipQueued(key, path string) ClipQueued {
	return ClipQueued{Base: NewBase(KindClipQueued), Key: key, Path: path}
}
