package translation

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/srinithi0406/ISL/core/assets"
	"github.com/srinithi0406/ISL/core/nlp"
	"github.com/srinithi0406/ISL/core/speechtotext"
)

// fakeParser tags every word as a plain noun, so reordering degrades to
// surface order and tests can reason about output deterministically.
type fakeParser struct {
	err error
}

func (p *fakeParser) Parse(_ context.Context, sentence string) ([]nlp.ParsedToken, error) {
	if p.err != nil {
		return nil, p.err
	}

	var tokens []nlp.ParsedToken
	for i, word := range strings.Fields(sentence) {
		word = strings.Trim(word, ".!?,")
		if word == "" {
			continue
		}
		tokens = append(tokens, nlp.ParsedToken{
			Index: i,
			Text:  strings.ToLower(word),
			Lemma: strings.ToLower(word),
			POS:   nlp.POSNoun,
		})
	}
	return tokens, nil
}

func newTestCatalog(t *testing.T, words ...string) *assets.Catalog {
	t.Helper()
	dir := t.TempDir()

	for letter := 'A'; letter <= 'Z'; letter++ {
		writeTestClip(t, dir, string(letter)+".mp4")
	}
	for _, word := range words {
		writeTestClip(t, dir, word+".mp4")
	}

	catalog, err := assets.NewCatalog(dir)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return catalog
}

func writeTestClip(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("clip"), 0o644); err != nil {
		t.Fatalf("failed to write clip %s: %v", name, err)
	}
}

// fakeStreamingClient captures transcription options so tests can drive the
// live pipeline by emitting transcripts directly.
type fakeStreamingClient struct {
	mu      sync.Mutex
	options speechtotext.TranscriptionOptions

	transcribeErr error
	sentAudio     [][]byte
	closed        bool
}

func (c *fakeStreamingClient) Transcribe(_ context.Context, opts ...speechtotext.TranscriptionOption) error {
	if c.transcribeErr != nil {
		return c.transcribeErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, opt := range opts {
		opt(&c.options)
	}
	return nil
}

func (c *fakeStreamingClient) SendAudio(audio []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sentAudio = append(c.sentAudio, audio)
	return nil
}

func (c *fakeStreamingClient) Close(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeStreamingClient) emitFinal(transcript string) {
	c.mu.Lock()
	callback := c.options.TranscriptionCallback
	c.mu.Unlock()
	if callback != nil {
		callback(transcript)
	}
}

// fakeAudioInput blocks in StartCapture the way the real capture backends
// do, and exits only when the session context is released.
type fakeAudioInput struct {
	stopCalls     atomic.Int32
	captureExited chan struct{}
}

func newFakeAudioInput() *fakeAudioInput {
	return &fakeAudioInput{captureExited: make(chan struct{})}
}

func (c *fakeAudioInput) StartCapture(ctx context.Context, _ func(audio []byte)) error {
	<-ctx.Done()
	close(c.captureExited)
	return nil
}

func (c *fakeAudioInput) StopCapture() error {
	c.stopCalls.Add(1)
	return nil
}

type fakeFileTranscriber struct {
	transcript string
	err        error
	lastPath   string
}

func (c *fakeFileTranscriber) TranscribeFile(_ context.Context, audioPath string) (string, error) {
	c.lastPath = audioPath
	if c.err != nil {
		return "", c.err
	}
	return c.transcript, nil
}
