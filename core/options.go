package translation

import (
	"context"

	"github.com/srinithi0406/ISL/core/assets"
	"github.com/srinithi0406/ISL/core/events"
	"github.com/srinithi0406/ISL/core/grammar"
	"github.com/srinithi0406/ISL/core/nlp"
	"github.com/srinithi0406/ISL/core/render"
	"github.com/srinithi0406/ISL/core/speechtotext"
)

type TranslatorOption func(*Translator)

func WithParser(parser nlp.Parser) TranslatorOption {
	return func(t *Translator) { t.parser = parser }
}

func WithCatalog(catalog *assets.Catalog) TranslatorOption {
	return func(t *Translator) { t.catalog = catalog }
}

func WithRenderer(renderer render.Concatenator) TranslatorOption {
	return func(t *Translator) { t.renderer = renderer }
}

// AudioExtractor pulls the audio track out of a video container.
// render.FFmpeg satisfies it.
type AudioExtractor interface {
	ExtractAudio(ctx context.Context, videoPath, wavPath string) error
}

func WithAudioExtractor(extractor AudioExtractor) TranslatorOption {
	return func(t *Translator) { t.extractor = extractor }
}

func WithFileTranscriber(client speechtotext.FileTranscriber) TranslatorOption {
	return func(t *Translator) { t.fileTranscriber = client }
}

func WithSpeechToTextClient(client speechtotext.StreamingClient) TranslatorOption {
	return func(t *Translator) { t.streamingClient = client }
}

// AudioInput is a microphone capture backend. Both the miniaudio and the
// portaudio clients satisfy it.
type AudioInput interface {
	StartCapture(ctx context.Context, onAudio func(audio []byte)) error
	StopCapture() error
}

func WithAudioInput(client AudioInput) TranslatorOption {
	return func(t *Translator) { t.audioInput = client }
}

func WithOutputDir(dir string) TranslatorOption {
	return func(t *Translator) { t.outputDir = dir }
}

// WithQueueCapacities bounds the live text and clip queues. Zero keeps the
// defaults.
func WithQueueCapacities(text, clips int) TranslatorOption {
	return func(t *Translator) {
		if text > 0 {
			t.textQueueCapacity = text
		}
		if clips > 0 {
			t.clipQueueCapacity = clips
		}
	}
}

// LiveOptions carries per-session callbacks for the live pipeline.
type LiveOptions struct {
	onTranscript        func(transcript string)
	onInterimTranscript func(transcript string)
	onSpeakingChanged   func(speaking bool)
	onSentenceReordered func(sentence string, tokens []grammar.SignToken)
	onClipQueued        func(key, path string)
	onClip              func(key, path string)
	onDrained           func()
	onStateChanged      func(state events.State)
	onError             func(err error)

	eventHandler func(events.Event)
}

func (o LiveOptions) hasCallbacks() bool {
	return o.onTranscript != nil ||
		o.onInterimTranscript != nil ||
		o.onSpeakingChanged != nil ||
		o.onSentenceReordered != nil ||
		o.onClipQueued != nil ||
		o.onClip != nil ||
		o.onDrained != nil ||
		o.onStateChanged != nil ||
		o.onError != nil ||
		o.eventHandler != nil
}

type LiveOption func(*LiveOptions)

func OnTranscript(callback func(transcript string)) LiveOption {
	return func(o *LiveOptions) { o.onTranscript = callback }
}

func OnInterimTranscript(callback func(transcript string)) LiveOption {
	return func(o *LiveOptions) { o.onInterimTranscript = callback }
}

func OnSpeakingChanged(callback func(speaking bool)) LiveOption {
	return func(o *LiveOptions) { o.onSpeakingChanged = callback }
}

func OnSentenceReordered(callback func(sentence string, tokens []grammar.SignToken)) LiveOption {
	return func(o *LiveOptions) { o.onSentenceReordered = callback }
}

func OnClipQueued(callback func(key, path string)) LiveOption {
	return func(o *LiveOptions) { o.onClipQueued = callback }
}

// OnClip receives clips in playback order, one at a time, as the playback
// consumer dequeues them.
func OnClip(callback func(key, path string)) LiveOption {
	return func(o *LiveOptions) { o.onClip = callback }
}

func OnDrained(callback func()) LiveOption {
	return func(o *LiveOptions) { o.onDrained = callback }
}

func OnStateChanged(callback func(state events.State)) LiveOption {
	return func(o *LiveOptions) { o.onStateChanged = callback }
}

func OnError(callback func(err error)) LiveOption {
	return func(o *LiveOptions) { o.onError = callback }
}

// WithEventHandler receives every typed pipeline event in addition to any
// specific callbacks.
func WithEventHandler(handler func(events.Event)) LiveOption {
	return func(o *LiveOptions) { o.eventHandler = handler }
}
