// Package speechtotext defines the transcription capability contract shared
// by streaming and prerecorded speech engines.
package speechtotext

import (
	"context"

	"github.com/srinithi0406/ISL/core/audio"
)

// StreamingClient is a live transcription engine fed with raw audio frames.
type StreamingClient interface {
	Transcribe(ctx context.Context, opts ...TranscriptionOption) error
	SendAudio(audio []byte) error
}

// FileTranscriber is a prerecorded transcription engine for batch mode.
type FileTranscriber interface {
	TranscribeFile(ctx context.Context, audioPath string) (string, error)
}

type TranscriptionOptions struct {
	// InterimTranscriptionCallback receives mutable interim snapshots.
	InterimTranscriptionCallback func(transcript string)
	// TranscriptionCallback receives finalized utterance chunks, the unit
	// the live pipeline queues for reordering.
	TranscriptionCallback func(transcript string)

	SpeechStartedCallback func()
	SpeechEndedCallback   func()

	EncodingInfo audio.EncodingInfo
}

type TranscriptionOption func(*TranscriptionOptions)

func WithTranscriptionCallback(callback func(transcript string)) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.TranscriptionCallback = callback
	}
}

func WithInterimTranscriptionCallback(callback func(transcript string)) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.InterimTranscriptionCallback = callback
	}
}

func WithSpeechStartedCallback(callback func()) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.SpeechStartedCallback = callback
	}
}

func WithSpeechEndedCallback(callback func()) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.SpeechEndedCallback = callback
	}
}

func WithEncodingInfo(encodingInfo audio.EncodingInfo) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.EncodingInfo = encodingInfo
	}
}
