package translation

import (
	"errors"
	"fmt"
)

// ErrQueueClosed is returned when pushing onto a live queue after end of
// stream.
var ErrQueueClosed = errors.New("queue closed")

// InputError reports unusable caller input (unsupported file type, missing
// file). Surfaced immediately, never retried.
type InputError struct {
	Reason string
}

func (e InputError) Error() string { return "invalid input: " + e.Reason }

// TranscriptionError wraps a speech-engine failure. Transient failures may be
// retried by the transcription client; by the time this error surfaces it is
// terminal for the request.
type TranscriptionError struct {
	Err error
}

func (e TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: %v", e.Err)
}

func (e TranscriptionError) Unwrap() error { return e.Err }
