package events

const (
	// KindSpeechStarted identifies start of user speech activity.
	KindSpeechStarted Kind = "transcript.speech_started"
	// KindSpeechEnded identifies end of user speech activity.
	KindSpeechEnded Kind = "transcript.speech_ended"
	// KindTranscriptInterim identifies mutable interim transcript snapshots.
	KindTranscriptInterim Kind = "transcript.interim"
	// KindTranscriptFinal identifies a finalized transcript chunk.
	KindTranscriptFinal Kind = "transcript.final"
)

// SpeechStarted marks when user speech activity starts.
type SpeechStarted struct{ Base }

// NewSpeechStarted creates a speech started event.
func NewSpeechStarted() SpeechStarted {
	return SpeechStarted{Base: NewBase(KindSpeechStarted)}
}

// SpeechEnded marks when user speech activity ends.
type SpeechEnded struct{ Base }

// NewSpeechEnded creates a speech ended event.
func NewSpeechEnded() SpeechEnded {
	return SpeechEnded{Base: NewBase(KindSpeechEnded)}
}

// TranscriptInterim carries a mutable interim transcript snapshot.
type TranscriptInterim struct {
	Base
	Transcript string
}

// NewTranscriptInterim creates an interim transcript snapshot event.
func NewTranscriptInterim(transcript string) TranscriptInterim {
	return TranscriptInterim{Base: NewBase(KindTranscriptInterim), Transcript: transcript}
}

// TranscriptFinal carries a finalized transcript chunk, the unit pushed onto
// the live text queue.
type TranscriptFinal struct {
	Base
	Transcript string
}

// NewTranscriptFinal creates a finalized transcript chunk event.
func NewTranscriptFinal(transcript string) TranscriptFinal {
	return TranscriptFinal{Base: NewBase(KindTranscriptFinal), Transcript: transcript}
}
