package translation

import "github.com/srinithi0406/ISL/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

// newCallbackEventEmitter bridges typed pipeline events onto the per-session
// callbacks configured through LiveOptions. A session without any callbacks
// gets the noop emitter.
func newCallbackEventEmitter(opts LiveOptions) eventEmitter {
	if !opts.hasCallbacks() {
		return noopEventEmitter
	}

	return func(event events.Event) {
		if opts.eventHandler != nil {
			opts.eventHandler(event)
		}

		switch typedEvent := event.(type) {
		case events.SpeechStarted:
			if opts.onSpeakingChanged != nil {
				opts.onSpeakingChanged(true)
			}
		case events.SpeechEnded:
			if opts.onSpeakingChanged != nil {
				opts.onSpeakingChanged(false)
			}
		case events.TranscriptInterim:
			if opts.onInterimTranscript != nil {
				opts.onInterimTranscript(typedEvent.Transcript)
			}
		case events.TranscriptFinal:
			if opts.onTranscript != nil {
				opts.onTranscript(typedEvent.Transcript)
			}
		case events.SentenceReordered:
			if opts.onSentenceReordered != nil {
				opts.onSentenceReordered(typedEvent.Sentence, typedEvent.Tokens)
			}
		case events.ClipQueued:
			if opts.onClipQueued != nil {
				opts.onClipQueued(typedEvent.Key, typedEvent.Path)
			}
		case events.ClipPlayed:
			if opts.onClip != nil {
				opts.onClip(typedEvent.Key, typedEvent.Path)
			}
		case events.PlaybackDrained:
			if opts.onDrained != nil {
				opts.onDrained()
			}
		case events.SessionStateChanged:
			if opts.onStateChanged != nil {
				opts.onStateChanged(typedEvent.State)
			}
		case events.SessionFailed:
			if opts.onError != nil {
				opts.onError(typedEvent.Err)
			}
		}
	}
}
