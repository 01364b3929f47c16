// Package events defines the typed translation pipeline event contract.
//
// Event kinds are grouped by pipeline-stage namespaces:
//
//   - transcript.*
//   - sign_stream.*
//   - playback.*
//   - session.*
//
// Semantics used across the package:
//
//   - Interim: mutable point-in-time snapshot that can still change.
//   - Final: terminal immutable text for the current utterance.
//   - Queued: the item entered a pipeline queue and will be consumed in FIFO
//     order.
//
// transcript events
//
//   - SpeechStarted (transcript.speech_started): speech activity began.
//   - SpeechEnded (transcript.speech_ended): speech activity ended.
//   - TranscriptInterim (transcript.interim): mutable interim transcript
//     snapshot.
//   - TranscriptFinal (transcript.final): finalized transcript chunk.
//
// sign_stream events
//
//   - SentenceReordered (sign_stream.sentence_reordered): one sentence's
//     final ISL token order.
//   - ClipQueued (sign_stream.clip_queued): a resolved clip entered the clip
//     queue.
//
// playback events
//
//   - ClipPlayed (playback.clip_played): a clip was handed to the output
//     sink.
//   - PlaybackDrained (playback.drained): the clip queue ran dry after end
//     of stream.
//
// session events
//
//   - SessionStateChanged (session.state_changed): lifecycle transition.
//   - SessionFailed (session.failed): non-retryable failure.
package events
