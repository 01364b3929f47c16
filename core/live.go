package translation

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/srinithi0406/ISL/core/assets"
	"github.com/srinithi0406/ISL/core/audio"
	"github.com/srinithi0406/ISL/core/events"
	"github.com/srinithi0406/ISL/core/grammar"
	"github.com/srinithi0406/ISL/core/speechtotext"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Clip is one resolved sign clip flowing through the live clip queue.
// Finger-spelled words contribute one Clip per letter.
type Clip struct {
	Key  string
	Path string
}

// LiveSession coordinates the streaming pipeline: capture and transcription
// produce finalized text chunks onto the text queue, the resolve worker turns
// them into clips on the clip queue, and the playback consumer hands clips to
// the configured sink in FIFO order.
//
// Lifecycle: Listening -> (Stop) Draining -> Idle. Stop is idempotent and
// never destroys in-flight work; HardStop cancels outstanding queue items.
type LiveSession struct {
	ID string

	translator *Translator
	options    LiveOptions
	emitEvent  eventEmitter

	textQueue *queue[string]
	clipQueue *queue[Clip]

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	state events.State

	stopOnce sync.Once
	done     chan struct{}
}

// StartLive opens a streaming session. The configured speech-to-text client
// is started immediately; if an audio input is configured its frames are fed
// to the transcription stream, otherwise callers push audio with SendAudio.
func (t *Translator) StartLive(ctx context.Context, opts ...LiveOption) (*LiveSession, error) {
	if t.streamingClient == nil {
		return nil, fmt.Errorf("translator has no streaming speech-to-text client configured")
	}

	options := LiveOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	session := &LiveSession{
		ID:         uuid.NewString(),
		translator: t,
		options:    options,
		emitEvent:  newCallbackEventEmitter(options),
		textQueue:  newQueue[string](t.textQueueCapacity),
		clipQueue:  newQueue[Clip](t.clipQueueCapacity),
		ctx:        sessionCtx,
		cancel:     cancel,
		state:      events.StateIdle,
		done:       make(chan struct{}),
	}

	if err := session.startTranscription(); err != nil {
		cancel()
		return nil, TranscriptionError{Err: err}
	}

	session.setState(events.StateListening)

	go session.runWorker("resolve", session.runResolve)
	go session.runWorker("playback", session.runPlayback)

	if t.audioInput != nil {
		go session.runWorker("capture", session.runCapture)
	}

	go func() {
		<-sessionCtx.Done()
		session.Stop()
	}()

	return session, nil
}

func (s *LiveSession) startTranscription() error {
	sttOptions := []speechtotext.TranscriptionOption{
		speechtotext.WithSpeechStartedCallback(func() {
			s.emitEvent(events.NewSpeechStarted())
		}),
		speechtotext.WithSpeechEndedCallback(func() {
			s.emitEvent(events.NewSpeechEnded())
		}),
		speechtotext.WithInterimTranscriptionCallback(func(transcript string) {
			s.emitEvent(events.NewTranscriptInterim(transcript))
		}),
		speechtotext.WithTranscriptionCallback(func(transcript string) {
			s.emitEvent(events.NewTranscriptFinal(transcript))
			if err := s.textQueue.Push(s.ctx, transcript); err != nil {
				logger.Warn("dropping transcript chunk", "error", err)
			}
		}),
	}
	if provider, ok := s.translator.audioInput.(interface {
		EncodingInfo() audio.EncodingInfo
	}); ok {
		sttOptions = append(sttOptions, speechtotext.WithEncodingInfo(provider.EncodingInfo()))
	}

	return s.translator.streamingClient.Transcribe(s.ctx, sttOptions...)
}

// SendAudio forwards an externally captured audio frame to the transcription
// stream. Used by callers that manage their own capture (e.g. the websocket
// surface).
func (s *LiveSession) SendAudio(audio []byte) error {
	return s.translator.streamingClient.SendAudio(audio)
}

// State returns the current lifecycle state.
func (s *LiveSession) State() events.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done closes once the session fully drained back to idle.
func (s *LiveSession) Done() <-chan struct{} { return s.done }

// QueueDepths reports how many transcript chunks and clips are currently
// buffered.
func (s *LiveSession) QueueDepths() (texts, clips int) {
	return s.textQueue.Len(), s.clipQueue.Len()
}

// Stop halts capture and marks end of stream; items already queued are still
// drained. Safe to call any number of times, from any state.
func (s *LiveSession) Stop() {
	s.stopOnce.Do(func() {
		s.setState(events.StateDraining)

		if s.translator.audioInput != nil {
			if err := s.translator.audioInput.StopCapture(); err != nil {
				logger.Warn("failed to stop audio capture", "error", err)
			}
		}
		s.closeStreamingClient()
		s.textQueue.Close()
	})
}

// HardStop cancels the session outright, discarding queued work.
func (s *LiveSession) HardStop() {
	s.Stop()
	s.cancel()
}

func (s *LiveSession) closeStreamingClient() {
	switch c := s.translator.streamingClient.(type) {
	case interface{ Close(context.Context) error }:
		if err := c.Close(context.Background()); err != nil {
			logger.Warn("failed to close speech-to-text client", "error", err)
		}
	case interface{ Close() error }:
		if err := c.Close(); err != nil {
			logger.Warn("failed to close speech-to-text client", "error", err)
		}
	case interface{ Close() }:
		c.Close()
	}
}

func (s *LiveSession) setState(state events.State) {
	s.mu.Lock()
	changed := s.state != state
	s.state = state
	s.mu.Unlock()

	if changed {
		s.emitEvent(events.NewSessionStateChanged(s.ID, state))
	}
}

// runWorker keeps worker panics from tearing down the process; a panic fails
// the session instead.
func (s *LiveSession) runWorker(name string, run func() error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err := fmt.Errorf("%s worker panicked: %v", name, recovered)
			s.recordError(err)
			s.emitEvent(events.NewSessionFailed(s.ID, err))
		}
	}()

	if err := run(); err != nil {
		err = fmt.Errorf("%s worker failed: %w", name, err)
		s.recordError(err)
		s.emitEvent(events.NewSessionFailed(s.ID, err))
	}
}

func (s *LiveSession) recordError(err error) {
	span := trace.SpanFromContext(s.ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func (s *LiveSession) runCapture() error {
	return s.translator.audioInput.StartCapture(s.ctx, func(audio []byte) {
		if err := s.translator.streamingClient.SendAudio(audio); err != nil {
			logger.Warn("failed to forward audio frame", "error", err)
		}
	})
}

// runResolve consumes finalized transcript chunks, reorders each sentence
// into ISL tokens, resolves them against the catalog and queues the
// resulting clips. Closing the clip queue is its end-of-stream signal to the
// playback consumer.
func (s *LiveSession) runResolve() error {
	defer s.clipQueue.Close()

	for {
		chunk, ok := s.textQueue.Pop(s.ctx)
		if !ok {
			return nil
		}

		for _, sentence := range grammar.Sentences(chunk) {
			parsed, err := s.translator.parser.Parse(s.ctx, sentence)
			if err != nil {
				// One unparseable chunk must not end the session.
				logger.Warn("failed to parse sentence, skipping", "error", err)
				continue
			}

			signs := grammar.Reorder(parsed)
			s.emitEvent(events.NewSentenceReordered(sentence, signs))

			for _, ref := range assets.PlanSigns(s.translator.catalog, signs).Refs() {
				if err := s.queueClips(ref); err != nil {
					return nil
				}
			}
		}
	}
}

func (s *LiveSession) queueClips(ref assets.AssetReference) error {
	for _, path := range ref.ClipPaths() {
		if path == "" {
			continue
		}
		clip := Clip{Key: ref.Key(), Path: path}
		if err := s.clipQueue.Push(s.ctx, clip); err != nil {
			return err
		}
		s.emitEvent(events.NewClipQueued(clip.Key, clip.Path))
	}
	return nil
}

// runPlayback dequeues clips in order and hands them to the sink. When the
// clip queue closes after draining, the session settles back to idle and the
// session context is released so blocked capture loops and the context
// watcher exit with it.
func (s *LiveSession) runPlayback() error {
	defer close(s.done)
	defer s.cancel()

	for {
		clip, ok := s.clipQueue.Pop(s.ctx)
		if !ok {
			if s.ctx.Err() == nil {
				s.emitEvent(events.NewPlaybackDrained())
			}
			s.setState(events.StateIdle)
			return nil
		}

		s.emitEvent(events.NewClipPlayed(clip.Key, clip.Path))
	}
}
