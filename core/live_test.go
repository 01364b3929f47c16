package translation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/srinithi0406/ISL/core/events"
)

func newLiveTranslator(t *testing.T, stt *fakeStreamingClient, words ...string) *Translator {
	t.Helper()
	translator, err := NewTranslator(
		WithParser(&fakeParser{}),
		WithCatalog(newTestCatalog(t, words...)),
		WithSpeechToTextClient(stt),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}
	return translator
}

func awaitSession(t *testing.T, session *LiveSession) {
	t.Helper()
	select {
	case <-session.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("session did not drain in time")
	}
}

func TestStartLiveRequiresStreamingClient(t *testing.T) {
	translator, err := NewTranslator(
		WithParser(&fakeParser{}),
		WithCatalog(newTestCatalog(t)),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	if _, err := translator.StartLive(context.Background()); err == nil {
		t.Fatal("expected an error without a streaming client")
	}
}

func TestStartLiveWrapsTranscriptionStartupFailure(t *testing.T) {
	stt := &fakeStreamingClient{transcribeErr: errors.New("no upstream")}
	translator := newLiveTranslator(t, stt)

	_, err := translator.StartLive(context.Background())
	var transcriptionErr TranscriptionError
	if !errors.As(err, &transcriptionErr) {
		t.Fatalf("expected TranscriptionError, got %v", err)
	}
}

func TestLiveSessionPlaysClipsInOrder(t *testing.T) {
	stt := &fakeStreamingClient{}
	translator := newLiveTranslator(t, stt, "he", "school")

	var mu sync.Mutex
	var played []string
	var drained atomic.Int32

	session, err := translator.StartLive(context.Background(),
		OnClip(func(key, path string) {
			mu.Lock()
			played = append(played, key)
			mu.Unlock()
		}),
		OnDrained(func() { drained.Add(1) }),
	)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	stt.emitFinal("He school.")
	session.Stop()
	awaitSession(t, session)

	mu.Lock()
	defer mu.Unlock()
	if len(played) != 2 || played[0] != "he" || played[1] != "school" {
		t.Fatalf("expected clips [he school], got %v", played)
	}
	if drained.Load() != 1 {
		t.Fatalf("expected exactly one drained notification, got %d", drained.Load())
	}
}

func TestLiveSessionFingerSpellsUnknownWords(t *testing.T) {
	stt := &fakeStreamingClient{}
	translator := newLiveTranslator(t, stt)

	var mu sync.Mutex
	var queued []string

	session, err := translator.StartLive(context.Background(),
		OnClipQueued(func(key, path string) {
			mu.Lock()
			queued = append(queued, key)
			mu.Unlock()
		}),
	)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	stt.emitFinal("Hi.")
	session.Stop()
	awaitSession(t, session)

	mu.Lock()
	defer mu.Unlock()
	// One clip per spelled letter, all carrying the word key.
	if len(queued) != 2 || queued[0] != "hi" || queued[1] != "hi" {
		t.Fatalf("expected two finger-spelled clips for hi, got %v", queued)
	}
}

func TestLiveSessionStateTransitions(t *testing.T) {
	stt := &fakeStreamingClient{}
	translator := newLiveTranslator(t, stt)

	var mu sync.Mutex
	var states []events.State

	session, err := translator.StartLive(context.Background(),
		OnStateChanged(func(state events.State) {
			mu.Lock()
			states = append(states, state)
			mu.Unlock()
		}),
	)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	session.Stop()
	awaitSession(t, session)

	mu.Lock()
	defer mu.Unlock()
	want := []events.State{events.StateListening, events.StateDraining, events.StateIdle}
	if len(states) != len(want) {
		t.Fatalf("expected states %v, got %v", want, states)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("expected states %v, got %v", want, states)
		}
	}
}

func TestLiveSessionStopIsIdempotent(t *testing.T) {
	stt := &fakeStreamingClient{}
	translator := newLiveTranslator(t, stt)

	session, err := translator.StartLive(context.Background())
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	session.Stop()
	session.Stop()
	awaitSession(t, session)

	if !stt.closed {
		t.Fatal("expected the streaming client to be closed")
	}
	if session.State() != events.StateIdle {
		t.Fatalf("expected idle state, got %q", session.State())
	}
}

func TestLiveSessionDrainsQueuedClipsAfterStop(t *testing.T) {
	stt := &fakeStreamingClient{}
	translator := newLiveTranslator(t, stt, "he", "school", "today")

	var clips atomic.Int32
	session, err := translator.StartLive(context.Background(),
		OnClip(func(key, path string) { clips.Add(1) }),
	)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	stt.emitFinal("He school today.")
	session.Stop()
	awaitSession(t, session)

	if clips.Load() != 3 {
		t.Fatalf("expected all three queued clips to play, got %d", clips.Load())
	}
}

func TestLiveSessionReleasesCaptureAfterDrain(t *testing.T) {
	stt := &fakeStreamingClient{}
	input := newFakeAudioInput()

	translator, err := NewTranslator(
		WithParser(&fakeParser{}),
		WithCatalog(newTestCatalog(t)),
		WithSpeechToTextClient(stt),
		WithAudioInput(input),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	session, err := translator.StartLive(context.Background())
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	session.Stop()
	awaitSession(t, session)

	// Draining must release the session context, so a blocked capture loop
	// exits instead of spinning until the parent context ends.
	select {
	case <-input.captureExited:
	case <-time.After(time.Second):
		t.Fatal("capture loop still blocked after the session drained")
	}

	if input.stopCalls.Load() != 1 {
		t.Fatalf("expected one stop-capture call, got %d", input.stopCalls.Load())
	}
}

func TestLiveSessionHardStopCancelsOutstandingWork(t *testing.T) {
	stt := &fakeStreamingClient{}
	translator := newLiveTranslator(t, stt)

	session, err := translator.StartLive(context.Background())
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	session.HardStop()
	awaitSession(t, session)

	if session.State() != events.StateIdle {
		t.Fatalf("expected idle state after hard stop, got %q", session.State())
	}
}

func TestLiveSessionForwardsExternalAudio(t *testing.T) {
	stt := &fakeStreamingClient{}
	translator := newLiveTranslator(t, stt)

	session, err := translator.StartLive(context.Background())
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	defer func() {
		session.Stop()
		awaitSession(t, session)
	}()

	if err := session.SendAudio([]byte{1, 2, 3}); err != nil {
		t.Fatalf("failed to forward audio: %v", err)
	}

	stt.mu.Lock()
	defer stt.mu.Unlock()
	if len(stt.sentAudio) != 1 {
		t.Fatalf("expected one forwarded frame, got %d", len(stt.sentAudio))
	}
}
