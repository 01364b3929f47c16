package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/gorilla/websocket"
	translation "github.com/srinithi0406/ISL/core"
	"github.com/srinithi0406/ISL/core/events"
)

type liveCommand struct {
	Type string `json:"type"`
}

const (
	commandStart = "start"
	commandStop  = "stop"
)

type liveEnvelope struct {
	Kind    events.Kind `json:"kind"`
	Payload any         `json:"payload,omitempty"`
}

type transcriptPayload struct {
	Transcript string `json:"transcript"`
}

type reorderedPayload struct {
	Sentence string             `json:"sentence"`
	Gloss    string             `json:"gloss"`
	Tokens   []signTokenPayload `json:"tokens"`
}

type clipPayload struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type statePayload struct {
	SessionID string       `json:"session_id"`
	State     events.State `json:"state"`
}

type errorPayload struct {
	SessionID string `json:"session_id"`
	Error     string `json:"error"`
}

// handleLive upgrades to a websocket and drives one live session per
// connection. Clients send JSON control frames ({"type":"start"} and
// {"type":"stop"}) and binary audio frames; the server pushes pipeline
// events as JSON envelopes keyed by event kind.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("failed to upgrade live connection", "error", err)
		return
	}
	defer conn.Close()

	ctx, span := tracer.Start(r.Context(), "live session")
	defer span.End()

	var writeMu sync.Mutex
	push := func(envelope liveEnvelope) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(envelope); err != nil {
			logger.Warn("failed to push live event", "error", err)
		}
	}

	var session *translation.LiveSession
	defer func() {
		if session != nil {
			session.HardStop()
		}
	}()

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			return
		}

		switch messageType {
		case websocket.BinaryMessage:
			if session == nil {
				continue
			}
			if err := session.SendAudio(message); err != nil {
				logger.Warn("failed to forward audio frame", "error", err)
			}

		case websocket.TextMessage:
			var command liveCommand
			if err := json.Unmarshal(message, &command); err != nil {
				push(liveEnvelope{Kind: events.KindSessionFailed, Payload: errorPayload{Error: "invalid control frame"}})
				continue
			}

			switch command.Type {
			case commandStart:
				if session != nil {
					continue
				}
				session, err = s.translator.StartLive(ctx, translation.WithEventHandler(func(event events.Event) {
					push(s.toEnvelope(event))
				}))
				if err != nil {
					push(liveEnvelope{Kind: events.KindSessionFailed, Payload: errorPayload{Error: err.Error()}})
				}
			case commandStop:
				if session != nil {
					session.Stop()
				}
			default:
				push(liveEnvelope{Kind: events.KindSessionFailed, Payload: errorPayload{
					Error: fmt.Sprintf("unknown command %q", command.Type),
				}})
			}
		}
	}
}

func (s *Server) toEnvelope(event events.Event) liveEnvelope {
	envelope := liveEnvelope{Kind: event.Kind()}

	switch typedEvent := event.(type) {
	case events.TranscriptInterim:
		envelope.Payload = transcriptPayload{Transcript: typedEvent.Transcript}
	case events.TranscriptFinal:
		envelope.Payload = transcriptPayload{Transcript: typedEvent.Transcript}
	case events.SentenceReordered:
		payload := reorderedPayload{Sentence: typedEvent.Sentence, Gloss: typedEvent.TokenText()}
		for _, token := range typedEvent.Tokens {
			payload.Tokens = append(payload.Tokens, signTokenPayload{
				Text:  token.Text,
				Lemma: token.Lemma,
				Role:  token.Role,
			})
		}
		envelope.Payload = payload
	case events.ClipQueued:
		envelope.Payload = clipPayload{Key: typedEvent.Key, URL: s.clipURL(typedEvent.Path)}
	case events.ClipPlayed:
		envelope.Payload = clipPayload{Key: typedEvent.Key, URL: s.clipURL(typedEvent.Path)}
	case events.SessionStateChanged:
		envelope.Payload = statePayload{SessionID: typedEvent.SessionID, State: typedEvent.State}
	case events.SessionFailed:
		envelope.Payload = errorPayload{SessionID: typedEvent.SessionID, Error: typedEvent.Err.Error()}
	}

	return envelope
}

func (s *Server) clipURL(path string) string {
	return "/assets/" + filepath.Base(path)
}
