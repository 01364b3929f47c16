package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	translation "github.com/srinithi0406/ISL/core"
	"github.com/srinithi0406/ISL/core/assets"
	"github.com/srinithi0406/ISL/core/nlp"
)

type stubParser struct{}

func (stubParser) Parse(_ context.Context, sentence string) ([]nlp.ParsedToken, error) {
	var tokens []nlp.ParsedToken
	for i, word := range strings.Fields(sentence) {
		tokens = append(tokens, nlp.ParsedToken{
			Index: i,
			Text:  strings.ToLower(strings.Trim(word, ".!?,")),
			Lemma: strings.ToLower(strings.Trim(word, ".!?,")),
			POS:   nlp.POSNoun,
		})
	}
	return tokens, nil
}

func newTestServer(t *testing.T, words ...string) *Server {
	t.Helper()
	dir := t.TempDir()

	for letter := 'A'; letter <= 'Z'; letter++ {
		writeClip(t, dir, string(letter)+".mp4")
	}
	for _, word := range words {
		writeClip(t, dir, word+".mp4")
	}

	catalog, err := assets.NewCatalog(dir)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	translator, err := translation.NewTranslator(
		translation.WithParser(stubParser{}),
		translation.WithCatalog(catalog),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	return New(translator, WithAssetsDir(dir))
}

func writeClip(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("clip"), 0o644); err != nil {
		t.Fatalf("failed to write clip %s: %v", name, err)
	}
}

func TestTranslateEndpointReturnsSentencesAndClips(t *testing.T) {
	server := httptest.NewServer(newTestServer(t, "he", "school").Handler())
	defer server.Close()

	body := strings.NewReader(`{"text":"He school."}`)
	resp, err := http.Post(server.URL+"/api/translate", "application/json", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var response TranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Transcript != "He school." {
		t.Fatalf("unexpected transcript %q", response.Transcript)
	}
	if len(response.Sentences) != 1 || len(response.Sentences[0].Tokens) != 2 {
		t.Fatalf("unexpected sentences %+v", response.Sentences)
	}
	if len(response.Clips) != 2 || response.Clips[0] != "he" || response.Clips[1] != "school" {
		t.Fatalf("unexpected clips %v", response.Clips)
	}
}

func TestTranslateEndpointRejectsNonPost(t *testing.T) {
	server := httptest.NewServer(newTestServer(t).Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/translate")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestTranslateEndpointRejectsInvalidJSON(t *testing.T) {
	server := httptest.NewServer(newTestServer(t).Handler())
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/translate", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUploadEndpointRejectsUnsupportedFileType(t *testing.T) {
	server := httptest.NewServer(newTestServer(t).Handler())
	defer server.Close()

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile("file", "notes.txt")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte("hello")); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()

	resp, err := http.Post(server.URL+"/api/translate/upload", writer.FormDataContentType(), &buffer)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSchemaEndpointDescribesResponse(t *testing.T) {
	server := httptest.NewServer(newTestServer(t).Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/schema")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var schema map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&schema); err != nil {
		t.Fatalf("failed to decode schema: %v", err)
	}
	properties, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("expected schema properties, got %v", schema)
	}
	if _, ok := properties["transcript"]; !ok {
		t.Fatalf("expected a transcript property, got %v", properties)
	}
}

func TestClipFilesAreServed(t *testing.T) {
	testServer := newTestServer(t, "he")
	server := httptest.NewServer(testServer.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/assets/he.mp4")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
