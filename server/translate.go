package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	translation "github.com/srinithi0406/ISL/core"
	"github.com/srinithi0406/ISL/core/grammar"
)

const maxUploadBytes = 64 << 20

type translateRequest struct {
	Text string `json:"text"`
}

type signTokenPayload struct {
	Text  string       `json:"text"`
	Lemma string       `json:"lemma,omitempty"`
	Role  grammar.Role `json:"role"`
}

type sentencePayload struct {
	Sentence string             `json:"sentence"`
	Tokens   []signTokenPayload `json:"tokens"`
}

// TranslateResponse is the wire shape of a batch translation.
type TranslateResponse struct {
	Transcript string             `json:"transcript"`
	Sentences  []sentencePayload  `json:"sentences"`
	Clips      []string           `json:"clips"`
	OutputURL  string             `json:"output_url,omitempty"`
	Warnings   []string           `json:"warnings,omitempty"`
}

func newTranslateResponse(result *translation.Result) TranslateResponse {
	response := TranslateResponse{
		Transcript: result.Transcript,
		Clips:      []string{},
		Warnings:   result.Warnings,
	}
	if err := copier.Copy(&response.Sentences, result.Sentences); err != nil {
		logger.Warn("failed to copy sentence payloads", "error", err)
	}
	for _, ref := range result.Plan.Refs() {
		response.Clips = append(response.Clips, ref.Key())
	}
	if result.OutputPath != "" {
		response.OutputURL = "/outputs/" + filepath.Base(result.OutputPath)
	}
	return response
}

func (s *Server) handleTranslateText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var request translateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.translator.TranslateText(r.Context(), request.Text)
	if err != nil {
		s.writeTranslationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newTranslateResponse(result))
}

// handleTranslateUpload accepts a multipart audio or video file, stores it
// under a temporary name and routes it to the matching translation path.
func (s *Server) handleTranslateUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	uploadPath := filepath.Join(s.uploadDir, "upload-"+uuid.NewString()+ext)
	if err := saveUpload(file, uploadPath); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store upload: %v", err))
		return
	}
	defer os.Remove(uploadPath)

	var result *translation.Result
	switch {
	case translation.IsAudioExtension(ext):
		result, err = s.translator.TranslateAudio(r.Context(), uploadPath)
	case translation.IsVideoExtension(ext):
		result, err = s.translator.TranslateVideo(r.Context(), uploadPath)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported file type %q", ext))
		return
	}
	if err != nil {
		s.writeTranslationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newTranslateResponse(result))
}

func (s *Server) writeTranslationError(w http.ResponseWriter, err error) {
	var inputErr translation.InputError
	if errors.As(err, &inputErr) {
		writeError(w, http.StatusBadRequest, inputErr.Error())
		return
	}
	var transcriptionErr translation.TranscriptionError
	if errors.As(err, &transcriptionErr) {
		writeError(w, http.StatusBadGateway, transcriptionErr.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func saveUpload(file io.Reader, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
