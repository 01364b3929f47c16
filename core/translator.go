// Package translation wires the English-to-ISL pipeline: sentence
// segmentation, dependency parsing, ISL grammar reordering, asset resolution
// and video rendering, in batch and live (streaming) form.
package translation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/srinithi0406/ISL/core/assets"
	"github.com/srinithi0406/ISL/core/grammar"
	"github.com/srinithi0406/ISL/core/nlp"
	"github.com/srinithi0406/ISL/core/render"
	"github.com/srinithi0406/ISL/core/speechtotext"
	"go.opentelemetry.io/otel/codes"
)

const (
	defaultTextQueueCapacity = 32
	defaultClipQueueCapacity = 10
)

var audioExtensions = map[string]bool{
	".wav": true, ".mp3": true, ".m4a": true, ".flac": true, ".ogg": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".mkv": true, ".avi": true, ".webm": true,
}

// IsAudioExtension reports whether ext (dot included) names a supported
// audio container.
func IsAudioExtension(ext string) bool { return audioExtensions[strings.ToLower(ext)] }

// IsVideoExtension reports whether ext (dot included) names a supported
// video container.
func IsVideoExtension(ext string) bool { return videoExtensions[strings.ToLower(ext)] }

// Translator holds the injected capabilities shared by batch requests and
// live sessions. Construct once, use from any goroutine.
type Translator struct {
	parser  nlp.Parser
	catalog *assets.Catalog

	renderer        render.Concatenator
	extractor       AudioExtractor
	fileTranscriber speechtotext.FileTranscriber
	streamingClient speechtotext.StreamingClient
	audioInput      AudioInput

	outputDir         string
	textQueueCapacity int
	clipQueueCapacity int
}

func NewTranslator(opts ...TranslatorOption) (*Translator, error) {
	t := &Translator{
		outputDir:         os.TempDir(),
		textQueueCapacity: defaultTextQueueCapacity,
		clipQueueCapacity: defaultClipQueueCapacity,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.parser == nil {
		return nil, fmt.Errorf("translator requires a parser")
	}
	if t.catalog == nil {
		return nil, fmt.Errorf("translator requires an asset catalog")
	}

	return t, nil
}

// SentenceTranslation pairs one source sentence with its reordered ISL
// token sequence.
type SentenceTranslation struct {
	Sentence string
	Tokens   []grammar.SignToken
}

// Result is the outcome of one batch translation.
type Result struct {
	Transcript string
	Sentences  []SentenceTranslation
	Plan       assets.RenderPlan
	OutputPath string
	Warnings   []string
}

// TranslateText runs the full pipeline over a block of text. Empty input
// yields an empty result, not an error. When a renderer is configured the
// plan is also rendered to a video file under the output directory.
func (t *Translator) TranslateText(ctx context.Context, text string) (*Result, error) {
	ctx, span := tracer.Start(ctx, "translate text")
	defer span.End()

	result := &Result{Transcript: text}

	plan := assets.NewRenderPlan()
	for _, sentence := range grammar.Sentences(text) {
		tokens, err := t.parser.Parse(ctx, sentence)
		if err != nil {
			recordedErr := fmt.Errorf("failed to parse sentence: %w", err)
			span.RecordError(recordedErr)
			span.SetStatus(codes.Error, recordedErr.Error())
			return nil, recordedErr
		}

		signs := grammar.Reorder(tokens)
		result.Sentences = append(result.Sentences, SentenceTranslation{
			Sentence: sentence,
			Tokens:   signs,
		})
		plan = plan.Append(assets.PlanSigns(t.catalog, signs))
	}
	result.Plan = plan

	if t.renderer == nil || plan.Len() == 0 {
		return result, nil
	}

	outputPath := filepath.Join(t.outputDir, "isl-"+uuid.NewString()+".mp4")
	rendered, err := t.renderer.Concatenate(ctx, plan, outputPath)
	if err != nil {
		recordedErr := fmt.Errorf("failed to render plan: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return nil, recordedErr
	}
	result.OutputPath = rendered.OutputPath
	result.Warnings = rendered.Warnings

	return result, nil
}

// TranslateAudio transcribes an audio file and translates the transcript.
func (t *Translator) TranslateAudio(ctx context.Context, audioPath string) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(audioPath))
	if !audioExtensions[ext] {
		return nil, InputError{Reason: fmt.Sprintf("unsupported audio file type %q", ext)}
	}
	return t.translateAudioFile(ctx, audioPath)
}

func (t *Translator) translateAudioFile(ctx context.Context, audioPath string) (*Result, error) {
	if t.fileTranscriber == nil {
		return nil, fmt.Errorf("translator has no file transcriber configured")
	}
	if _, err := os.Stat(audioPath); err != nil {
		return nil, InputError{Reason: fmt.Sprintf("cannot read %s", audioPath)}
	}

	transcript, err := t.fileTranscriber.TranscribeFile(ctx, audioPath)
	if err != nil {
		return nil, TranscriptionError{Err: err}
	}

	return t.TranslateText(ctx, transcript)
}

// TranslateVideo extracts the audio track of a video file, transcribes it and
// translates the transcript.
func (t *Translator) TranslateVideo(ctx context.Context, videoPath string) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(videoPath))
	if !videoExtensions[ext] {
		return nil, InputError{Reason: fmt.Sprintf("unsupported video file type %q", ext)}
	}
	if t.extractor == nil {
		return nil, fmt.Errorf("translator has no audio extractor configured")
	}
	if _, err := os.Stat(videoPath); err != nil {
		return nil, InputError{Reason: fmt.Sprintf("cannot read %s", videoPath)}
	}

	wavPath := filepath.Join(t.outputDir, "audio-"+uuid.NewString()+".wav")
	if err := t.extractor.ExtractAudio(ctx, videoPath, wavPath); err != nil {
		return nil, fmt.Errorf("failed to extract audio track: %w", err)
	}
	defer os.Remove(wavPath)

	return t.translateAudioFile(ctx, wavPath)
}
