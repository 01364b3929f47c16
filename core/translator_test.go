package translation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/srinithi0406/ISL/core/assets"
	"github.com/srinithi0406/ISL/core/render"
)

type fakeRenderer struct {
	concatenated []assets.RenderPlan
	warnings     []string
	err          error
}

func (r *fakeRenderer) Concatenate(_ context.Context, plan assets.RenderPlan, outputPath string) (*render.Result, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.concatenated = append(r.concatenated, plan)
	return &render.Result{OutputPath: outputPath, Warnings: r.warnings}, nil
}

func TestNewTranslatorRequiresParserAndCatalog(t *testing.T) {
	if _, err := NewTranslator(WithCatalog(newTestCatalog(t))); err == nil {
		t.Fatal("expected an error without a parser")
	}
	if _, err := NewTranslator(WithParser(&fakeParser{})); err == nil {
		t.Fatal("expected an error without a catalog")
	}
}

func TestTranslateTextEmptyInputYieldsEmptyResult(t *testing.T) {
	translator, err := NewTranslator(
		WithParser(&fakeParser{}),
		WithCatalog(newTestCatalog(t)),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	result, err := translator.TranslateText(context.Background(), "   ")
	if err != nil {
		t.Fatalf("expected empty input to succeed, got %v", err)
	}
	if len(result.Sentences) != 0 {
		t.Fatalf("expected no sentences, got %v", result.Sentences)
	}
	if result.Plan.Len() != 0 {
		t.Fatalf("expected an empty plan, got %d references", result.Plan.Len())
	}
	if result.OutputPath != "" {
		t.Fatalf("expected no output path, got %q", result.OutputPath)
	}
}

func TestTranslateTextResolvesEverySentence(t *testing.T) {
	translator, err := NewTranslator(
		WithParser(&fakeParser{}),
		WithCatalog(newTestCatalog(t, "he", "school", "today")),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	result, err := translator.TranslateText(context.Background(), "He school. Today xyzzy.")
	if err != nil {
		t.Fatalf("translation failed: %v", err)
	}

	if len(result.Sentences) != 2 {
		t.Fatalf("expected two sentences, got %d", len(result.Sentences))
	}
	if result.Plan.Len() != 4 {
		t.Fatalf("expected four references, got %d", result.Plan.Len())
	}
	// he + school + today + five spelled letters
	if paths := result.Plan.ClipPaths(); len(paths) != 8 {
		t.Fatalf("expected eight clips, got %v", paths)
	}
}

func TestTranslateTextRendersWhenConfigured(t *testing.T) {
	renderer := &fakeRenderer{warnings: []string{"skipped a clip"}}
	translator, err := NewTranslator(
		WithParser(&fakeParser{}),
		WithCatalog(newTestCatalog(t, "he")),
		WithRenderer(renderer),
		WithOutputDir(t.TempDir()),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	result, err := translator.TranslateText(context.Background(), "He.")
	if err != nil {
		t.Fatalf("translation failed: %v", err)
	}

	if len(renderer.concatenated) != 1 {
		t.Fatalf("expected one render call, got %d", len(renderer.concatenated))
	}
	if result.OutputPath == "" || filepath.Ext(result.OutputPath) != ".mp4" {
		t.Fatalf("expected an .mp4 output path, got %q", result.OutputPath)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected renderer warnings to propagate, got %v", result.Warnings)
	}
}

func TestTranslateTextFailsWhenParserFails(t *testing.T) {
	translator, err := NewTranslator(
		WithParser(&fakeParser{err: errors.New("parser down")}),
		WithCatalog(newTestCatalog(t)),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	if _, err := translator.TranslateText(context.Background(), "Hello."); err == nil {
		t.Fatal("expected translation to fail when parsing fails")
	}
}

func TestTranslateAudioRejectsUnsupportedExtension(t *testing.T) {
	translator, err := NewTranslator(
		WithParser(&fakeParser{}),
		WithCatalog(newTestCatalog(t)),
		WithFileTranscriber(&fakeFileTranscriber{}),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	_, err = translator.TranslateAudio(context.Background(), "notes.txt")
	var inputErr InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
}

func TestTranslateAudioTranscribesAndTranslates(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "speech.wav")
	if err := os.WriteFile(audioPath, []byte("riff"), 0o644); err != nil {
		t.Fatalf("failed to write audio file: %v", err)
	}

	transcriber := &fakeFileTranscriber{transcript: "He school."}
	translator, err := NewTranslator(
		WithParser(&fakeParser{}),
		WithCatalog(newTestCatalog(t, "he", "school")),
		WithFileTranscriber(transcriber),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	result, err := translator.TranslateAudio(context.Background(), audioPath)
	if err != nil {
		t.Fatalf("translation failed: %v", err)
	}

	if transcriber.lastPath != audioPath {
		t.Fatalf("expected transcriber to receive %q, got %q", audioPath, transcriber.lastPath)
	}
	if result.Transcript != "He school." {
		t.Fatalf("expected transcript to carry through, got %q", result.Transcript)
	}
	if result.Plan.Len() != 2 {
		t.Fatalf("expected two references, got %d", result.Plan.Len())
	}
}

func TestTranslateAudioWrapsTranscriptionFailure(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "speech.wav")
	if err := os.WriteFile(audioPath, []byte("riff"), 0o644); err != nil {
		t.Fatalf("failed to write audio file: %v", err)
	}

	translator, err := NewTranslator(
		WithParser(&fakeParser{}),
		WithCatalog(newTestCatalog(t)),
		WithFileTranscriber(&fakeFileTranscriber{err: errors.New("engine down")}),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	_, err = translator.TranslateAudio(context.Background(), audioPath)
	var transcriptionErr TranscriptionError
	if !errors.As(err, &transcriptionErr) {
		t.Fatalf("expected TranscriptionError, got %v", err)
	}
}

func TestTranslateVideoRejectsUnsupportedExtension(t *testing.T) {
	translator, err := NewTranslator(
		WithParser(&fakeParser{}),
		WithCatalog(newTestCatalog(t)),
	)
	if err != nil {
		t.Fatalf("failed to build translator: %v", err)
	}

	_, err = translator.TranslateVideo(context.Background(), "speech.wav")
	var inputErr InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
}
