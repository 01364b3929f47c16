// Package render concatenates resolved sign clips into a single output video.
//
// Rendering is delegated to an ffmpeg binary; clips are normalized to a
// common frame size and rate and joined without transitions, video-only.
package render

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/srinithi0406/ISL/core/assets"
)

const (
	defaultBinary = "ffmpeg"
	defaultFPS    = 24
	defaultWidth  = 640
	defaultHeight = 480
)

// Result reports where the rendered video was written and which plan units
// had to be skipped because their clip files were gone at render time.
type Result struct {
	OutputPath string
	Warnings   []string
}

// Concatenator is the video concatenation capability.
type Concatenator interface {
	Concatenate(ctx context.Context, plan assets.RenderPlan, outputPath string) (*Result, error)
}

// FFmpeg renders plans by shelling out to ffmpeg.
type FFmpeg struct {
	binary string
	fps    int
	width  int
	height int

	// run executes the assembled command; replaced in tests.
	run func(ctx context.Context, binary string, args []string) error
}

type Option func(*FFmpeg)

func WithBinary(binary string) Option {
	return func(f *FFmpeg) { f.binary = binary }
}

func WithFrameRate(fps int) Option {
	return func(f *FFmpeg) { f.fps = fps }
}

func WithFrameSize(width, height int) Option {
	return func(f *FFmpeg) {
		f.width = width
		f.height = height
	}
}

func NewFFmpeg(opts ...Option) *FFmpeg {
	f := &FFmpeg{
		binary: defaultBinary,
		fps:    defaultFPS,
		width:  defaultWidth,
		height: defaultHeight,
	}
	f.run = f.execRun
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Concatenate joins the plan's clips in order into outputPath.
//
// Clips missing from the filesystem (catalog drift) are skipped and reported
// as warnings so one stale entry cannot sink the whole plan. An empty plan
// produces no output file and no error.
func (f *FFmpeg) Concatenate(ctx context.Context, plan assets.RenderPlan, outputPath string) (*Result, error) {
	result := &Result{}

	var clips []string
	for _, path := range plan.ClipPaths() {
		if path == "" {
			result.Warnings = append(result.Warnings, "no clip available for a plan unit")
			continue
		}
		if _, err := os.Stat(path); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("skipping unreadable clip %s", path))
			continue
		}
		clips = append(clips, path)
	}

	if len(clips) == 0 {
		return result, nil
	}

	args := f.concatArgs(clips, outputPath)
	if err := f.run(ctx, f.binary, args); err != nil {
		return nil, fmt.Errorf("failed to concatenate clips: %w", err)
	}

	result.OutputPath = outputPath
	return result, nil
}

// concatArgs builds the full ffmpeg invocation: every clip is an input,
// scaled and padded to the target frame, then fed to the concat filter.
func (f *FFmpeg) concatArgs(clips []string, outputPath string) []string {
	args := []string{"-y"}
	for _, clip := range clips {
		args = append(args, "-i", clip)
	}

	var filterParts []string
	var concatInputs []string
	for i := range clips {
		label := fmt.Sprintf("v%d", i)
		filterParts = append(filterParts, fmt.Sprintf(
			"[%d:v]scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2,setsar=1,fps=%d[%s]",
			i, f.width, f.height, f.width, f.height, f.fps, label))
		concatInputs = append(concatInputs, "["+label+"]")
	}

	filter := strings.Join(filterParts, ";") + ";" +
		strings.Join(concatInputs, "") +
		fmt.Sprintf("concat=n=%d:v=1:a=0[out]", len(clips))

	args = append(args,
		"-filter_complex", filter,
		"-map", "[out]",
		"-an",
		"-c:v", "libx264",
		outputPath,
	)
	return args
}

// ExtractAudio pulls the audio track of a video file into a mono 16kHz WAV,
// the shape the transcription capability expects.
func (f *FFmpeg) ExtractAudio(ctx context.Context, videoPath, wavPath string) error {
	args := []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-f", "wav",
		wavPath,
	}
	if err := f.run(ctx, f.binary, args); err != nil {
		return fmt.Errorf("failed to extract audio from %s: %w", videoPath, err)
	}
	return nil
}

func (f *FFmpeg) execRun(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		log.Printf("ffmpeg failed: %s", strings.TrimSpace(stderr.String()))
		return fmt.Errorf("%s: %w", binary, err)
	}
	return nil
}
