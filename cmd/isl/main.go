// Command isl translates English text, recordings and live speech into
// Indian Sign Language clip sequences. It can print translations, render
// them to a video with ffmpeg, serve an HTTP API or run a live TUI fed by
// the microphone.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	translation "github.com/srinithi0406/ISL/core"
	"github.com/srinithi0406/ISL/core/assets"
	"github.com/srinithi0406/ISL/core/audio/miniaudio"
	"github.com/srinithi0406/ISL/core/audio/portaudio"
	"github.com/srinithi0406/ISL/core/nlp/spacyserver"
	"github.com/srinithi0406/ISL/core/render"
	"github.com/srinithi0406/ISL/core/speechtotext/deepgram"
	"github.com/srinithi0406/ISL/server"
)

const portaudioBufferSize = 1600

func main() {
	var (
		text      = flag.String("text", "", "translate a block of English text")
		audioFile = flag.String("audio", "", "translate a recorded audio file")
		videoFile = flag.String("video", "", "translate the audio track of a video file")
		live      = flag.Bool("live", false, "translate microphone speech live")
		serve     = flag.Bool("serve", false, "serve the HTTP API")

		addr      = flag.String("addr", ":8000", "HTTP listen address")
		assetsDir = flag.String("assets", "assets", "directory holding sign clips")
		parserURL = flag.String("parser", "", "grammar parser base URL (defaults to ISL_PARSER_URL)")
		outputDir = flag.String("out", "", "directory for rendered videos (defaults to the system temp dir)")
		noRender  = flag.Bool("no-render", false, "skip rendering, print the clip sequence only")
		mic       = flag.String("mic", "miniaudio", "capture backend: miniaudio or portaudio")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, options{
		text:      *text,
		audioFile: *audioFile,
		videoFile: *videoFile,
		live:      *live,
		serve:     *serve,
		addr:      *addr,
		assetsDir: *assetsDir,
		parserURL: *parserURL,
		outputDir: *outputDir,
		noRender:  *noRender,
		mic:       *mic,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type options struct {
	text      string
	audioFile string
	videoFile string
	live      bool
	serve     bool

	addr      string
	assetsDir string
	parserURL string
	outputDir string
	noRender  bool
	mic       string
}

func run(ctx context.Context, opts options) error {
	catalog, err := assets.NewCatalog(opts.assetsDir)
	if err != nil {
		return fmt.Errorf("failed to load sign catalog: %w", err)
	}

	parser, err := spacyserver.NewClient(opts.parserURL)
	if err != nil {
		return fmt.Errorf("failed to set up grammar parser: %w", err)
	}

	ffmpeg := render.NewFFmpeg()
	translatorOpts := []translation.TranslatorOption{
		translation.WithParser(parser),
		translation.WithCatalog(catalog),
		translation.WithAudioExtractor(ffmpeg),
		translation.WithFileTranscriber(deepgram.NewPreRecordedClient()),
		translation.WithSpeechToTextClient(deepgram.NewTranscriptionClient()),
	}
	if !opts.noRender {
		translatorOpts = append(translatorOpts, translation.WithRenderer(ffmpeg))
	}
	if opts.outputDir != "" {
		translatorOpts = append(translatorOpts, translation.WithOutputDir(opts.outputDir))
	}

	if opts.live {
		input, err := newAudioInput(opts.mic)
		if err != nil {
			return err
		}
		translatorOpts = append(translatorOpts, translation.WithAudioInput(input))
	}

	translator, err := translation.NewTranslator(translatorOpts...)
	if err != nil {
		return err
	}

	switch {
	case opts.serve:
		serverOpts := []server.Option{server.WithAddr(opts.addr), server.WithAssetsDir(opts.assetsDir)}
		if opts.outputDir != "" {
			serverOpts = append(serverOpts, server.WithOutputDir(opts.outputDir))
		}
		return server.New(translator, serverOpts...).ListenAndServe(ctx)

	case opts.live:
		return runLiveTUI(ctx, translator)

	case opts.text != "":
		return printTranslation(translator.TranslateText(ctx, opts.text))

	case opts.audioFile != "":
		return printTranslation(translator.TranslateAudio(ctx, opts.audioFile))

	case opts.videoFile != "":
		return printTranslation(translator.TranslateVideo(ctx, opts.videoFile))

	default:
		flag.Usage()
		return fmt.Errorf("nothing to do: pass -text, -audio, -video, -live or -serve")
	}
}

func newAudioInput(backend string) (translation.AudioInput, error) {
	switch backend {
	case "miniaudio":
		return miniaudio.NewClient()
	case "portaudio":
		return portaudio.NewClient(portaudioBufferSize)
	default:
		return nil, fmt.Errorf("unknown capture backend %q", backend)
	}
}

func printTranslation(result *translation.Result, err error) error {
	if err != nil {
		return err
	}

	if result.Transcript != "" {
		fmt.Println("transcript:", strings.TrimSpace(result.Transcript))
	}
	for _, sentence := range result.Sentences {
		fmt.Printf("%s -> %s\n", sentence.Sentence, gloss(sentence))
	}
	for _, warning := range result.Warnings {
		fmt.Println("warning:", warning)
	}
	if result.OutputPath != "" {
		fmt.Println("rendered:", result.OutputPath)
	}
	return nil
}

func gloss(sentence translation.SentenceTranslation) string {
	words := make([]string, 0, len(sentence.Tokens))
	for _, token := range sentence.Tokens {
		words = append(words, strings.ToUpper(token.Text))
	}
	return strings.Join(words, " ")
}
