package deepgram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const prerecordedURL = "https://api.deepgram.com/v1/listen"

// PreRecordedClient transcribes audio files through the deepgram REST API.
// It implements speechtotext.FileTranscriber for batch mode.
type PreRecordedClient struct {
	httpClient *http.Client
	baseURL    string
}

type PreRecordedOption func(*PreRecordedClient)

func WithPreRecordedHTTPClient(httpClient *http.Client) PreRecordedOption {
	return func(c *PreRecordedClient) { c.httpClient = httpClient }
}

func WithPreRecordedBaseURL(baseURL string) PreRecordedOption {
	return func(c *PreRecordedClient) { c.baseURL = baseURL }
}

func NewPreRecordedClient(opts ...PreRecordedOption) *PreRecordedClient {
	c := &PreRecordedClient{
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		baseURL:    prerecordedURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type prerecordedResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// TranscribeFile uploads the audio file and returns the recognized text.
func (c *PreRecordedClient) TranscribeFile(ctx context.Context, audioPath string) (string, error) {
	apiKey, ok := os.LookupEnv("DEEPGRAM_API_KEY")
	if !ok {
		return "", fmt.Errorf("deepgram api key not found")
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	listenUrl, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid deepgram url: %w", err)
	}
	queryParams := listenUrl.Query()
	queryParams.Set("model", "nova-3")
	queryParams.Set("smart_format", "true")
	queryParams.Set("punctuate", "true")
	queryParams.Set("language", "en-US")
	listenUrl.RawQuery = queryParams.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, listenUrl.String(), file)
	if err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+apiKey)
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach deepgram: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("deepgram returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var parsed prerecordedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode deepgram response: %w", err)
	}

	if len(parsed.Results.Channels) == 0 || len(parsed.Results.Channels[0].Alternatives) == 0 {
		return "", nil
	}
	return strings.TrimSpace(parsed.Results.Channels[0].Alternatives[0].Transcript), nil
}
