// Package typecast is a client for the Typecast text-to-speech HTTP API:
// synthesis, voice listing and voice lookup, authenticated with an API key.
package typecast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/typecast-ai/typecast-go/pkg/jsondoc"
)

// Version is the library version string.
const Version = "1.0.0"

const (
	// DefaultBaseURL is the default Typecast API base URL
	DefaultBaseURL = "https://api.typecast.ai"
	// DefaultTimeout is the timeout for synthesis requests
	DefaultTimeout = 60 * time.Second
	// DefaultMetadataTimeout is the timeout for voice listing requests,
	// shorter because those calls do no audio generation
	DefaultMetadataTimeout = 30 * time.Second
)

// ClientConfig holds configuration options for the Client.
type ClientConfig struct {
	// APIKey is the Typecast API key. Falls back to TYPECAST_API_KEY.
	APIKey string
	// BaseURL is the API base URL (optional, defaults to https://api.typecast.ai,
	// falls back to TYPECAST_API_HOST)
	BaseURL string
	// HTTPClient is the HTTP client to use (optional)
	HTTPClient *http.Client
	// Timeout is the synthesis request timeout (optional, defaults to 60s)
	Timeout time.Duration
	// MetadataTimeout is the voice listing timeout (optional, defaults to 30s)
	MetadataTimeout time.Duration
	// MaxTextLength overrides the local text length check (optional,
	// defaults to 2000)
	MaxTextLength int
}

// Client is the Typecast API client. The underlying http.Client keeps a
// connection pool and no per-call mutable state lives on the Client, so
// concurrent calls are safe.
type Client struct {
	apiKey          string
	baseURL         string
	httpClient      *http.Client
	synthTimeout    time.Duration
	metadataTimeout time.Duration
	maxTextLength   int
	closed          atomic.Bool
}

// NewClient creates a new Typecast API client. It fails when no API key is
// available from the config or the TYPECAST_API_KEY environment variable;
// a half-configured client is never returned.
func NewClient(config *ClientConfig) (*Client, error) {
	apiKey := os.Getenv("TYPECAST_API_KEY")
	baseURL := os.Getenv("TYPECAST_API_HOST")

	synthTimeout := DefaultTimeout
	metadataTimeout := DefaultMetadataTimeout
	maxTextLength := DefaultMaxTextLength

	var httpClient *http.Client
	if config != nil {
		if config.APIKey != "" {
			apiKey = config.APIKey
		}
		if config.BaseURL != "" {
			baseURL = config.BaseURL
		}
		if config.Timeout > 0 {
			synthTimeout = config.Timeout
		}
		if config.MetadataTimeout > 0 {
			metadataTimeout = config.MetadataTimeout
		}
		if config.MaxTextLength > 0 {
			maxTextLength = config.MaxTextLength
		}
		httpClient = config.HTTPClient
	}

	if apiKey == "" {
		return nil, errors.New("typecast: API key is required (set ClientConfig.APIKey or TYPECAST_API_KEY)")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		apiKey:          apiKey,
		baseURL:         strings.TrimRight(baseURL, "/"),
		httpClient:      httpClient,
		synthTimeout:    synthTimeout,
		metadataTimeout: metadataTimeout,
		maxTextLength:   maxTextLength,
	}, nil
}

// BaseURL returns the API host the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle connections held by the client. It is idempotent;
// operations after Close fail with ErrClientClosed.
func (c *Client) Close() {
	if c.closed.Swap(true) {
		return
	}
	c.httpClient.CloseIdleConnections()
}

// doRequest performs one HTTP request with the API headers set. No retries:
// each call is a single attempt and resiliency policy stays with the caller.
func (c *Client) doRequest(ctx context.Context, method, path, body string) (*http.Response, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-API-KEY", c.apiKey)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

// handleErrorResponse turns a non-2xx response into an APIError.
func (c *Client) handleErrorResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewAPIError(resp.StatusCode, "")
	}
	return newAPIErrorFromBody(resp.StatusCode, body)
}

// TextToSpeech converts text to speech. The request is validated locally
// first; an invalid request never reaches the network. The caller owns the
// returned audio bytes.
func (c *Client) TextToSpeech(ctx context.Context, request *TTSRequest) (*TTSResponse, error) {
	if err := request.validate(c.maxTextLength); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.synthTimeout)
	defer cancel()

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/text-to-speech", jsondoc.Print(buildRequestBody(request)))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	return &TTSResponse{
		AudioData: audioData,
		Duration:  parseDurationHeader(resp.Header),
		Format:    responseFormat(resp.Header, request),
	}, nil
}

// responseFormat derives the audio format from the response Content-Type,
// falling back to what the request asked for.
func responseFormat(header http.Header, request *TTSRequest) AudioFormat {
	switch header.Get("Content-Type") {
	case "audio/mpeg", "audio/mp3":
		return AudioFormatMP3
	case "audio/wav", "audio/x-wav":
		return AudioFormatWAV
	}
	if request.Output != nil && request.Output.AudioFormat != "" {
		return request.Output.AudioFormat
	}
	return AudioFormatWAV
}

// parseDurationHeader reads X-Audio-Duration, 0 when absent or garbled.
func parseDurationHeader(header http.Header) float64 {
	s := header.Get("X-Audio-Duration")
	if s == "" {
		return 0
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return duration
}

// GetVoicesV2 retrieves the list of available voices with enhanced metadata
// (V2 API). A nil filter returns everything.
func (c *Client) GetVoicesV2(ctx context.Context, filter *VoicesV2Filter) ([]VoiceV2, error) {
	path := "/v2/voices"
	if filter != nil {
		params := url.Values{}
		if filter.Model != "" {
			params.Set("model", string(filter.Model))
		}
		if filter.Gender != "" {
			params.Set("gender", string(filter.Gender))
		}
		if filter.Age != "" {
			params.Set("age", string(filter.Age))
		}
		if filter.UseCases != "" {
			params.Set("use_cases", string(filter.UseCases))
		}
		if len(params) > 0 {
			path = path + "?" + params.Encode()
		}
	}

	body, err := c.getJSON(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeVoiceV2List(body)
}

// GetVoiceV2 retrieves a specific voice by ID with enhanced metadata (V2 API).
func (c *Client) GetVoiceV2(ctx context.Context, voiceID string) (*VoiceV2, error) {
	body, err := c.getJSON(ctx, "/v2/voices/"+url.PathEscape(voiceID))
	if err != nil {
		return nil, err
	}

	doc, err := jsondoc.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode voice response: %w", err)
	}
	voice, err := decodeVoiceV2(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode voice response: %w", err)
	}
	return &voice, nil
}

// GetVoices retrieves the list of available voices (V1 API - deprecated)
// Deprecated: Use GetVoicesV2 for enhanced metadata and filtering options
func (c *Client) GetVoices(ctx context.Context, model TTSModel) ([]VoiceV1, error) {
	path := "/v1/voices"
	if model != "" {
		path = path + "?model=" + url.QueryEscape(string(model))
	}
	body, err := c.getJSON(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeVoiceV1List(body)
}

// GetVoice retrieves a specific voice by ID (V1 API - deprecated)
// Deprecated: Use GetVoiceV2 for enhanced metadata
func (c *Client) GetVoice(ctx context.Context, voiceID string, model TTSModel) ([]VoiceV1, error) {
	path := "/v1/voices/" + url.PathEscape(voiceID)
	if model != "" {
		path = path + "?model=" + url.QueryEscape(string(model))
	}
	body, err := c.getJSON(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeVoiceV1List(body)
}

// getJSON performs a GET against a metadata endpoint and returns the body.
func (c *Client) getJSON(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.metadataTimeout)
	defer cancel()

	resp, err := c.doRequest(ctx, http.MethodGet, path, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}
	return io.ReadAll(resp.Body)
}
