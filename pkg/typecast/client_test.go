package typecast

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := NewClient(&ClientConfig{
		APIKey:  "test-key",
		BaseURL: serverURL,
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("TYPECAST_API_KEY", "")

	client, err := NewClient(nil)
	if err == nil {
		t.Fatal("expected error without API key")
	}
	if client != nil {
		t.Error("no client should be returned on failure")
	}

	client, err = NewClient(&ClientConfig{APIKey: ""})
	if err == nil || client != nil {
		t.Error("empty key in config should also fail")
	}
}

func TestNewClientEnvFallback(t *testing.T) {
	t.Setenv("TYPECAST_API_KEY", "env-key")
	t.Setenv("TYPECAST_API_HOST", "https://example.test")

	client, err := NewClient(nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if client.apiKey != "env-key" {
		t.Errorf("apiKey = %q", client.apiKey)
	}
	if client.baseURL != "https://example.test" {
		t.Errorf("baseURL = %q", client.baseURL)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	client := newTestClient(t, "https://example.test")
	client.Close()
	client.Close()

	_, err := client.GetVoicesV2(context.Background(), nil)
	if !errors.Is(err, ErrClientClosed) {
		t.Errorf("err = %v, want ErrClientClosed", err)
	}
	_, err = client.TextToSpeech(context.Background(), &TTSRequest{
		Text: "hi", VoiceID: "v", Model: ModelSSFMV21,
	})
	if !errors.Is(err, ErrClientClosed) {
		t.Errorf("err = %v, want ErrClientClosed", err)
	}
}

func TestTextToSpeech(t *testing.T) {
	audio := []byte{1, 2, 3, 4, 5}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v1/text-to-speech" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("X-API-KEY") != "test-key" {
			t.Errorf("X-API-KEY = %q", r.Header.Get("X-API-KEY"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}

		body, _ := io.ReadAll(r.Body)
		for _, want := range []string{`"text":"Hello, world!"`, `"voice_id":"tc_x"`, `"model":"ssfm-v30"`, `"audio_format":"wav"`} {
			if !strings.Contains(string(body), want) {
				t.Errorf("request body %s missing %s", body, want)
			}
		}

		w.Header().Set("Content-Type", "audio/wav")
		w.Header().Set("X-Audio-Duration", "2.5")
		w.Write(audio)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp, err := client.TextToSpeech(context.Background(), &TTSRequest{
		Text:    "Hello, world!",
		VoiceID: "tc_x",
		Model:   ModelSSFMV30,
		Output:  &Output{AudioFormat: AudioFormatWAV},
	})
	if err != nil {
		t.Fatalf("TextToSpeech failed: %v", err)
	}

	if !bytes.Equal(resp.AudioData, audio) {
		t.Errorf("AudioData = %v, want %v", resp.AudioData, audio)
	}
	if resp.Duration != 2.5 {
		t.Errorf("Duration = %v, want 2.5", resp.Duration)
	}
	if resp.Format != AudioFormatWAV {
		t.Errorf("Format = %v, want wav", resp.Format)
	}
}

func TestTextToSpeechFormatFromContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The server decides the actual encoding; the response header
		// wins over what the request asked for.
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte{0xff, 0xfb})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp, err := client.TextToSpeech(context.Background(), &TTSRequest{
		Text:    "hi",
		VoiceID: "v",
		Model:   ModelSSFMV21,
		Output:  &Output{AudioFormat: AudioFormatWAV},
	})
	if err != nil {
		t.Fatalf("TextToSpeech failed: %v", err)
	}
	if resp.Format != AudioFormatMP3 {
		t.Errorf("Format = %v, want mp3", resp.Format)
	}
}

func TestTextToSpeechMissingDurationHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/wav")
		w.Write([]byte{1})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp, err := client.TextToSpeech(context.Background(), &TTSRequest{
		Text: "hi", VoiceID: "v", Model: ModelSSFMV21,
	})
	if err != nil {
		t.Fatalf("TextToSpeech failed: %v", err)
	}
	if resp.Duration != 0 {
		t.Errorf("Duration = %v, want 0", resp.Duration)
	}
}

func TestTextToSpeechUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid API key"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.TextToSpeech(context.Background(), &TTSRequest{
		Text: "Hello, world!", VoiceID: "tc_x", Model: ModelSSFMV30,
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if !apiErr.IsUnauthorized() {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Error(), "Invalid API key") {
		t.Errorf("Error() = %q, should contain the detail", apiErr.Error())
	}
}

func TestTextToSpeechValidatesBeforeNetwork(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	volume := 201
	_, err := client.TextToSpeech(context.Background(), &TTSRequest{
		Text: "hi", VoiceID: "v", Model: ModelSSFMV21,
		Output: &Output{Volume: &volume},
	})

	var invalid *InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidParameterError, got %T: %v", err, err)
	}
	if called {
		t.Error("invalid request must not reach the transport")
	}
}

func TestGetVoicesV2(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/voices" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("model"); got != "ssfm-v30" {
			t.Errorf("model query = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"voice_id":"v1","voice_name":"Test","models":[{"version":"ssfm-v30","emotions":["normal","happy"]}]}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	voices, err := client.GetVoicesV2(context.Background(), &VoicesV2Filter{Model: ModelSSFMV30})
	if err != nil {
		t.Fatalf("GetVoicesV2 failed: %v", err)
	}

	if len(voices) != 1 {
		t.Fatalf("got %d voices, want 1", len(voices))
	}
	voice := voices[0]
	if voice.VoiceID != "v1" || voice.VoiceName != "Test" {
		t.Errorf("voice = %+v", voice)
	}
	if len(voice.Models) != 1 || voice.Models[0].Version != ModelSSFMV30 {
		t.Fatalf("models = %+v", voice.Models)
	}
	if len(voice.Models[0].Emotions) != 2 || voice.Models[0].Emotions[0] != "normal" || voice.Models[0].Emotions[1] != "happy" {
		t.Errorf("emotions = %v", voice.Models[0].Emotions)
	}
	if voice.Gender != nil || voice.Age != nil || voice.UseCases != nil {
		t.Error("absent optional fields should stay nil")
	}
}

func TestGetVoicesV2OptionalMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"voice_id":"v1","voice_name":"Test","models":[],"gender":"female","age":"young_adult","use_cases":["News","Podcast"]}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	voices, err := client.GetVoicesV2(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetVoicesV2 failed: %v", err)
	}

	voice := voices[0]
	if voice.Gender == nil || *voice.Gender != GenderFemale {
		t.Errorf("Gender = %v", voice.Gender)
	}
	if voice.Age == nil || *voice.Age != AgeYoungAdult {
		t.Errorf("Age = %v", voice.Age)
	}
	if len(voice.UseCases) != 2 {
		t.Errorf("UseCases = %v", voice.UseCases)
	}
}

func TestGetVoicesV2MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.GetVoicesV2(context.Background(), nil); err == nil {
		t.Error("non-array response should be a decode error")
	}
}

func TestGetVoiceV2(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/voices/tc_abc" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"voice_id":"tc_abc","voice_name":"Ada","models":[{"version":"ssfm-v21","emotions":["normal"]}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	voice, err := client.GetVoiceV2(context.Background(), "tc_abc")
	if err != nil {
		t.Fatalf("GetVoiceV2 failed: %v", err)
	}
	if voice.VoiceID != "tc_abc" || voice.VoiceName != "Ada" {
		t.Errorf("voice = %+v", voice)
	}
}

func TestGetVoicesV1(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/voices" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("model"); got != "ssfm-v21" {
			t.Errorf("model query = %q", got)
		}
		w.Write([]byte(`[{"voice_id":"v1","voice_name":"Old","model":"ssfm-v21","emotions":["normal"]}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	voices, err := client.GetVoices(context.Background(), ModelSSFMV21)
	if err != nil {
		t.Fatalf("GetVoices failed: %v", err)
	}
	if len(voices) != 1 || voices[0].Model != ModelSSFMV21 {
		t.Errorf("voices = %+v", voices)
	}
}

func TestVoiceListErrorMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"detail":"slow down"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GetVoicesV2(context.Background(), nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if !apiErr.IsRateLimited() || apiErr.Detail != "slow down" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}
