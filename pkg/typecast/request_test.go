package typecast

import (
	"testing"

	"github.com/typecast-ai/typecast-go/pkg/jsondoc"
)

func buildAndParse(t *testing.T, req *TTSRequest) *jsondoc.Value {
	t.Helper()
	body := jsondoc.Print(buildRequestBody(req))
	doc, err := jsondoc.Parse([]byte(body))
	if err != nil {
		t.Fatalf("request body is not valid JSON: %v", err)
	}
	return doc
}

func TestBuildRequestBodyRequiredFieldsOnly(t *testing.T) {
	doc := buildAndParse(t, &TTSRequest{
		Text:    "Hello, world!",
		VoiceID: "tc_x",
		Model:   ModelSSFMV30,
	})

	if got, _ := doc.Get("text").StringValue(); got != "Hello, world!" {
		t.Errorf("text = %q", got)
	}
	if got, _ := doc.Get("voice_id").StringValue(); got != "tc_x" {
		t.Errorf("voice_id = %q", got)
	}
	if got, _ := doc.Get("model").StringValue(); got != "ssfm-v30" {
		t.Errorf("model = %q", got)
	}
	for _, absent := range []string{"language", "prompt", "output", "seed"} {
		if doc.Get(absent) != nil {
			t.Errorf("%s should not be emitted when unset", absent)
		}
	}
}

func TestBuildRequestBodyLegacyPrompt(t *testing.T) {
	intensity := 1.5
	doc := buildAndParse(t, &TTSRequest{
		Text:    "hi",
		VoiceID: "v",
		Model:   ModelSSFMV21,
		Prompt:  &LegacyPrompt{EmotionPreset: EmotionHappy, EmotionIntensity: &intensity},
	})

	prompt := doc.Get("prompt")
	if prompt == nil {
		t.Fatal("prompt missing")
	}
	if prompt.Get("emotion_type") != nil {
		t.Error("legacy prompt must not carry emotion_type")
	}
	if got, _ := prompt.Get("emotion_preset").StringValue(); got != "happy" {
		t.Errorf("emotion_preset = %q", got)
	}
	if got, _ := prompt.Get("emotion_intensity").NumberValue(); got != 1.5 {
		t.Errorf("emotion_intensity = %v", got)
	}
}

func TestBuildRequestBodyPresetPrompt(t *testing.T) {
	intensity := 0.5
	doc := buildAndParse(t, &TTSRequest{
		Text:    "hi",
		VoiceID: "v",
		Model:   ModelSSFMV30,
		Prompt:  &PresetPrompt{EmotionPreset: EmotionWhisper, EmotionIntensity: &intensity},
	})

	prompt := doc.Get("prompt")
	if got, _ := prompt.Get("emotion_type").StringValue(); got != "preset" {
		t.Errorf("emotion_type = %q", got)
	}
	if got, _ := prompt.Get("emotion_preset").StringValue(); got != "whisper" {
		t.Errorf("emotion_preset = %q", got)
	}
}

func TestBuildRequestBodySmartPrompt(t *testing.T) {
	doc := buildAndParse(t, &TTSRequest{
		Text:    "hi",
		VoiceID: "v",
		Model:   ModelSSFMV30,
		Prompt:  &SmartPrompt{PreviousText: "before"},
	})

	prompt := doc.Get("prompt")
	if got, _ := prompt.Get("emotion_type").StringValue(); got != "smart" {
		t.Errorf("emotion_type = %q", got)
	}
	if got, _ := prompt.Get("previous_text").StringValue(); got != "before" {
		t.Errorf("previous_text = %q", got)
	}
	if prompt.Get("next_text") != nil {
		t.Error("next_text should not be emitted when empty")
	}
}

func TestBuildRequestBodyOutputAndSeed(t *testing.T) {
	volume := 150
	pitch := -3
	tempo := 1.25
	seed := 42
	doc := buildAndParse(t, &TTSRequest{
		Text:     "hi",
		VoiceID:  "v",
		Model:    ModelSSFMV21,
		Language: "eng",
		Output: &Output{
			Volume:      &volume,
			AudioPitch:  &pitch,
			AudioTempo:  &tempo,
			AudioFormat: AudioFormatMP3,
		},
		Seed: &seed,
	})

	if got, _ := doc.Get("language").StringValue(); got != "eng" {
		t.Errorf("language = %q", got)
	}
	out := doc.Get("output")
	if out == nil {
		t.Fatal("output missing")
	}
	if got, _ := out.Get("volume").NumberValue(); got != 150 {
		t.Errorf("volume = %v", got)
	}
	if got, _ := out.Get("audio_pitch").NumberValue(); got != -3 {
		t.Errorf("audio_pitch = %v", got)
	}
	if got, _ := out.Get("audio_tempo").NumberValue(); got != 1.25 {
		t.Errorf("audio_tempo = %v", got)
	}
	if got, _ := out.Get("audio_format").StringValue(); got != "mp3" {
		t.Errorf("audio_format = %q", got)
	}
	if got, _ := doc.Get("seed").NumberValue(); got != 42 {
		t.Errorf("seed = %v", got)
	}
}
