package typecast

import (
	"fmt"
	"unicode/utf8"
)

const (
	// DefaultMaxTextLength is the documented text limit for a single
	// synthesis request. Some newer models accept up to 5000 characters;
	// raise the limit per client via ClientConfig.MaxTextLength.
	DefaultMaxTextLength = 2000

	maxContextLength = 2000
)

// InvalidParameterError reports a request that failed local validation.
// It is returned before any network traffic happens.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// Validate checks the request against the documented parameter ranges,
// using maxTextLength as the text limit. Lengths are counted in
// characters, not bytes, so multi-byte text is not penalized.
func (r *TTSRequest) validate(maxTextLength int) error {
	if r.Text == "" {
		return &InvalidParameterError{Field: "text", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(r.Text) > maxTextLength {
		return &InvalidParameterError{Field: "text", Reason: fmt.Sprintf("exceeds %d characters", maxTextLength)}
	}
	if r.VoiceID == "" {
		return &InvalidParameterError{Field: "voice_id", Reason: "must not be empty"}
	}
	if r.Model == "" {
		return &InvalidParameterError{Field: "model", Reason: "must not be empty"}
	}
	if r.Prompt != nil {
		if err := r.Prompt.validatePrompt(r.Model); err != nil {
			return err
		}
	}
	if r.Output != nil {
		if err := r.Output.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the request using the default text limit.
func (r *TTSRequest) Validate() error {
	return r.validate(DefaultMaxTextLength)
}

func (o *Output) validate() error {
	if o.Volume != nil && (*o.Volume < 0 || *o.Volume > 200) {
		return &InvalidParameterError{Field: "output.volume", Reason: "must be between 0 and 200"}
	}
	if o.AudioPitch != nil && (*o.AudioPitch < -12 || *o.AudioPitch > 12) {
		return &InvalidParameterError{Field: "output.audio_pitch", Reason: "must be between -12 and 12"}
	}
	if o.AudioTempo != nil && (*o.AudioTempo < 0.5 || *o.AudioTempo > 2.0) {
		return &InvalidParameterError{Field: "output.audio_tempo", Reason: "must be between 0.5 and 2.0"}
	}
	if o.AudioFormat != "" && o.AudioFormat != AudioFormatWAV && o.AudioFormat != AudioFormatMP3 {
		return &InvalidParameterError{Field: "output.audio_format", Reason: "must be wav or mp3"}
	}
	return nil
}

func validateIntensity(intensity *float64) error {
	if intensity != nil && (*intensity < 0.0 || *intensity > 2.0) {
		return &InvalidParameterError{Field: "prompt.emotion_intensity", Reason: "must be between 0.0 and 2.0"}
	}
	return nil
}

// validatePreset rejects the ssfm-v30-only presets when the request targets
// ssfm-v21 instead of silently sending a request the server will refuse.
func validatePreset(preset EmotionPreset, model TTSModel) error {
	switch preset {
	case "", EmotionNormal, EmotionSad, EmotionHappy, EmotionAngry:
		return nil
	case EmotionWhisper, EmotionToneUp, EmotionToneDown:
		if model == ModelSSFMV21 {
			return &InvalidParameterError{
				Field:  "prompt.emotion_preset",
				Reason: fmt.Sprintf("%s is not supported by %s", preset, ModelSSFMV21),
			}
		}
		return nil
	default:
		return &InvalidParameterError{
			Field:  "prompt.emotion_preset",
			Reason: fmt.Sprintf("unknown preset %q", preset),
		}
	}
}
