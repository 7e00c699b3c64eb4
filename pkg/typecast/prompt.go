package typecast

import (
	"unicode/utf8"

	"github.com/typecast-ai/typecast-go/pkg/jsondoc"
)

// Prompt is the emotion control setting of a request. It is one of
// LegacyPrompt, PresetPrompt or SmartPrompt; the set is closed so the wire
// shape of every variant is handled here, in one place.
type Prompt interface {
	promptValue() *jsondoc.Value
	validatePrompt(model TTSModel) error
}

// LegacyPrompt is the ssfm-v21 style emotion setting. It carries no
// emotion_type discriminator on the wire.
type LegacyPrompt struct {
	// EmotionPreset is the emotion preset to apply
	EmotionPreset EmotionPreset
	// EmotionIntensity controls strength of emotion (0.0 to 2.0, default: 1.0)
	EmotionIntensity *float64
}

func (p *LegacyPrompt) promptValue() *jsondoc.Value {
	obj := jsondoc.NewObject()
	if p.EmotionPreset != "" {
		obj.AddString("emotion_preset", string(p.EmotionPreset))
	}
	if p.EmotionIntensity != nil {
		obj.AddNumber("emotion_intensity", *p.EmotionIntensity)
	}
	return obj
}

func (p *LegacyPrompt) validatePrompt(model TTSModel) error {
	if err := validatePreset(p.EmotionPreset, model); err != nil {
		return err
	}
	return validateIntensity(p.EmotionIntensity)
}

// PresetPrompt selects a named emotion with an intensity.
type PresetPrompt struct {
	// EmotionPreset is the emotion preset to apply
	EmotionPreset EmotionPreset
	// EmotionIntensity controls strength of emotion (0.0 to 2.0, default: 1.0)
	EmotionIntensity *float64
}

func (p *PresetPrompt) promptValue() *jsondoc.Value {
	obj := jsondoc.NewObject()
	obj.AddString("emotion_type", "preset")
	if p.EmotionPreset != "" {
		obj.AddString("emotion_preset", string(p.EmotionPreset))
	}
	if p.EmotionIntensity != nil {
		obj.AddNumber("emotion_intensity", *p.EmotionIntensity)
	}
	return obj
}

func (p *PresetPrompt) validatePrompt(model TTSModel) error {
	if err := validatePreset(p.EmotionPreset, model); err != nil {
		return err
	}
	return validateIntensity(p.EmotionIntensity)
}

// SmartPrompt lets the server infer emotion from surrounding text
// (ssfm-v30 feature).
type SmartPrompt struct {
	// PreviousText is the text before the main text, for context (max 2000 chars)
	PreviousText string
	// NextText is the text after the main text, for context (max 2000 chars)
	NextText string
}

func (p *SmartPrompt) promptValue() *jsondoc.Value {
	obj := jsondoc.NewObject()
	obj.AddString("emotion_type", "smart")
	if p.PreviousText != "" {
		obj.AddString("previous_text", p.PreviousText)
	}
	if p.NextText != "" {
		obj.AddString("next_text", p.NextText)
	}
	return obj
}

// Context limits are counted in characters, not bytes.
func (p *SmartPrompt) validatePrompt(model TTSModel) error {
	if utf8.RuneCountInString(p.PreviousText) > maxContextLength {
		return &InvalidParameterError{Field: "prompt.previous_text", Reason: "exceeds 2000 characters"}
	}
	if utf8.RuneCountInString(p.NextText) > maxContextLength {
		return &InvalidParameterError{Field: "prompt.next_text", Reason: "exceeds 2000 characters"}
	}
	return nil
}
