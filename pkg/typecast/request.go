package typecast

import "github.com/typecast-ai/typecast-go/pkg/jsondoc"

// buildRequestBody maps a request onto the wire schema. Optional fields are
// only emitted when the caller supplied them; the server applies defaults
// for the rest. Pure, no I/O.
func buildRequestBody(r *TTSRequest) *jsondoc.Value {
	root := jsondoc.NewObject()
	root.AddString("text", r.Text)
	root.AddString("voice_id", r.VoiceID)
	root.AddString("model", string(r.Model))

	if r.Language != "" {
		root.AddString("language", r.Language)
	}
	if r.Prompt != nil {
		root.Add("prompt", r.Prompt.promptValue())
	}
	if r.Output != nil {
		out := jsondoc.NewObject()
		if r.Output.Volume != nil {
			out.AddNumber("volume", float64(*r.Output.Volume))
		}
		if r.Output.AudioPitch != nil {
			out.AddNumber("audio_pitch", float64(*r.Output.AudioPitch))
		}
		if r.Output.AudioTempo != nil {
			out.AddNumber("audio_tempo", *r.Output.AudioTempo)
		}
		if r.Output.AudioFormat != "" {
			out.AddString("audio_format", string(r.Output.AudioFormat))
		}
		root.Add("output", out)
	}
	if r.Seed != nil {
		root.AddNumber("seed", float64(*r.Seed))
	}
	return root
}
