package typecast

import (
	"fmt"

	"github.com/typecast-ai/typecast-go/pkg/jsondoc"
)

func decodeVoiceV2List(body []byte) ([]VoiceV2, error) {
	doc, err := jsondoc.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode voices response: %w", err)
	}
	if doc.Kind != jsondoc.Array {
		return nil, fmt.Errorf("failed to decode voices response: expected array, got %s", doc.Kind)
	}
	voices := make([]VoiceV2, 0, doc.Len())
	for i, elem := range doc.Children {
		v, err := decodeVoiceV2(elem)
		if err != nil {
			return nil, fmt.Errorf("failed to decode voice %d: %w", i, err)
		}
		voices = append(voices, v)
	}
	return voices, nil
}

// decodeVoiceV2 reads one voice object. Optional fields that the server
// omitted stay nil; they are not defaulted to empty strings.
func decodeVoiceV2(doc *jsondoc.Value) (VoiceV2, error) {
	var voice VoiceV2
	if doc.Kind != jsondoc.Object {
		return voice, fmt.Errorf("expected object, got %s", doc.Kind)
	}
	voice.VoiceID, _ = doc.Get("voice_id").StringValue()
	voice.VoiceName, _ = doc.Get("voice_name").StringValue()

	if models := doc.Get("models"); models != nil && models.Kind == jsondoc.Array {
		for _, m := range models.Children {
			info := ModelInfo{}
			if version, ok := m.Get("version").StringValue(); ok {
				info.Version = TTSModel(version)
			}
			if emotions := m.Get("emotions"); emotions != nil {
				info.Emotions = stringSlice(emotions)
			}
			voice.Models = append(voice.Models, info)
		}
	}
	if s, ok := doc.Get("gender").StringValue(); ok {
		gender := GenderEnum(s)
		voice.Gender = &gender
	}
	if s, ok := doc.Get("age").StringValue(); ok {
		age := AgeEnum(s)
		voice.Age = &age
	}
	if useCases := doc.Get("use_cases"); useCases != nil {
		voice.UseCases = stringSlice(useCases)
	}
	return voice, nil
}

func decodeVoiceV1List(body []byte) ([]VoiceV1, error) {
	doc, err := jsondoc.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode voices response: %w", err)
	}
	if doc.Kind != jsondoc.Array {
		return nil, fmt.Errorf("failed to decode voices response: expected array, got %s", doc.Kind)
	}
	voices := make([]VoiceV1, 0, doc.Len())
	for _, elem := range doc.Children {
		var voice VoiceV1
		voice.VoiceID, _ = elem.Get("voice_id").StringValue()
		voice.VoiceName, _ = elem.Get("voice_name").StringValue()
		if model, ok := elem.Get("model").StringValue(); ok {
			voice.Model = TTSModel(model)
		}
		if emotions := elem.Get("emotions"); emotions != nil {
			voice.Emotions = stringSlice(emotions)
		}
		voices = append(voices, voice)
	}
	return voices, nil
}

func stringSlice(arr *jsondoc.Value) []string {
	if arr.Kind != jsondoc.Array {
		return nil
	}
	out := make([]string, 0, arr.Len())
	for _, c := range arr.Children {
		if s, ok := c.StringValue(); ok {
			out = append(out, s)
		}
	}
	return out
}
