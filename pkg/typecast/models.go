package typecast

// TTSModel represents the TTS model version.
type TTSModel string

const (
	// ModelSSFMV30 is the latest model with improved prosody and additional emotion presets
	ModelSSFMV30 TTSModel = "ssfm-v30"
	// ModelSSFMV21 is the stable production model with proven reliability
	ModelSSFMV21 TTSModel = "ssfm-v21"
)

// EmotionPreset represents available emotion presets.
type EmotionPreset string

const (
	EmotionNormal   EmotionPreset = "normal"
	EmotionSad      EmotionPreset = "sad"
	EmotionHappy    EmotionPreset = "happy"
	EmotionAngry    EmotionPreset = "angry"
	EmotionWhisper  EmotionPreset = "whisper"  // ssfm-v30 only
	EmotionToneUp   EmotionPreset = "toneup"   // ssfm-v30 only
	EmotionToneDown EmotionPreset = "tonedown" // ssfm-v30 only
)

// AudioFormat represents the output audio format.
type AudioFormat string

const (
	AudioFormatWAV AudioFormat = "wav"
	AudioFormatMP3 AudioFormat = "mp3"
)

// GenderEnum represents gender classification.
type GenderEnum string

const (
	GenderMale   GenderEnum = "male"
	GenderFemale GenderEnum = "female"
)

// AgeEnum represents age group classification.
type AgeEnum string

const (
	AgeChild      AgeEnum = "child"
	AgeTeenager   AgeEnum = "teenager"
	AgeYoungAdult AgeEnum = "young_adult"
	AgeMiddleAge  AgeEnum = "middle_age"
	AgeElder      AgeEnum = "elder"
)

// UseCaseEnum represents voice use case categories.
type UseCaseEnum string

const (
	UseCaseAnnouncer      UseCaseEnum = "Announcer"
	UseCaseAnime          UseCaseEnum = "Anime"
	UseCaseAudiobook      UseCaseEnum = "Audiobook"
	UseCaseConversational UseCaseEnum = "Conversational"
	UseCaseDocumentary    UseCaseEnum = "Documentary"
	UseCaseELearning      UseCaseEnum = "E-learning"
	UseCaseRapper         UseCaseEnum = "Rapper"
	UseCaseGame           UseCaseEnum = "Game"
	UseCaseTikTokReels    UseCaseEnum = "Tiktok/Reels"
	UseCaseNews           UseCaseEnum = "News"
	UseCasePodcast        UseCaseEnum = "Podcast"
	UseCaseVoicemail      UseCaseEnum = "Voicemail"
	UseCaseAds            UseCaseEnum = "Ads"
)

// Output represents audio output settings. Nil pointer fields are omitted
// from the request and take server-side defaults.
type Output struct {
	// Volume controls the volume level (0-200, default: 100)
	Volume *int
	// AudioPitch adjusts pitch in semitones (-12 to +12, default: 0)
	AudioPitch *int
	// AudioTempo controls speech speed (0.5 to 2.0, default: 1.0)
	AudioTempo *float64
	// AudioFormat is the output format (wav or mp3, default: wav)
	AudioFormat AudioFormat
}

// TTSRequest represents a text-to-speech request.
type TTSRequest struct {
	// VoiceID is the voice identifier (required)
	VoiceID string
	// Text is the text to convert to speech (required)
	Text string
	// Model is the TTS model to use (required)
	Model TTSModel
	// Language is the ISO 639-3 language code (optional, auto-detected if not provided)
	Language string
	// Prompt contains emotion and style settings (optional)
	Prompt Prompt
	// Output contains audio output settings (optional)
	Output *Output
	// Seed is the random seed for reproducible results (optional)
	Seed *int
}

// TTSResponse represents the response from the text-to-speech API.
type TTSResponse struct {
	// AudioData contains the generated audio bytes
	AudioData []byte
	// Duration is the audio duration in seconds, 0 when the server did not report it
	Duration float64
	// Format is the audio format (wav or mp3)
	Format AudioFormat
}

// ModelInfo represents model information with supported emotions.
// The json tags let callers re-serialize voices they received; this package
// itself decodes responses through jsondoc.
type ModelInfo struct {
	// Version is the TTS model version
	Version TTSModel `json:"version"`
	// Emotions is the list of supported emotions for this model
	Emotions []string `json:"emotions"`
}

// VoiceV1 represents a voice from the V1 API (deprecated).
type VoiceV1 struct {
	VoiceID   string   `json:"voice_id"`
	VoiceName string   `json:"voice_name"`
	Model     TTSModel `json:"model"`
	Emotions  []string `json:"emotions"`
}

// VoiceV2 represents a voice from the V2 API with enhanced metadata.
// Optional fields are nil when the server omitted them.
type VoiceV2 struct {
	// VoiceID is the unique voice identifier
	VoiceID string `json:"voice_id"`
	// VoiceName is the human-readable name
	VoiceName string `json:"voice_name"`
	// Models is the list of supported TTS models with their emotions
	Models []ModelInfo `json:"models"`
	// Gender is the voice gender classification
	Gender *GenderEnum `json:"gender,omitempty"`
	// Age is the voice age group classification
	Age *AgeEnum `json:"age,omitempty"`
	// UseCases is the list of use case categories
	UseCases []string `json:"use_cases,omitempty"`
}

// VoicesV2Filter represents filter options for the V2 voices endpoint.
// Zero-value fields are not sent.
type VoicesV2Filter struct {
	Model    TTSModel
	Gender   GenderEnum
	Age      AgeEnum
	UseCases UseCaseEnum
}
