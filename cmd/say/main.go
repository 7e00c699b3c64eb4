package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/typecast-ai/typecast-go/pkg/logger"
	"github.com/typecast-ai/typecast-go/pkg/player"
	"github.com/typecast-ai/typecast-go/pkg/typecast"
)

func main() {
	logger.Setup()

	var (
		text       string
		voiceID    string
		model      string
		language   string
		format     string
		outputFile string
		play       bool
	)
	flag.StringVar(&text, "text", "", "Text to synthesize")
	flag.StringVar(&voiceID, "voice", "", "Voice ID")
	flag.StringVar(&model, "model", string(typecast.ModelSSFMV30), "TTS model (ssfm-v21 or ssfm-v30)")
	flag.StringVar(&language, "language", "", "ISO 639-3 language code (optional)")
	flag.StringVar(&format, "format", string(typecast.AudioFormatWAV), "Audio format (wav or mp3)")
	flag.StringVar(&outputFile, "output", "output.wav", "Output file path")
	flag.BoolVar(&play, "play", false, "Play the audio instead of writing a file")
	flag.Parse()

	if text == "" {
		logger.Fatal("Text to synthesize cannot be empty")
	}
	if voiceID == "" {
		logger.Fatal("Voice ID is required (-voice)")
	}

	client, err := typecast.NewClient(nil)
	if err != nil {
		logger.Fatal("Failed to create client", "error", err)
	}
	defer client.Close()

	resp, err := client.TextToSpeech(context.Background(), &typecast.TTSRequest{
		Text:     text,
		VoiceID:  voiceID,
		Model:    typecast.TTSModel(model),
		Language: language,
		Output:   &typecast.Output{AudioFormat: typecast.AudioFormat(format)},
	})
	if err != nil {
		logger.Fatal("Failed to synthesize text", "error", err)
	}

	slog.Info("Synthesized text", "bytes", len(resp.AudioData), "duration", resp.Duration, "format", resp.Format)

	if play {
		p, err := player.New()
		if err != nil {
			logger.Fatal("Failed to open audio device", "error", err)
		}
		if err := p.Play(resp.AudioData, resp.Format); err != nil {
			logger.Fatal("Failed to play audio", "error", err)
		}
		return
	}

	if err := os.WriteFile(outputFile, resp.AudioData, 0644); err != nil {
		logger.Fatal("Failed to write audio to file", "error", err)
	}
	slog.Info("Audio saved", "file", outputFile)
}
