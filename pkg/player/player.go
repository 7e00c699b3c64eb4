// Package player plays synthesized audio through the default output device.
package player

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
	"github.com/youpy/go-wav"

	"github.com/typecast-ai/typecast-go/pkg/typecast"
)

const (
	playbackRate     = 44100
	playbackChannels = 2
)

// Player owns one audio output context. oto allows a single context per
// process, so create one Player and reuse it.
type Player struct {
	otoCtx *oto.Context
}

// New opens the audio device. Fails on headless machines without an output
// device.
func New() (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   playbackRate,
		ChannelCount: playbackChannels,
		Format:       oto.FormatSignedInt16LE,
	}
	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio context: %w", err)
	}
	<-ready
	return &Player{otoCtx: otoCtx}, nil
}

// Play decodes the audio bytes and blocks until playback finishes.
func (p *Player) Play(data []byte, format typecast.AudioFormat) error {
	pcm, sampleRate, channels, err := decodePCM(data, format)
	if err != nil {
		return err
	}
	if sampleRate != playbackRate || channels != playbackChannels {
		pcm = convertPCM(pcm, sampleRate, channels, playbackRate, playbackChannels)
	}

	player := p.otoCtx.NewPlayer(bytes.NewReader(pcm))
	defer player.Close()
	player.Play()
	for player.IsPlaying() {
		time.Sleep(100 * time.Millisecond)
	}
	return nil
}

// decodePCM turns wav or mp3 bytes into interleaved 16-bit little-endian PCM.
func decodePCM(data []byte, format typecast.AudioFormat) (pcm []byte, sampleRate, channels int, err error) {
	switch format {
	case typecast.AudioFormatWAV:
		reader := wav.NewReader(bytes.NewReader(data))
		wavFormat, err := reader.Format()
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to read wav header: %w", err)
		}
		// Re-open: Format consumed part of the stream.
		reader = wav.NewReader(bytes.NewReader(data))
		pcm, err := io.ReadAll(reader)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode wav data: %w", err)
		}
		return pcm, int(wavFormat.SampleRate), int(wavFormat.NumChannels), nil

	case typecast.AudioFormatMP3:
		decoder, err := mp3.NewDecoder(bytes.NewReader(data))
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to create mp3 decoder: %w", err)
		}
		pcm, err := io.ReadAll(decoder)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode mp3 data: %w", err)
		}
		// go-mp3 always outputs two channels.
		return pcm, decoder.SampleRate(), 2, nil

	default:
		return nil, 0, 0, fmt.Errorf("unsupported audio format %q", format)
	}
}

// convertPCM adjusts channel count and sample rate. Mono input is duplicated
// onto both channels; rate conversion uses linear interpolation per frame.
func convertPCM(pcmData []byte, fromRate, fromChannels, toRate, toChannels int) []byte {
	sampleCount := len(pcmData) / 2
	samples := make([]int16, sampleCount)
	for i := 0; i < sampleCount; i++ {
		samples[i] = int16(binary.LittleEndian.Uint16(pcmData[i*2 : i*2+2]))
	}

	if fromChannels == 1 && toChannels == 2 {
		stereo := make([]int16, sampleCount*2)
		for i, s := range samples {
			stereo[i*2] = s
			stereo[i*2+1] = s
		}
		samples = stereo
		fromChannels = 2
	}

	if fromRate != toRate && fromChannels > 0 {
		frames := len(samples) / fromChannels
		ratio := float64(toRate) / float64(fromRate)
		newFrames := int(float64(frames) * ratio)
		resampled := make([]int16, newFrames*fromChannels)
		for f := 0; f < newFrames; f++ {
			srcPos := float64(f) / ratio
			srcIdx := int(srcPos)
			frac := srcPos - float64(srcIdx)
			for ch := 0; ch < fromChannels; ch++ {
				if srcIdx >= frames-1 {
					resampled[f*fromChannels+ch] = samples[(frames-1)*fromChannels+ch]
					continue
				}
				s1 := float64(samples[srcIdx*fromChannels+ch])
				s2 := float64(samples[(srcIdx+1)*fromChannels+ch])
				resampled[f*fromChannels+ch] = int16(s1 + (s2-s1)*frac)
			}
		}
		samples = resampled
	}

	result := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(result[i*2:i*2+2], uint16(sample))
	}
	return result
}
