package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/typecast-ai/typecast-go/pkg/logger"
	"github.com/typecast-ai/typecast-go/pkg/typecast"
)

func main() {
	logger.Setup()

	var (
		model   string
		gender  string
		age     string
		useCase string
		voiceID string
	)
	flag.StringVar(&model, "model", "", "Filter by TTS model (ssfm-v21 or ssfm-v30)")
	flag.StringVar(&gender, "gender", "", "Filter by gender (male or female)")
	flag.StringVar(&age, "age", "", "Filter by age group")
	flag.StringVar(&useCase, "use-case", "", "Filter by use case")
	flag.StringVar(&voiceID, "id", "", "Show one voice by ID instead of listing")
	flag.Parse()

	client, err := typecast.NewClient(nil)
	if err != nil {
		logger.Fatal("Failed to create client", "error", err)
	}
	defer client.Close()

	ctx := context.Background()

	if voiceID != "" {
		voice, err := client.GetVoiceV2(ctx, voiceID)
		if err != nil {
			logger.Fatal("Failed to get voice", "error", err)
		}
		printVoice(voice)
		return
	}

	filter := &typecast.VoicesV2Filter{
		Model:    typecast.TTSModel(model),
		Gender:   typecast.GenderEnum(gender),
		Age:      typecast.AgeEnum(age),
		UseCases: typecast.UseCaseEnum(useCase),
	}
	voices, err := client.GetVoicesV2(ctx, filter)
	if err != nil {
		logger.Fatal("Failed to list voices", "error", err)
	}

	for i := range voices {
		printVoice(&voices[i])
	}
	fmt.Printf("%d voices\n", len(voices))
}

func printVoice(v *typecast.VoiceV2) {
	models := make([]string, 0, len(v.Models))
	for _, m := range v.Models {
		models = append(models, fmt.Sprintf("%s(%s)", m.Version, strings.Join(m.Emotions, ",")))
	}
	line := fmt.Sprintf("%s\t%s\t%s", v.VoiceID, v.VoiceName, strings.Join(models, " "))
	if v.Gender != nil {
		line += "\t" + string(*v.Gender)
	}
	if v.Age != nil {
		line += "\t" + string(*v.Age)
	}
	fmt.Println(line)
}
