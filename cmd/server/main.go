package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/typecast-ai/typecast-go/pkg/logger"
	"github.com/typecast-ai/typecast-go/pkg/typecast"
)

// voiceCache holds the voice catalog so /api/voices does not hit the
// upstream API on every request. Refreshed on a schedule.
type voiceCache struct {
	mu        sync.RWMutex
	voices    []typecast.VoiceV2
	refreshed time.Time
}

func (c *voiceCache) get() ([]typecast.VoiceV2, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.voices, c.refreshed
}

func (c *voiceCache) refresh(client *typecast.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	voices, err := client.GetVoicesV2(ctx, nil)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.voices = voices
	c.refreshed = time.Now()
	c.mu.Unlock()
	slog.Info("Refreshed voice catalog", "voices", len(voices))
	return nil
}

type speakRequest struct {
	Text     string `json:"text" binding:"required"`
	VoiceID  string `json:"voice_id" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Language string `json:"language"`
	Format   string `json:"format"`
}

// keyRequired gates every API route behind a shared key from the
// environment, checked against the X-Proxy-Key header.
func keyRequired(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Proxy-Key") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid proxy key"})
			return
		}
		c.Next()
	}
}

// writeUpstreamError forwards API failures with their original status and
// hides everything else behind a 502.
func writeUpstreamError(c *gin.Context, err error) {
	var apiErr *typecast.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"detail": apiErr.Error()})
		return
	}
	var invalid *typecast.InvalidParameterError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": invalid.Error()})
		return
	}
	slog.Error("Upstream request failed", "error", err)
	c.JSON(http.StatusBadGateway, gin.H{"detail": "upstream request failed"})
}

func main() {
	logger.Setup()
	gin.SetMode(gin.ReleaseMode)

	proxyKey := os.Getenv("PROXY_API_KEY")
	if proxyKey == "" {
		logger.Fatal("PROXY_API_KEY environment variable must be set")
	}

	client, err := typecast.NewClient(nil)
	if err != nil {
		logger.Fatal("Failed to create Typecast client", "error", err)
	}
	defer client.Close()

	cache := &voiceCache{}
	if err := cache.refresh(client); err != nil {
		slog.Error("Initial voice catalog load failed", "error", err)
	}

	cronLogger := &logger.CronLogger{Logger: slog.Default()}
	scheduler := cron.New(
		cron.WithChain(cron.SkipIfStillRunning(cronLogger)),
	)
	if _, err := scheduler.AddFunc("@every 15m", func() {
		if err := cache.refresh(client); err != nil {
			slog.Error("Voice catalog refresh failed", "error", err)
		}
	}); err != nil {
		logger.Fatal("Failed to schedule catalog refresh", "error", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1"})

	api := router.Group("/api", keyRequired(proxyKey))

	api.GET("/voices", func(c *gin.Context) {
		voices, refreshed := cache.get()
		c.Header("X-Catalog-Refreshed", refreshed.UTC().Format(time.RFC3339))
		c.JSON(http.StatusOK, voices)
	})

	api.POST("/speak", func(c *gin.Context) {
		var req speakRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		ttsReq := &typecast.TTSRequest{
			Text:     req.Text,
			VoiceID:  req.VoiceID,
			Model:    typecast.TTSModel(req.Model),
			Language: req.Language,
		}
		if req.Format != "" {
			ttsReq.Output = &typecast.Output{AudioFormat: typecast.AudioFormat(req.Format)}
		}

		resp, err := client.TextToSpeech(c.Request.Context(), ttsReq)
		if err != nil {
			writeUpstreamError(c, err)
			return
		}

		contentType := "audio/wav"
		if resp.Format == typecast.AudioFormatMP3 {
			contentType = "audio/mpeg"
		}
		c.Header("X-Audio-Duration", formatDuration(resp.Duration))
		c.Data(http.StatusOK, contentType, resp.AudioData)
	})

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	slog.Info("Server is running", "addr", addr)
	if err := router.Run(addr); err != nil {
		logger.Fatal("Server stopped", "error", err)
	}
}

func formatDuration(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
