package main

import (
	"os"
	"strconv"
	"time"
)

type config struct {
	Port           string
	CORSOrigin     string
	FFmpegPath     string
	ConvertTimeout time.Duration
	MaxUploadMB    int64
}

func loadConfig() config {
	return config{
		Port:           getEnv("PORT", "3001"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "*"),
		FFmpegPath:     getEnv("FFMPEG_PATH", ""),
		ConvertTimeout: getDuration("CONVERT_TIMEOUT", 2*time.Minute),
		MaxUploadMB:    getInt64("MAX_UPLOAD_MB", 100),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
