package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo

	TRACE_ID_KEY   = "traceId"
	SESSION_ID_KEY = "sessionId"

	SessionCookieName = "grading_session"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 10 * time.Second
	WriteTimeout           = 120 * time.Second //generation is a blocking remote call, the write deadline must outlive it
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//uploads
	MaxUploadSize = 32 << 20 //32mb across all file parts

	//feedback generation
	ModelTemperature    float64 = 0.7
	MaxCompletionTokens int64   = 2048
	GenerationTimeout           = 90 * time.Second

	//extraction
	PageExtractTimeout = 10 * time.Second

	//report
	ReportTimestampLayout = "2006-01-02 15:04:05"

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisPassword = ""

	RedisSessionStore = 0

	RedisSessionStoreTTL = 12 * time.Hour

	//in-memory fallback janitor
	SessionMaxAge        = 12 * time.Hour
	SessionSweepInterval = 10 * time.Minute
)

// Model choices offered per provider. The first entry is the default when the
// request leaves the model field empty.
var (
	OpenAIModels = []string{
		"gpt-4",
		"gpt-4-turbo-preview",
		"gpt-3.5-turbo",
		"gpt-4o",
	}
	AnthropicModels = []string{
		"claude-3-5-sonnet-20241022",
		"claude-3-5-haiku-20241022",
		"claude-3-opus-20240229",
	}
)
