package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Model   ModelConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// ModelConfig locates the classifier artifact and the ONNX Runtime library.
type ModelConfig struct {
	Path        string
	LibraryPath string
	InputName   string
	OutputName  string
}

type StorageConfig struct {
	UploadDir     string
	MaxUploadSize int64
}

type LogConfig struct {
	Level string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment and defaults")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", "15s"),
		},
		Model: ModelConfig{
			Path:        getEnv("MODEL_PATH", "models/skin_tone_model.onnx"),
			LibraryPath: getEnv("ORT_LIBRARY_PATH", ""),
			InputName:   getEnv("MODEL_INPUT_NAME", "input"),
			OutputName:  getEnv("MODEL_OUTPUT_NAME", "output"),
		},
		Storage: StorageConfig{
			UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
			MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 10<<20),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
