package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DataPath   string // SQLite state database
	UploadsDir string // saved resume files

	// Assistant configuration
	GeminiAPIKey string // empty degrades the assistant to a fixed fallback
	GeminiModel  string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Could not load .env file, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "./zenithhr.db"
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}

	// API_KEY is accepted for parity with the original deployment.
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &Config{
		Port:         port,
		DataPath:     dataPath,
		UploadsDir:   uploadsDir,
		GeminiAPIKey: apiKey,
		GeminiModel:  model,
	}
}
