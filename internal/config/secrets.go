package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	envElevenLabsKey = "ELEVENLABS_API_KEY"
	envGeminiKey     = "GEMINI_API_KEY"
)

// Secrets holds the two API credentials. They are passed explicitly to the
// components that need them instead of being read from the environment at call
// sites, so tests can substitute fakes without touching the process env.
type Secrets struct {
	ElevenLabsKey string
	GeminiKey     string
}

// MissingKeyError reports a required credential absent from the environment.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("required credential %s is not set (check your .env file)", e.Key)
}

// LoadSecrets reads both API keys from the process environment, loading .env
// first when present. It fails before any file or network activity happens.
func LoadSecrets() (*Secrets, error) {
	// Ignore a missing .env; the keys may already be exported.
	_ = godotenv.Load()

	s := &Secrets{
		ElevenLabsKey: os.Getenv(envElevenLabsKey),
		GeminiKey:     os.Getenv(envGeminiKey),
	}

	if s.ElevenLabsKey == "" {
		return nil, &MissingKeyError{Key: envElevenLabsKey}
	}
	if s.GeminiKey == "" {
		return nil, &MissingKeyError{Key: envGeminiKey}
	}

	return s, nil
}
