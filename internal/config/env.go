// internal/config/env.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvSettings  = "CHAOS_SETTINGS"
	EnvSeed      = "CHAOS_SEED"
	EnvRuleset   = "CHAOS_RULESET"
	EnvLogEvents = "CHAOS_LOG_EVENTS"
)

// LoadEnv подгружает переменные из .env файлов, если они есть.
// Уже заданные переменные окружения не перезаписываются.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file: %w", err)
	}
	log.Println("[Config] Loaded environment from .env")
	return nil
}

// SettingsPath возвращает путь к файлу настроек из окружения.
func SettingsPath() string {
	return os.Getenv(EnvSettings)
}

// ApplyEnv применяет переопределения из окружения и заново валидирует настройки.
func ApplyEnv(s *Settings) error {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		s.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvRuleset); ok {
		s.Ruleset = v
	}
	if v, ok := os.LookupEnv(EnvLogEvents); ok {
		logEvents, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogEvents, err)
		}
		s.LogEvents = logEvents
	}
	return s.Validate()
}
