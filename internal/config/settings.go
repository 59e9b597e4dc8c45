// internal/config/settings.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings — параметры запуска, которые можно менять без пересборки.
// Геймплейные константы лежат в config.go.
type Settings struct {
	Window    WindowSettings `yaml:"window"`
	Seed      int64          `yaml:"seed"`      // 0 — сид от текущего времени
	Ruleset   string         `yaml:"ruleset"`   // arcade | classic
	LogEvents bool           `yaml:"logEvents"` // писать игровые события в лог
	Keys      KeyBindings    `yaml:"keys"`
}

// WindowSettings описывает окно.
type WindowSettings struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

// KeyBindings хранит имена клавиш для каждого сигнала ввода.
type KeyBindings struct {
	Up     string `yaml:"up"`
	Down   string `yaml:"down"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Fire   string `yaml:"fire"`
	Start  string `yaml:"start"`
	Replay string `yaml:"replay"`
	Quit   string `yaml:"quit"`
}

// KeyNames — имена клавиш, которые понимает слой ввода.
var KeyNames = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "F": true, "G": true,
	"H": true, "I": true, "J": true, "K": true, "L": true, "M": true, "N": true,
	"O": true, "P": true, "Q": true, "R": true, "S": true, "T": true, "U": true,
	"V": true, "W": true, "X": true, "Y": true, "Z": true,
	"Space": true, "Enter": true, "Escape": true, "Tab": true, "Backspace": true,
	"ArrowUp": true, "ArrowDown": true, "ArrowLeft": true, "ArrowRight": true,
}

// DefaultSettings возвращает настройки по умолчанию (WASD, Space, Enter, R, Q).
func DefaultSettings() *Settings {
	return &Settings{
		Window: WindowSettings{
			Title: WindowTitle,
			Scale: 1,
		},
		Ruleset: RulesetArcade,
		Keys: KeyBindings{
			Up:     "W",
			Down:   "S",
			Left:   "A",
			Right:  "D",
			Fire:   "Space",
			Start:  "Enter",
			Replay: "R",
			Quit:   "Q",
		},
	}
}

// LoadSettings читает YAML поверх настроек по умолчанию.
// Пустой путь означает настройки по умолчанию.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// Validate проверяет значения настроек.
func (s *Settings) Validate() error {
	if s.Window.Title == "" {
		return fmt.Errorf("window.title cannot be empty")
	}
	if s.Window.Scale <= 0 || s.Window.Scale > 4 {
		return fmt.Errorf("window.scale must be in (0, 4], got %v", s.Window.Scale)
	}

	switch s.Ruleset {
	case RulesetArcade, RulesetClassic:
	default:
		return fmt.Errorf("unknown ruleset %q", s.Ruleset)
	}

	bindings := []struct {
		name string
		key  string
	}{
		{"up", s.Keys.Up},
		{"down", s.Keys.Down},
		{"left", s.Keys.Left},
		{"right", s.Keys.Right},
		{"fire", s.Keys.Fire},
		{"start", s.Keys.Start},
		{"replay", s.Keys.Replay},
		{"quit", s.Keys.Quit},
	}
	used := make(map[string]string, len(bindings))
	for _, b := range bindings {
		if !KeyNames[b.key] {
			return fmt.Errorf("keys.%s: unknown key %q", b.name, b.key)
		}
		if other, ok := used[b.key]; ok {
			return fmt.Errorf("keys.%s: key %q already bound to %s", b.name, b.key, other)
		}
		used[b.key] = b.name
	}

	return nil
}
