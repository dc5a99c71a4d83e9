package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Mode selects the output channel.
type Mode string

const (
	ModeVoice Mode = "voice"
	ModeSound Mode = "sound"
	ModeBoth  Mode = "both"
)

const (
	defaultVoice     = "Kyoko"
	defaultSoundType = "beeps"
)

// Config is captured once from the environment at process start and passed
// to every operation. Nothing reads env vars after loadConfig returns.
type Config struct {
	Mode      Mode
	Voice     string
	SoundType string
	Debug     bool
	TestMode  bool
	Paused    bool
	HookDir   string
}

// hookDir resolves the koe data directory.
func hookDir() string {
	if dir := os.Getenv("CLAUDE_HOOK_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".claude", "hooks", "koe")
}

// loadConfig reads configuration from an optional .env file in the hook
// dir and the process environment. Invalid values fall back to defaults
// rather than failing.
func loadConfig(dir string) Config {
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg := Config{
		Mode:      ModeVoice,
		Voice:     defaultVoice,
		SoundType: defaultSoundType,
		HookDir:   dir,
	}

	switch Mode(os.Getenv("CLAUDE_HOOK_MODE")) {
	case ModeSound:
		cfg.Mode = ModeSound
	case ModeBoth:
		cfg.Mode = ModeBoth
	}
	if v := os.Getenv("CLAUDE_HOOK_VOICE"); v != "" {
		cfg.Voice = v
	}
	if v := os.Getenv("CLAUDE_HOOK_SOUND_TYPE"); v != "" {
		cfg.SoundType = v
	}
	cfg.Debug = boolEnv("CLAUDE_HOOK_DEBUG")
	cfg.TestMode = boolEnv("CLAUDE_HOOK_TEST")
	cfg.Paused = fileExists(filepath.Join(dir, ".paused"))
	return cfg
}

func boolEnv(key string) bool {
	return strings.EqualFold(os.Getenv(key), "true")
}

// fileExists returns true if the path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
