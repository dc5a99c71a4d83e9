package main

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Speaker synthesizes speech through a system TTS command.
type Speaker interface {
	Name() string
	Available() bool
	Speak(text, voice string) error
}

// SoundPlayer plays a sound-effect file.
type SoundPlayer interface {
	Name() string
	Available() bool
	Play(path string) error
}

// Backends bundles the outputs for one invocation.
type Backends struct {
	Speaker Speaker
	Player  SoundPlayer
	Log     *EventLog
	Debug   *zap.Logger
}

// speakWithFallback runs one synthesis attempt with the configured voice
// and retries once with the fallback voice when the backend rejects it, so
// a typo in CLAUDE_HOOK_VOICE never silences the hook. No retry happens
// when the configured voice already is the fallback.
func speakWithFallback(run func(voice, text string) error, fallback, voice, text string) error {
	if err := run(voice, text); err != nil {
		if voice == fallback {
			return err
		}
		return run(fallback, text)
	}
	return nil
}

// soundExtensions are tried in order when looking up a sound effect.
var soundExtensions = []string{".wav", ".mp3", ".ogg", ".m4a", ".flac"}

// findSound locates the sound effect for a key, or "" if none exists.
// Keys containing path separators are rejected.
func findSound(dir, soundType, key string) string {
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return ""
	}
	for _, ext := range soundExtensions {
		path := filepath.Join(dir, "sounds", soundType, key+ext)
		if fileExists(path) {
			return path
		}
	}
	return ""
}
