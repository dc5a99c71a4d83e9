//go:build linux

package main

import (
	"fmt"
	"os/exec"
)

// espeakVoiceFallback is the voice espeak falls back to when the configured
// voice name is not one it knows (e.g. a macOS voice like "Kyoko").
const espeakVoiceFallback = "ja"

// espeakBackend drives the espeak command.
type espeakBackend struct{}

func (espeakBackend) Name() string { return "espeak" }

func (espeakBackend) Available() bool {
	_, err := exec.LookPath("espeak")
	return err == nil
}

func (espeakBackend) Speak(text, voice string) error {
	return speakWithFallback(runEspeak, espeakVoiceFallback, voice, text)
}

func runEspeak(voice, text string) error {
	out, err := exec.Command("espeak", "-v", voice, text).CombinedOutput()
	if err != nil {
		return fmt.Errorf("espeak failed: %w: %s", err, out)
	}
	return nil
}

// linuxPlayer plays sound files via paplay, falling back to aplay.
// Fire-and-forget: the child keeps playing after the hook exits.
type linuxPlayer struct{}

func (linuxPlayer) Name() string { return "paplay" }

func (linuxPlayer) Available() bool {
	for _, bin := range []string{"paplay", "aplay"} {
		if _, err := exec.LookPath(bin); err == nil {
			return true
		}
	}
	return false
}

func (linuxPlayer) Play(path string) error {
	for _, bin := range []string{"paplay", "aplay"} {
		if _, err := exec.LookPath(bin); err != nil {
			continue
		}
		return exec.Command(bin, path).Start()
	}
	return errNoBackend
}

func systemSpeaker() Speaker { return espeakBackend{} }

func systemPlayer() SoundPlayer { return linuxPlayer{} }
