//go:build darwin

package main

import (
	"fmt"
	"os/exec"
)

// sayBackend drives the macOS say command.
type sayBackend struct{}

func (sayBackend) Name() string { return "say" }

func (sayBackend) Available() bool {
	_, err := exec.LookPath("say")
	return err == nil
}

// Speak runs say with the configured voice. An unknown voice makes say exit
// non-zero; the default voice is retried.
func (sayBackend) Speak(text, voice string) error {
	return speakWithFallback(runSay, defaultVoice, voice, text)
}

func runSay(voice, text string) error {
	out, err := exec.Command("say", "-v", voice, text).CombinedOutput()
	if err != nil {
		return fmt.Errorf("say failed: %w: %s", err, out)
	}
	return nil
}

// afplayBackend plays sound files via afplay. Fire-and-forget: the child
// keeps playing after the hook exits.
type afplayBackend struct{}

func (afplayBackend) Name() string { return "afplay" }

func (afplayBackend) Available() bool {
	_, err := exec.LookPath("afplay")
	return err == nil
}

func (afplayBackend) Play(path string) error {
	return exec.Command("afplay", path).Start()
}

func systemSpeaker() Speaker { return sayBackend{} }

func systemPlayer() SoundPlayer { return afplayBackend{} }
