package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Error taxonomy. Every failure path exits cleanly; backend errors are
// logged and swallowed so the hook never disturbs the calling editor.
var (
	errBadInput     = errors.New("malformed event descriptor")
	errPrecondition = errors.New("settings file missing")
	errProfileWrite = errors.New("profile file not writable")
	errNoBackend    = errors.New("no audio backend available")
)

// Outcome reports what an announcement did, or in test mode what it would
// have done.
type Outcome struct {
	Key     string
	Message string
	Spoke   bool
	Sound   string // path of the played sound effect, "" if none
}

// announce resolves an event against the rule tables and emits the result
// through the configured output channels. Resolution itself is pure; only
// the emission depends on mode, pause state and test mode. The log record
// is written regardless of mode.
func announce(e Event, cfg Config, b Backends) Outcome {
	if b.Debug == nil {
		b.Debug = zap.NewNop()
	}

	rule := resolve(e, loadOverlay(cfg.HookDir))
	out := Outcome{Key: rule.Key, Message: rule.Message}
	b.Debug.Debug("resolved event",
		zap.String("event", e.Name),
		zap.String("tool", e.Tool),
		zap.String("key", rule.Key))

	if b.Log != nil {
		b.Log.Record(e, rule.Message)
	}

	wantVoice := cfg.Mode == ModeVoice || cfg.Mode == ModeBoth
	wantSound := cfg.Mode == ModeSound || cfg.Mode == ModeBoth

	soundPath := ""
	if wantSound {
		soundPath = findSound(cfg.HookDir, cfg.SoundType, rule.Sound)
	}

	if cfg.TestMode {
		out.Spoke = wantVoice
		out.Sound = soundPath
		b.Debug.Info("test mode: audio suppressed", zap.String("message", rule.Message))
		return out
	}
	if cfg.Paused {
		b.Debug.Info("paused: audio suppressed")
		return out
	}

	if wantVoice {
		if b.Speaker != nil && b.Speaker.Available() {
			if err := b.Speaker.Speak(rule.Message, cfg.Voice); err != nil {
				b.Debug.Warn("speech failed", zap.Error(err))
			} else {
				out.Spoke = true
			}
		} else {
			b.Debug.Warn("speech skipped", zap.Error(errNoBackend))
		}
	}

	if wantSound {
		switch {
		case soundPath == "":
			ringBell()
		case b.Player != nil && b.Player.Available():
			if err := b.Player.Play(soundPath); err != nil {
				b.Debug.Warn("sound playback failed", zap.Error(err))
				ringBell()
			} else {
				out.Sound = soundPath
			}
		default:
			b.Debug.Warn("sound skipped", zap.Error(errNoBackend))
			ringBell()
		}
	}

	return out
}

// ringBell writes the terminal bell as the last-resort audio cue.
func ringBell() {
	fmt.Fprint(os.Stderr, "\a")
}
