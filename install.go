package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	modeVar  = "CLAUDE_HOOK_MODE"
	voiceVar = "CLAUDE_HOOK_VOICE"
)

// Installer wires the announcement env vars into the user's shell profile.
// Filesystem and environment access go through the struct fields so tests
// can point it at a scratch home.
type Installer struct {
	Home     string // directory containing the shell profiles
	Shell    string // value of $SHELL
	Settings string // path of the Claude settings file (precondition)
	Mode     Mode
	Voice    string
}

// InstallResult reports which profile was touched and whether anything
// changed.
type InstallResult struct {
	Profile string
	Added   bool // false when the profile was already configured
}

func defaultInstaller(cfg Config) Installer {
	home, _ := os.UserHomeDir()
	return Installer{
		Home:     home,
		Shell:    os.Getenv("SHELL"),
		Settings: filepath.Join(home, ".claude", "settings.json"),
		Mode:     cfg.Mode,
		Voice:    cfg.Voice,
	}
}

// profilePath maps the detected shell to its profile file. zsh and bash are
// the two supported shells.
func (ins Installer) profilePath() (string, error) {
	switch filepath.Base(ins.Shell) {
	case "zsh":
		return filepath.Join(ins.Home, ".zshrc"), nil
	case "bash":
		return filepath.Join(ins.Home, ".bashrc"), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (zsh and bash are supported)", ins.Shell)
	}
}

// exportBlock is appended to the profile in a single write.
func (ins Installer) exportBlock() string {
	return fmt.Sprintf("\n# koe voice announcements\nexport %s=%s\nexport %s=%s\n",
		modeVar, ins.Mode, voiceVar, ins.Voice)
}

// Install checks the precondition, appends the export block to the profile
// unless it is already there, and activates the variables for the current
// process. Running it twice never duplicates the exports.
func (ins Installer) Install() (InstallResult, error) {
	if !fileExists(ins.Settings) {
		return InstallResult{}, fmt.Errorf("%w: %s (register the hook in Claude Code first)", errPrecondition, ins.Settings)
	}

	profile, err := ins.profilePath()
	if err != nil {
		return InstallResult{}, err
	}

	existing, err := os.ReadFile(profile)
	if err != nil && !os.IsNotExist(err) {
		return InstallResult{}, fmt.Errorf("%w: %v", errProfileWrite, err)
	}

	res := InstallResult{Profile: profile}
	if strings.Contains(string(existing), modeVar) {
		ins.activate()
		return res, nil
	}

	f, err := os.OpenFile(profile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return InstallResult{}, fmt.Errorf("%w: %v", errProfileWrite, err)
	}
	// One write for the whole block: a failed append leaves no partial edit.
	if _, err := f.Write([]byte(ins.exportBlock())); err != nil {
		f.Close()
		return InstallResult{}, fmt.Errorf("%w: %v", errProfileWrite, err)
	}
	if err := f.Close(); err != nil {
		return InstallResult{}, fmt.Errorf("%w: %v", errProfileWrite, err)
	}

	res.Added = true
	ins.activate()
	return res, nil
}

// activate exports the variables into the current process so the change is
// observable without restarting the shell.
func (ins Installer) activate() {
	os.Setenv(modeVar, string(ins.Mode))
	os.Setenv(voiceVar, ins.Voice)
}
