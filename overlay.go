package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// overlayRule is one user-defined entry in rules.yaml.
type overlayRule struct {
	Contains string `yaml:"contains"`
	Message  string `yaml:"message"`
	Sound    string `yaml:"sound"`
}

// loadOverlay reads user command rules from rules.yaml in the hook dir.
// Entries apply to Bash commands ahead of the built-in table, in file
// order. A missing or malformed file means no overlay.
func loadOverlay(dir string) []Rule {
	data, err := os.ReadFile(filepath.Join(dir, "rules.yaml"))
	if err != nil {
		return nil
	}
	var entries []overlayRule
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil
	}

	var rules []Rule
	for _, e := range entries {
		if e.Contains == "" || e.Message == "" {
			continue
		}
		sound := e.Sound
		if sound == "" {
			sound = "bash"
		}
		rules = append(rules, Rule{
			Match:   commandContains(e.Contains),
			Key:     "user:" + e.Contains,
			Sound:   sound,
			Message: e.Message,
		})
	}
	return rules
}
