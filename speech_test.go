package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeakWithFallback(t *testing.T) {
	errUnknownVoice := errors.New("voice not found")

	cases := []struct {
		name       string
		voice      string
		failVoices map[string]error
		wantErr    error
		wantRuns   []string
	}{
		{
			name:     "configured voice works",
			voice:    "Otoya",
			wantRuns: []string{"Otoya"},
		},
		{
			name:       "unknown voice retries default",
			voice:      "Nobody",
			failVoices: map[string]error{"Nobody": errUnknownVoice},
			wantRuns:   []string{"Nobody", "Kyoko"},
		},
		{
			name:       "default voice failure is not retried",
			voice:      "Kyoko",
			failVoices: map[string]error{"Kyoko": errUnknownVoice},
			wantErr:    errUnknownVoice,
			wantRuns:   []string{"Kyoko"},
		},
		{
			name:       "retry failure surfaces the error",
			voice:      "Nobody",
			failVoices: map[string]error{"Nobody": errUnknownVoice, "Kyoko": errUnknownVoice},
			wantErr:    errUnknownVoice,
			wantRuns:   []string{"Nobody", "Kyoko"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var runs []string
			run := func(voice, text string) error {
				runs = append(runs, voice)
				assert.Equal(t, "タスクが完了しました", text)
				return tc.failVoices[voice]
			}

			err := speakWithFallback(run, defaultVoice, tc.voice, "タスクが完了しました")

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantRuns, runs)
		})
	}
}

func TestFindSound(t *testing.T) {
	dir := t.TempDir()
	soundDir := filepath.Join(dir, "sounds", defaultSoundType)
	require.NoError(t, os.MkdirAll(soundDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(soundDir, "ready.mp3"), []byte("x"), 0644))

	assert.Equal(t, filepath.Join(soundDir, "ready.mp3"), findSound(dir, defaultSoundType, "ready"))
	assert.Empty(t, findSound(dir, defaultSoundType, "missing"))
	assert.Empty(t, findSound(dir, defaultSoundType, "../ready"))
}
