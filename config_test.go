package main

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Frontend: "raylib",
		Store:    "json",
		DataDir:  "data",
		Speed:    150 * time.Millisecond,
	}, cfg)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig([]string{"-frontend", "tui", "-store", "sqlite", "-data", "/tmp/x", "-speed", "90", "-seed", "7", "-mute"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "tui", cfg.Frontend)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, "/tmp/x", cfg.DataDir)
	assert.Equal(t, 90*time.Millisecond, cfg.Speed)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.True(t, cfg.Muted)
}

func TestParseConfigRejects(t *testing.T) {
	for _, args := range [][]string{
		{"-frontend", "web"},
		{"-store", "redis"},
		{"-speed", "0"},
		{"-bogus"},
	} {
		_, err := parseConfig(args, io.Discard)
		assert.Error(t, err, "%v", args)
	}
}

func TestParseConfigReportsErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-frontend", "web"}, `unknown frontend "web"`},
		{[]string{"-store", "redis"}, `unknown store "redis"`},
		{[]string{"-speed", "-5"}, "speed must be positive"},
		{[]string{"-bogus"}, "flag provided but not defined: -bogus"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		_, err := parseConfig(tt.args, &out)
		require.Error(t, err)
		assert.Contains(t, out.String(), tt.want)
	}
}
