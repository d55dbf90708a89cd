package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectVersionInfoFallsBackToDev(t *testing.T) {
	info := collectVersionInfo()
	assert.NotEmpty(t, info.Version)
}

func TestRenderVersionPretty(t *testing.T) {
	var sb strings.Builder
	renderVersionPretty(&sb, versionInfo{Version: "1.2.3"})
	assert.Equal(t, "brix 1.2.3\n", sb.String())
}

func TestRenderVersionPrettyFull(t *testing.T) {
	versionShowFull = true
	defer func() { versionShowFull = false }()

	var sb strings.Builder
	renderVersionPretty(&sb, versionInfo{Version: "1.2.3", GitCommit: "abc123"})
	out := sb.String()
	assert.Contains(t, out, "brix 1.2.3")
	assert.Contains(t, out, "commit: abc123")
	assert.Contains(t, out, "built:  unknown")
}

func TestRenderVersionJSON(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, renderVersionJSON(&sb, versionInfo{Version: "1.2.3"}))

	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &payload))
	assert.Equal(t, "brix", payload.Tool)
	assert.Equal(t, "1.2.3", payload.Version)
	assert.Empty(t, payload.GitCommit, "metadata hidden without --full")
}

func TestRenderVersionJSONFull(t *testing.T) {
	versionShowFull = true
	defer func() { versionShowFull = false }()

	var sb strings.Builder
	require.NoError(t, renderVersionJSON(&sb, versionInfo{
		Version:   "1.2.3",
		GitCommit: "abc123",
		BuildDate: "2026-01-01T00:00:00Z",
	}))

	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &payload))
	assert.Equal(t, "abc123", payload.GitCommit)
	assert.Equal(t, "2026-01-01T00:00:00Z", payload.BuildDate)
}

func TestValueOrUnknown(t *testing.T) {
	assert.Equal(t, "unknown", valueOrUnknown(""))
	assert.Equal(t, "x", valueOrUnknown("x"))
}
