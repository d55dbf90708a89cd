package observ_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brix/internal/observ"
)

func TestTimerPhases(t *testing.T) {
	timer := observ.NewTimer()
	a := timer.Begin("ingest")
	timer.End(a, "3 file(s)")
	b := timer.Begin("checks")
	timer.End(b, "")

	report := timer.Report()
	require.Len(t, report.Phases, 2)
	assert.Equal(t, "ingest", report.Phases[0].Name)
	assert.Equal(t, "3 file(s)", report.Phases[0].Note)
	assert.Equal(t, "checks", report.Phases[1].Name)
	assert.GreaterOrEqual(t, report.TotalMS, 0.0)
}

func TestTimerEndOutOfRangeIsIgnored(t *testing.T) {
	timer := observ.NewTimer()
	timer.End(0, "nothing started")
	timer.End(-1, "negative")
	assert.Empty(t, timer.Report().Phases)
}

func TestTimerSummary(t *testing.T) {
	timer := observ.NewTimer()
	idx := timer.Begin("ingest")
	timer.End(idx, "2 file(s)")

	out := timer.Summary()
	assert.Contains(t, out, "timings:")
	assert.Contains(t, out, "ingest")
	assert.Contains(t, out, "// 2 file(s)")
	assert.Contains(t, out, "total")
}

func TestTimerWriteJSON(t *testing.T) {
	timer := observ.NewTimer()
	idx := timer.Begin("checks")
	timer.End(idx, "")

	var sb strings.Builder
	require.NoError(t, timer.WriteJSON(&sb))

	var report observ.Report
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &report))
	require.Len(t, report.Phases, 1)
	assert.Equal(t, "checks", report.Phases[0].Name)
}
