package harness_test

import (
	"bytes"
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopcount/internal/catalog"
	"github.com/katalvlaran/hopcount/internal/harness"
)

func TestRun_Catalog(t *testing.T) {
	cases, err := catalog.Load()
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 4} {
		rep, err := harness.Run(context.Background(), cases, harness.Options{Workers: workers})
		require.NoError(t, err)
		assert.True(t, rep.OK(), "workers=%d", workers)
		assert.Equal(t, len(cases), rep.Passed)
		assert.Zero(t, rep.Failed)
		for i, c := range rep.Cases {
			assert.Equal(t, cases[i].Name, c.Name, "order preserved")
			assert.Equal(t, c.Actual, c.Reference)
		}
	}
}

func TestRun_Failures(t *testing.T) {
	cases := []catalog.Case{
		{Name: "good", N: 3, Shortcuts: []int{2, 2, 3}, Expected: []int{0, 1, 2}},
		{Name: "wrong", N: 3, Shortcuts: []int{2, 2, 3}, Expected: []int{0, 2, 2}},
		{Name: "broken", N: 3, Shortcuts: []int{2, 2}, Expected: []int{0, 1, 2}},
	}
	rep, err := harness.Run(context.Background(), cases, harness.Options{Workers: 2})
	require.NoError(t, err)
	assert.False(t, rep.OK())
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 2, rep.Failed)

	assert.True(t, rep.Cases[0].Passed())
	assert.False(t, rep.Cases[1].Correct())
	assert.False(t, rep.Cases[1].Mismatch())
	assert.ErrorIs(t, rep.Cases[2].Err, catalog.ErrInvalidCase)

	var buf bytes.Buffer
	rep.Print(&buf, false)
	out := buf.String()
	assert.Contains(t, out, "Status: PASS")
	assert.Contains(t, out, "Status: FAIL")
	assert.Contains(t, out, "Status: ERROR")
	assert.Contains(t, out, "Expected:  0 2 2")
	assert.Contains(t, out, "Actual:    0 1 2")
	assert.Contains(t, out, "Failed: 2")
	assert.NotContains(t, out, "\x1b[")
}

func TestRun_WithoutExpected(t *testing.T) {
	cases, err := catalog.Parse([]byte("cases:\n  - name: open\n    n: 3\n    shortcuts: [2, 2, 3]\n"))
	require.NoError(t, err)
	require.Nil(t, cases[0].Expected)

	rep, err := harness.Run(context.Background(), cases, harness.Options{})
	require.NoError(t, err)
	assert.True(t, rep.OK())
	assert.Equal(t, 1, rep.Passed)

	got := rep.Cases[0]
	assert.Equal(t, []int{0, 1, 2}, got.Actual)
	assert.Equal(t, got.Actual, got.Reference)
	assert.True(t, got.Correct())
	assert.False(t, got.Mismatch())
	assert.True(t, got.Passed())

	var buf bytes.Buffer
	rep.Print(&buf, false)
	assert.Contains(t, buf.String(), "Status: PASS")
	assert.NotContains(t, buf.String(), "Expected:")
}

func TestRun_WithoutExpectedStillErrors(t *testing.T) {
	cases := []catalog.Case{{Name: "short", N: 3, Shortcuts: []int{2, 2}}}
	rep, err := harness.Run(context.Background(), cases, harness.Options{})
	require.NoError(t, err)
	assert.False(t, rep.Cases[0].Correct())
	assert.Equal(t, 1, rep.Failed)
}

func TestRun_LogFields(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(level)

	cases := []catalog.Case{
		{Name: "good", N: 3, Shortcuts: []int{2, 2, 3}, Expected: []int{0, 1, 2}},
		{Name: "wrong", N: 3, Shortcuts: []int{2, 2, 3}, Expected: []int{0, 2, 2}},
	}
	_, err := harness.Run(context.Background(), cases, harness.Options{Workers: 1})
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Contains(t, e.Data, "duration")
		assert.NotContains(t, e.Data, "time")
	}
	failed := entries[1]
	assert.Equal(t, log.WarnLevel, failed.Level)
	assert.Equal(t, "wrong", failed.Data["case"])
	assert.NotContains(t, failed.Data, log.ErrorKey)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cases, err := catalog.Load()
	require.NoError(t, err)

	_, err = harness.Run(ctx, cases, harness.Options{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
