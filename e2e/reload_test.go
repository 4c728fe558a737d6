//go:build e2e && unix

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestItemsFileReload(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	items := tf.WriteItems("items.txt", "old news")
	err := tf.StartApp(items)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")
	require.True(t, tf.SeePlain("old news"))

	require.NoError(t, os.WriteFile(items, []byte("fresh one\nfresh two\n"), 0644))

	require.True(t, tf.OutputContainsPlain("fresh two", 3*time.Second), "Should pick up the rewritten file")
	require.True(t, tf.OutputContainsPlain("Reloaded 2 items", time.Second))

	tf.Quit()
}

func TestNudgePausesDriver(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	err := tf.StartApp("--count", "300", "--resume-delay", "2s")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")

	tf.Right()
	require.True(t, tf.OutputContainsPlain("resuming in", 2*time.Second), "Nudge should pause auto-scroll")
	require.True(t, tf.OutputContainsPlain("driving", 4*time.Second), "Auto-scroll should resume")

	tf.Quit()
}
