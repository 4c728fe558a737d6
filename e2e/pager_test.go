//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	err := tf.StartApp("--count", "5")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")

	tf.OpenHelp()
	require.True(t, tf.OutputContainsPlain("Marquee Help", 3*time.Second), "Should show help in pager")

	// Quit pager and ensure TUI again
	tf.Snapshot()
	tf.Quit()
	require.True(t, tf.SeePlain("driving"), "Should return to main TUI after closing pager")
}

func TestItemListPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	items := tf.WriteItems("items.txt", "first headline", "second headline")
	err := tf.StartApp(items)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")

	initialOutput := tf.Snapshot()
	tf.OpenItems()

	require.True(t, tf.WaitFor(func(s string) bool {
		return s != initialOutput
	}, 2*time.Second), "Item pager should change TUI state")
	require.True(t, tf.OutputContainsPlain("second headline", 3*time.Second))

	tf.Quit()
	require.True(t, tf.SeePlain("items"), "Should return to main TUI after closing item pager")
}
