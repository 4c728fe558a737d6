package ui

// frameMsg drives one animation frame. gen discards ticks from a stopped loop.
type frameMsg struct {
	gen int
}

// ItemsLoadedMsg carries reloaded item lines from the file watcher
type ItemsLoadedMsg struct {
	Path  string
	Lines []string
	Err   error
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what    string
	content string
	err     error
}

// clearStatusMsg clears the status message it was scheduled for
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals that a pager is taking over the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager has returned the terminal
type resumeRenderingMsg struct{}
