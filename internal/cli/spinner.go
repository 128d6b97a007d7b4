package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a status line while a computation runs. After the first
// second the line also shows the elapsed time, since enumerations of large
// shapes can run for a while.
type Spinner struct {
	w       io.Writer
	message string
	ctx     context.Context

	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup

	// width is the widest line drawn; only the animation goroutine writes it.
	width int
}

// newSpinner creates a spinner on w. The animation also ends when ctx is
// cancelled.
func newSpinner(ctx context.Context, w io.Writer, message string) *Spinner {
	return &Spinner{w: w, message: message, ctx: ctx, quit: make(chan struct{})}
}

// startSpinner starts a spinner on w only when w is a terminal, and returns
// the function that stops it.
func startSpinner(ctx context.Context, w io.Writer, message string) (stop func()) {
	if !isTerminal(w) {
		return func() {}
	}
	s := newSpinner(ctx, w, message)
	s.Start()
	return s.Stop
}

// Start begins the animation.
func (s *Spinner) Start() {
	s.wg.Add(1)
	go s.run(time.Now())
}

func (s *Spinner) run(start time.Time) {
	defer s.wg.Done()
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.ctx.Done():
			return
		case <-s.quit:
			return
		case <-ticker.C:
			s.draw(frame, time.Since(start))
		}
	}
}

func (s *Spinner) draw(frame int, elapsed time.Duration) {
	line := s.message
	if elapsed >= time.Second {
		line += fmt.Sprintf(" (%ds)", int(elapsed.Seconds()))
	}
	s.width = max(s.width, lipgloss.Width(line)+2)
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(spinnerFrames[frame%len(spinnerFrames)]), StyleDim.Render(line))
}

// Stop ends the animation and clears the line. Calling it again does nothing.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.quit)
		s.wg.Wait()
		if s.width > 0 {
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
		}
	})
}

// Cancelled reports whether the spinner's context was cancelled.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
