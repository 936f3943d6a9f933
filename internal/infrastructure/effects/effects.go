// Package effects implements the background animations shown while a
// generation call is in flight.
//
// Each effect is a named spinner frame set rendered on its own goroutine in
// the accent color of the current theme. The "none" effect is a valid choice
// that renders nothing; unknown names fail instantiation so the caller can
// degrade to it.
package effects

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/ports"
)

// frameSets maps each effect name to its animation frames.
var frameSets = map[domain.Effect]spinner.Spinner{
	domain.EffectWaves: spinner.Pulse,
	domain.EffectBirds: spinner.Jump,
	domain.EffectNet:   spinner.Globe,
	domain.EffectHalo:  spinner.Moon,
	domain.EffectRings: spinner.Points,
}

// Factory instantiates effects writing to a fixed output stream.
type Factory struct {
	writer io.Writer
}

var _ ports.EffectFactory = (*Factory)(nil)

// NewFactory creates an effect factory rendering to w.
func NewFactory(w io.Writer) *Factory {
	return &Factory{writer: w}
}

// New starts the named effect. The "none" effect returns an inert handle;
// unknown effect names return an error.
func (f *Factory) New(effect domain.Effect, theme domain.Theme, accent domain.AccentColor) (ports.EffectHandle, error) {
	if effect == domain.EffectNone {
		return noopHandle{}, nil
	}
	frames, ok := frameSets[effect]
	if !ok {
		return nil, fmt.Errorf("unknown background effect %q", effect)
	}

	h := &animation{
		spinner:  frames,
		style:    lipgloss.NewStyle().Foreground(lipgloss.Color(domain.AccentHex(theme, accent))),
		writer:   f.writer,
		stopChan: make(chan struct{}),
	}
	h.start()
	return h, nil
}

type noopHandle struct{}

func (noopHandle) Stop() {}

// animation renders a frame set on its own goroutine until stopped.
type animation struct {
	spinner  spinner.Spinner
	style    lipgloss.Style
	writer   io.Writer
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func (a *animation) start() {
	interval := a.spinner.FPS
	if interval <= 0 {
		interval = 80 * time.Millisecond
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		idx := 0
		for {
			select {
			case <-a.stopChan:
				// Clear the animation line
				fmt.Fprintf(a.writer, "\r\033[K")
				return
			case <-ticker.C:
				frame := a.spinner.Frames[idx%len(a.spinner.Frames)]
				fmt.Fprintf(a.writer, "\r%s ", a.style.Render(frame))
				idx++
			}
		}
	}()
}

// Stop tears the animation down and waits for the goroutine to exit. Safe to
// call more than once.
func (a *animation) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopChan)
		a.wg.Wait()
	})
}
