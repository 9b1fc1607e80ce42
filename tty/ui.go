package tty

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/automoto/laneduel/shared/duel"
	"github.com/nsf/termbox-go"
)

const laneCells = 48

// UI drives a match from the terminal. All match access happens on the
// goroutine that calls Run.
type UI struct {
	match  *duel.Match
	skills []duel.Skill
	frame  time.Duration

	lastHit  string
	hitUntil time.Duration
}

// NewUI creates a terminal front-end for m that advances it every frame.
func NewUI(m *duel.Match, skills []duel.Skill, frame time.Duration) *UI {
	if frame <= 0 {
		frame = 50 * time.Millisecond
	}
	return &UI{match: m, skills: skills, frame: frame}
}

// Run owns the terminal until ctx is done or the player quits. The match is
// stopped on every exit path.
func (ui *UI) Run(ctx context.Context) error {
	defer ui.match.Stop()
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer termbox.Close()

	events := make(chan termbox.Event)
	quit := make(chan struct{})
	pollDone := make(chan struct{})
	go func() {
		defer close(pollDone)
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			// After quit, events are dropped until the interrupt arrives.
			select {
			case events <- ev:
			case <-quit:
			}
		}
	}()
	defer func() {
		close(quit)
		termbox.Interrupt()
		<-pollDone
	}()

	ticker := time.NewTicker(ui.frame)
	defer ticker.Stop()
	last := time.Now()

	ui.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			ui.match.Update(now.Sub(last))
			last = now
			ui.collectHits()
			ui.render()
		case ev := <-events:
			switch ev.Type {
			case termbox.EventKey:
				if ui.handleKey(ev) {
					return nil
				}
				ui.render()
			case termbox.EventResize:
				ui.render()
			case termbox.EventError:
				return fmt.Errorf("terminal event: %w", ev.Err)
			}
		}
	}
}

// handleKey applies one key press and reports whether the player quit.
func (ui *UI) handleKey(ev termbox.Event) bool {
	m := ui.match
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return true
	case termbox.KeyArrowRight:
		m.TryMove(duel.Right)
		return false
	case termbox.KeyArrowLeft:
		m.TryMove(duel.Left)
		return false
	}

	switch {
	case ev.Ch == 'q':
		return true
	case ev.Ch >= '1' && ev.Ch <= '9':
		m.TrySkill(ui.skills, int(ev.Ch-'1'))
	}
	return false
}

func (ui *UI) collectHits() {
	for _, hit := range ui.match.DrainHits() {
		ui.lastHit = fmt.Sprintf("%s hit %s for %d", hit.Skill.Name, hit.Target, hit.Damage)
		ui.hitUntil = hit.At + time.Second
		log.Printf("hit %s: %s dealt %d to %s, health now %d",
			hit.AttackID, hit.Skill.Name, hit.Damage, hit.Target, hit.HealthAfter)
	}
	if ui.lastHit != "" && ui.match.Clock() >= ui.hitUntil {
		ui.lastHit = ""
	}
}

func (ui *UI) render() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	drawText(1, 1, "LANE DUEL  <-/-> move  1-9 skills  q quit", termbox.ColorCyan)
	drawText(1, 3, LaneRow(ui.match, laneCells), termbox.ColorWhite)
	if ui.lastHit != "" {
		drawText(1, 4, ui.lastHit, termbox.ColorRed)
	}
	for i, line := range StatusLines(ui.match, ui.skills) {
		drawText(1, 6+i, line, termbox.ColorWhite)
	}

	termbox.Flush()
}

func drawText(x, y int, text string, fg termbox.Attribute) {
	for i, r := range []rune(text) {
		termbox.SetCell(x+i, y, r, fg, termbox.ColorDefault)
	}
}
