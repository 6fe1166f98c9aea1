// Package tui hosts the crossing game in a terminal using Bubble Tea.
// It handles the terminal UI loop, input mapping, and frame scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// FrameMsg is sent when a requested frame is due.
type FrameMsg struct {
	ID crossing.FrameID
}

// FrameScheduler implements crossing.FrameScheduler on top of tea.Tick.
// Requests made while handling a message are queued and handed to Bubble Tea
// by Flush; a cancelled frame's message is dropped on arrival.
type FrameScheduler struct {
	interval time.Duration
	next     crossing.FrameID
	pending  map[crossing.FrameID]crossing.FrameFunc
	cmds     []tea.Cmd
}

// NewFrameScheduler creates a scheduler that fires frames tickRate times per second.
func NewFrameScheduler(tickRate int) *FrameScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameScheduler{
		interval: time.Second / time.Duration(tickRate),
		pending:  make(map[crossing.FrameID]crossing.FrameFunc),
	}
}

// RequestFrame registers fn for the next frame.
func (s *FrameScheduler) RequestFrame(fn crossing.FrameFunc) crossing.FrameID {
	s.next++
	id := s.next
	s.pending[id] = fn
	s.cmds = append(s.cmds, frameCmd(s.interval, id))
	return id
}

// CancelFrame drops a pending request. Unknown ids are ignored.
func (s *FrameScheduler) CancelFrame(id crossing.FrameID) {
	delete(s.pending, id)
}

// Dispatch runs the callback for msg if it is still pending.
func (s *FrameScheduler) Dispatch(msg FrameMsg) bool {
	fn, ok := s.pending[msg.ID]
	if !ok {
		return false
	}
	delete(s.pending, msg.ID)
	fn()
	return true
}

// Pending returns the number of frames waiting to fire.
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}

// Flush returns the queued tick commands, or nil if there are none.
func (s *FrameScheduler) Flush() tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// frameCmd returns a command that delivers FrameMsg{id} after interval.
func frameCmd(interval time.Duration, id crossing.FrameID) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}
