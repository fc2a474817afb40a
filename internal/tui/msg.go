package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/astronexus/internal/config"
	"github.com/papapumpkin/astronexus/internal/derive"
	"github.com/papapumpkin/astronexus/internal/schedule"
)

// MsgGalleryLoaded is sent when the gallery listing delay has elapsed.
type MsgGalleryLoaded struct{}

// MsgMentorReply carries the mentor's answer once its typing delay ends.
type MsgMentorReply struct {
	Text string
}

// MsgSimulationDone carries a mission outcome once the launch delay ends.
type MsgSimulationDone struct {
	Outcome derive.Outcome
}

// MsgConfigReloaded is sent when the config file changes on disk.
type MsgConfigReloaded struct {
	Config config.Config
}

// MsgError reports a non-fatal error to show in the message line.
type MsgError struct {
	Err error
}

// await returns a command that blocks until task settles and wraps its
// value. A cancelled task produces no message.
func await[T any](task *schedule.Task[T], wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, ok := task.Wait()
		if !ok {
			return nil
		}
		return wrap(v)
	}
}
