package tui

import (
	"strings"

	"github.com/papapumpkin/astronexus/internal/mentor"
)

// renderMentor shows the most recent messages that fit, the typing
// indicator, then either the chat input or the quick questions.
func (m AppModel) renderMentor() string {
	chat := m.State.Chat
	width := max(m.Width-12, 20)

	var lines []string
	for _, msg := range chat.Messages {
		prefix := styleChatMentor.Render("mentor> ")
		if msg.Role == mentor.RoleUser {
			prefix = styleChatUser.Render("you>    ")
		}
		wrapped := strings.Split(wrap(msg.Content, width, 0), "\n")
		for i, w := range wrapped {
			if i == 0 {
				lines = append(lines, "  "+prefix+w)
				continue
			}
			lines = append(lines, "          "+w)
		}
	}
	if chat.Typing {
		lines = append(lines, "  "+m.Spinner.View()+" "+styleChatTyping.Render("mentor is typing..."))
	}

	quick := m.Lib.Mentor.QuickQuestions
	var bottom []string
	if m.Chat.Focused() {
		bottom = append(bottom, "  "+m.Chat.View())
	} else {
		bottom = append(bottom, "  "+styleQueryLabel.Render("quick questions (enter to ask, i to type your own):"))
		for i, q := range quick {
			bottom = append(bottom, row(q, "", i == m.QuickCursor, m.Width))
		}
	}

	height := max(m.bodyHeight()-len(bottom)-1, 1)
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n") + "\n\n" + strings.Join(bottom, "\n")
}
