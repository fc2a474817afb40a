package mentor

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies who wrote a message.
type Role string

// Message authors.
const (
	RoleUser   Role = "user"
	RoleMentor Role = "mentor"
)

// Message is one chat entry.
type Message struct {
	ID      string
	Role    Role
	Content string
	At      time.Time
}

// Conversation is the chat transcript. It is a value: Ask and Answer return
// the next conversation and leave the receiver untouched.
type Conversation struct {
	Messages []Message
	// Typing is set between a question and its answer. No question is
	// accepted while it is set.
	Typing bool
}

// NewConversation starts a transcript with the mentor's greeting.
func NewConversation(greeting string, now time.Time) Conversation {
	var c Conversation
	if greeting != "" {
		c.Messages = []Message{newMessage(RoleMentor, greeting, now)}
	}
	return c
}

// Ask appends the user's question and marks the mentor as typing. Blank
// input, or a question while the mentor is typing, is not sent and ok is
// false.
func (c Conversation) Ask(text string, now time.Time) (next Conversation, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" || c.Typing {
		return c, false
	}
	c.Messages = append(slices.Clip(c.Messages), newMessage(RoleUser, text, now))
	c.Typing = true
	return c, true
}

// Answer appends the mentor's reply and clears Typing. An answer that
// arrives when no question is pending is dropped.
func (c Conversation) Answer(response string, now time.Time) Conversation {
	if !c.Typing {
		return c
	}
	c.Messages = append(slices.Clip(c.Messages), newMessage(RoleMentor, response, now))
	c.Typing = false
	return c
}

// Abandon clears Typing without an answer, for a cancelled reply.
func (c Conversation) Abandon() Conversation {
	c.Typing = false
	return c
}

// Pending returns the question awaiting an answer.
func (c Conversation) Pending() (string, bool) {
	if !c.Typing || len(c.Messages) == 0 {
		return "", false
	}
	last := c.Messages[len(c.Messages)-1]
	return last.Content, last.Role == RoleUser
}

// Len returns the number of messages.
func (c Conversation) Len() int { return len(c.Messages) }

func newMessage(role Role, content string, at time.Time) Message {
	return Message{ID: uuid.NewString(), Role: role, Content: content, At: at}
}
