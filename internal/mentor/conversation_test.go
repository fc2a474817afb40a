package mentor

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestConversationAskAnswer(t *testing.T) {
	t.Parallel()
	c := NewConversation("hello", t0)
	if c.Len() != 1 || c.Messages[0].Role != RoleMentor {
		t.Fatalf("greeting missing: %+v", c.Messages)
	}

	asked, ok := c.Ask("  What is a black hole?  ", t0.Add(time.Second))
	if !ok {
		t.Fatal("Ask rejected a valid question")
	}
	if !asked.Typing {
		t.Error("Typing not set after Ask")
	}
	if q, ok := asked.Pending(); !ok || q != "What is a black hole?" {
		t.Errorf("Pending() = %q, %v", q, ok)
	}
	if c.Len() != 1 || c.Typing {
		t.Error("Ask mutated the receiver")
	}

	answered := asked.Answer("a region of spacetime", t0.Add(2*time.Second))
	if answered.Typing {
		t.Error("Typing still set after Answer")
	}
	if answered.Len() != 3 {
		t.Fatalf("want 3 messages, got %d", answered.Len())
	}
	last := answered.Messages[2]
	if last.Role != RoleMentor || last.Content != "a region of spacetime" {
		t.Errorf("last message = %+v", last)
	}
	if !last.At.Equal(t0.Add(2 * time.Second)) {
		t.Errorf("last.At = %v", last.At)
	}
	if _, ok := answered.Pending(); ok {
		t.Error("nothing should be pending after Answer")
	}
}

func TestConversationRejects(t *testing.T) {
	t.Parallel()
	c := NewConversation("hello", t0)

	for _, blank := range []string{"", "   ", "\n\t"} {
		if got, ok := c.Ask(blank, t0); ok || got.Len() != 1 {
			t.Errorf("blank %q was sent", blank)
		}
	}

	asked, _ := c.Ask("first", t0)
	again, ok := asked.Ask("second", t0)
	if ok {
		t.Error("Ask while typing was accepted")
	}
	if again.Len() != asked.Len() {
		t.Error("rejected Ask changed the transcript")
	}
}

func TestConversationStaleAnswerDropped(t *testing.T) {
	t.Parallel()
	c := NewConversation("hello", t0)
	if got := c.Answer("late", t0); got.Len() != 1 {
		t.Errorf("answer without a question was appended")
	}

	asked, _ := c.Ask("q", t0)
	abandoned := asked.Abandon()
	if abandoned.Typing {
		t.Error("Abandon left Typing set")
	}
	if got := abandoned.Answer("late", t0); got.Len() != abandoned.Len() {
		t.Error("answer after Abandon was appended")
	}
}

func TestMessageIDsAreUnique(t *testing.T) {
	t.Parallel()
	c := NewConversation("hello", t0)
	for i := 0; i < 20; i++ {
		c, _ = c.Ask("q", t0)
		c = c.Answer("a", t0)
	}
	seen := make(map[string]bool, c.Len())
	for _, m := range c.Messages {
		if m.ID == "" || seen[m.ID] {
			t.Fatalf("duplicate or empty id %q", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestAppendDoesNotAlias(t *testing.T) {
	t.Parallel()
	base, _ := NewConversation("hello", t0).Ask("q", t0)
	a := base.Answer("first", t0)
	b := base.Answer("second", t0)
	if a.Messages[2].Content != "first" || b.Messages[2].Content != "second" {
		t.Errorf("branches share storage: %q / %q", a.Messages[2].Content, b.Messages[2].Content)
	}
}
