package domain

import (
	"strings"
	"time"
)

type Speaker string

const (
	SpeakerUser    Speaker = "user"
	SpeakerAdvisor Speaker = "advisor"
)

func (s Speaker) DisplayName() string {
	switch s {
	case SpeakerUser:
		return "You"
	case SpeakerAdvisor:
		return "Advisor"
	default:
		return string(s)
	}
}

type Turn struct {
	Speaker Speaker
	Text    string
	At      time.Time
}

// FallbackChatUserID is sent when no session user identifier is available,
// matching the original client's behavior.
const FallbackChatUserID UserID = 100

// DefaultScoreHint is the placeholder sent until a real score has been
// fetched or calculated in the current run.
const DefaultScoreHint = 650

const AdvisorGreeting = "Hello! I'm your credit score advisor.\n\n" +
	"I can help you with:\n" +
	"- Credit score improvement strategies\n" +
	"- Loan eligibility analysis\n" +
	"- Financial planning advice\n" +
	"- Credit card recommendations\n\n" +
	"What would you like to know?"

const AdvisorFailureReply = "Sorry, I encountered an error. Please try again or rephrase your question."

// QuickQuestions are shortcuts that populate the input field. They never
// auto-send.
func QuickQuestions() []string {
	return []string{
		"How to improve my credit score?",
		"Am I eligible for a home loan?",
		"Best credit cards for my score?",
		"What affects my credit score?",
	}
}

type ChatPrompt struct {
	Message   string
	UserID    UserID
	ScoreHint int
}

// Transcript is the ordered chat history. It is append-only for the lifetime
// of the chat view.
type Transcript struct {
	turns []Turn
}

func NewTranscript(greetedAt time.Time) *Transcript {
	return &Transcript{turns: []Turn{{
		Speaker: SpeakerAdvisor,
		Text:    AdvisorGreeting,
		At:      greetedAt,
	}}}
}

func (t *Transcript) Append(turn Turn) {
	t.turns = append(t.turns, turn)
}

func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

func (t *Transcript) Len() int {
	return len(t.turns)
}

func BlankMessage(text string) bool {
	return strings.TrimSpace(text) == ""
}
