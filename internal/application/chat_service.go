package application

import (
	"context"
	"sync"

	"github.com/creditwise/creditwise-cli/internal/domain"
	"github.com/creditwise/creditwise-cli/internal/ports"
)

// ChatService holds the advisor conversation for the lifetime of the process.
// A failed advisor call never loses the user's turn; it is answered with the
// fixed failure reply instead.
type ChatService struct {
	gateway ports.Gateway
	clock   ports.Clock

	mu         sync.Mutex
	transcript *domain.Transcript
	scoreHint  int
}

func NewChatService(gateway ports.Gateway, clock ports.Clock) *ChatService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ChatService{
		gateway:    gateway,
		clock:      clock,
		transcript: domain.NewTranscript(clock.Now()),
		scoreHint:  domain.DefaultScoreHint,
	}
}

func (c *ChatService) Transcript() []domain.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.transcript.Turns()
}

// NoteScore records the latest known score so advisor prompts carry it
// instead of the placeholder.
func (c *ChatService) NoteScore(score int) {
	if score <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.scoreHint = score
}

// Send appends the user's turn and exactly one advisor turn. A blank message
// leaves the transcript untouched. The two appends happen atomically so
// concurrent sends never interleave their halves.
func (c *ChatService) Send(ctx context.Context, session domain.Session, message string) []domain.Turn {
	if domain.BlankMessage(message) {
		return c.Transcript()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.transcript.Append(domain.Turn{
		Speaker: domain.SpeakerUser,
		Text:    message,
		At:      c.clock.Now(),
	})

	userID := session.User.ID
	if userID <= 0 {
		userID = domain.FallbackChatUserID
	}

	reply, err := c.gateway.Chat(ctx, domain.ChatPrompt{
		Message:   message,
		UserID:    userID,
		ScoreHint: c.scoreHint,
	})
	if err != nil || reply == "" {
		reply = domain.AdvisorFailureReply
	}

	c.transcript.Append(domain.Turn{
		Speaker: domain.SpeakerAdvisor,
		Text:    reply,
		At:      c.clock.Now(),
	})

	return c.transcript.Turns()
}
