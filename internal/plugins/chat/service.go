package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindbase/mindbase/internal/ai"
	"github.com/mindbase/mindbase/internal/apperror"
	"github.com/mindbase/mindbase/internal/plugins/auth"
)

// ChatService defines the business logic contract for the companion chat.
type ChatService interface {
	History(ctx context.Context, userID string) ([]Message, error)
	// Send stores the user's message, asks the completion service for a
	// reply personalized with the user's name and bio, stores the reply,
	// and returns both messages. The completion boundary never fails, so
	// Send errors only on storage faults.
	Send(ctx context.Context, user *auth.User, text string) (*SendResponse, error)
}

// chatService implements ChatService.
type chatService struct {
	repo      MessageRepository
	completer ai.Completer
}

// NewChatService creates the chat service with the given dependencies.
func NewChatService(repo MessageRepository, completer ai.Completer) ChatService {
	return &chatService{repo: repo, completer: completer}
}

// History returns the user's full conversation, oldest first.
func (s *chatService) History(ctx context.Context, userID string) ([]Message, error) {
	msgs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading chat history: %w", err))
	}
	return msgs, nil
}

// Send runs one exchange. The user message is persisted before the
// completion call so a hosted-service failure never loses what the user
// wrote; the fallback apology is stored as a regular model message.
func (s *chatService) Send(ctx context.Context, user *auth.User, text string) (*SendResponse, error) {
	history, err := s.repo.List(ctx, user.ID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading chat history: %w", err))
	}

	userMsg := Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.repo.Save(ctx, user.ID, userMsg); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("saving message: %w", err))
	}

	turns := make([]ai.Turn, 0, len(history))
	for _, m := range history {
		turns = append(turns, ai.Turn{Role: m.Role, Text: m.Text})
	}

	replyText := s.completer.Complete(ctx, turns, user.Name, user.Bio, text)

	reply := Message{
		ID:        uuid.NewString(),
		Role:      RoleModel,
		Text:      replyText,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.repo.Save(ctx, user.ID, reply); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("saving reply: %w", err))
	}

	return &SendResponse{Message: userMsg, Reply: reply}, nil
}
