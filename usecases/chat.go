package usecases

import (
	"fmt"

	"bms-server/entities"
	"bms-server/repositories"
)

// RecentChatLimit bounds the history fetch.
const RecentChatLimit = 50

// ChatUseCase archives broadcast chat messages and serves the bounded
// history fetch. Live fan-out is the hub's job; this only touches the store.
type ChatUseCase struct {
	ChatRepo repositories.ChatMessageRepository
}

func NewChatUseCase(chatRepo repositories.ChatMessageRepository) *ChatUseCase {
	return &ChatUseCase{ChatRepo: chatRepo}
}

// Post archives a message and returns the stamped entity to broadcast.
func (uc *ChatUseCase) Post(sender, text string) (*entities.ChatMessage, error) {
	if text == "" {
		return nil, fmt.Errorf("message text is required: %w", ErrValidation)
	}
	message := &entities.ChatMessage{Sender: sender, Text: text}
	if err := uc.ChatRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// Recent returns the last messages, oldest first.
func (uc *ChatUseCase) Recent() ([]entities.ChatMessage, error) {
	return uc.ChatRepo.GetRecent(RecentChatLimit)
}
