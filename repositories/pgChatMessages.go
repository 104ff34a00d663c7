package repositories

import (
	"bms-server/db"
	"bms-server/entities"
)

type chatMessagePgRepository struct {
	db db.Database
}

func NewChatMessagePgRepository(database db.Database) ChatMessageRepository {
	return &chatMessagePgRepository{db: database}
}

func (r *chatMessagePgRepository) Create(message *entities.ChatMessage) error {
	return r.db.GetDB().Create(message).Error
}

// GetRecent returns the newest messages, oldest first, so clients can render
// them top to bottom.
func (r *chatMessagePgRepository) GetRecent(limit int) ([]entities.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var messages []entities.ChatMessage
	err := r.db.GetDB().Order("created_at DESC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
