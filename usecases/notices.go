package usecases

import (
	"fmt"

	"bms-server/entities"
	"bms-server/repositories"
)

// NoticeUseCase covers the public bulletin board and per-user private
// notices.
type NoticeUseCase struct {
	NoticeRepo        repositories.NoticeRepository
	PrivateNoticeRepo repositories.PrivateNoticeRepository
}

func NewNoticeUseCase(noticeRepo repositories.NoticeRepository, privateNoticeRepo repositories.PrivateNoticeRepository) *NoticeUseCase {
	return &NoticeUseCase{
		NoticeRepo:        noticeRepo,
		PrivateNoticeRepo: privateNoticeRepo,
	}
}

// List returns all public notices, newest first.
func (uc *NoticeUseCase) List() ([]entities.Notice, error) {
	return uc.NoticeRepo.GetAll()
}

// Post publishes a public notice.
func (uc *NoticeUseCase) Post(title, content string) (*entities.Notice, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("title and content are required: %w", ErrValidation)
	}
	notice := &entities.Notice{Title: title, Content: content}
	if err := uc.NoticeRepo.Create(notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// Delete removes a public notice.
func (uc *NoticeUseCase) Delete(id string) error {
	deleted, err := uc.NoticeRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("notice not found: %w", ErrNotFound)
	}
	return nil
}

// ListFor returns the private notices addressed to a user, newest first.
func (uc *NoticeUseCase) ListFor(userID string) ([]entities.PrivateNotice, error) {
	return uc.PrivateNoticeRepo.GetByUserID(userID)
}

// SendTo addresses a private notice to a user. The target id is not checked
// against the users table; a notice to an unknown id is silently orphaned.
func (uc *NoticeUseCase) SendTo(userID, title, content string) (*entities.PrivateNotice, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", ErrValidation)
	}
	if title == "" || content == "" {
		return nil, fmt.Errorf("title and content are required: %w", ErrValidation)
	}
	notice := &entities.PrivateNotice{UserID: userID, Title: title, Content: content}
	if err := uc.PrivateNoticeRepo.Create(notice); err != nil {
		return nil, err
	}
	return notice, nil
}
