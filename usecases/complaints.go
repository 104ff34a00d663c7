package usecases

import (
	"errors"
	"fmt"

	"bms-server/entities"
	"bms-server/repositories"

	"gorm.io/gorm"
)

// ComplaintUseCase covers the complaint ledger: submission by residents and
// status updates by the admin.
type ComplaintUseCase struct {
	ComplaintRepo repositories.ComplaintRepository
}

func NewComplaintUseCase(complaintRepo repositories.ComplaintRepository) *ComplaintUseCase {
	return &ComplaintUseCase{ComplaintRepo: complaintRepo}
}

// List returns all complaints, newest first.
func (uc *ComplaintUseCase) List() ([]entities.Complaint, error) {
	return uc.ComplaintRepo.GetAll()
}

// Submit files a complaint. submittedBy is the caller's display name at
// submission time and is stored verbatim.
func (uc *ComplaintUseCase) Submit(submittedBy, subject, description string) (*entities.Complaint, error) {
	if subject == "" || description == "" {
		return nil, fmt.Errorf("subject and description are required: %w", ErrValidation)
	}
	complaint := &entities.Complaint{
		SubmittedBy: submittedBy,
		Subject:     subject,
		Description: description,
		Status:      entities.ComplaintPending,
	}
	if err := uc.ComplaintRepo.Create(complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// UpdateStatus sets a complaint's status. An empty status defaults to
// Resolved.
func (uc *ComplaintUseCase) UpdateStatus(id, status string) (*entities.Complaint, error) {
	if status == "" {
		status = entities.ComplaintResolved
	}
	if _, err := uc.ComplaintRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("complaint not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if err := uc.ComplaintRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return uc.ComplaintRepo.GetByID(id)
}
