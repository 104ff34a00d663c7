package usecases

import (
	"bms-server/entities"
	"bms-server/repositories"
)

// Stats are the public aggregate counts shown on dashboards.
type Stats struct {
	TotalApartments   int64 `json:"total_apartments"`
	Occupied          int64 `json:"occupied"`
	Vacant            int64 `json:"vacant"`
	Residents         int64 `json:"residents"`
	Notices           int64 `json:"notices"`
	PendingComplaints int64 `json:"pending_complaints"`
}

type StatsUseCase struct {
	ApartmentRepo repositories.ApartmentRepository
	UserRepo      repositories.UserRepository
	NoticeRepo    repositories.NoticeRepository
	ComplaintRepo repositories.ComplaintRepository
}

func NewStatsUseCase(apartmentRepo repositories.ApartmentRepository, userRepo repositories.UserRepository, noticeRepo repositories.NoticeRepository, complaintRepo repositories.ComplaintRepository) *StatsUseCase {
	return &StatsUseCase{
		ApartmentRepo: apartmentRepo,
		UserRepo:      userRepo,
		NoticeRepo:    noticeRepo,
		ComplaintRepo: complaintRepo,
	}
}

func (uc *StatsUseCase) Collect() (*Stats, error) {
	total, err := uc.ApartmentRepo.Count()
	if err != nil {
		return nil, err
	}
	occupied, err := uc.ApartmentRepo.CountOccupied()
	if err != nil {
		return nil, err
	}
	residents, err := uc.UserRepo.CountByRole(entities.RoleResident)
	if err != nil {
		return nil, err
	}
	notices, err := uc.NoticeRepo.Count()
	if err != nil {
		return nil, err
	}
	pending, err := uc.ComplaintRepo.CountByStatus(entities.ComplaintPending)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalApartments:   total,
		Occupied:          occupied,
		Vacant:            total - occupied,
		Residents:         residents,
		Notices:           notices,
		PendingComplaints: pending,
	}, nil
}
