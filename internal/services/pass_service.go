package services

import (
	"context"

	"buspass/internal/domain"
	"buspass/internal/domain/models"
	"buspass/internal/repositories"
	"buspass/internal/utils"
)

type PassService struct {
	PassRepo  repositories.PassRepo
	RequestID string
}

func (s PassService) List(ctx context.Context) ([]models.PassRow, error) {
	rows, err := s.PassRepo.List(ctx)
	if err != nil {
		utils.LogEvent(s.RequestID, "pass", "list_failed", err.Error())
		return nil, domain.StoreUnavailableError{Op: "query", Err: err}
	}
	return rows, nil
}
