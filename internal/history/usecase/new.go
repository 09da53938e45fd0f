package usecase

import (
	"percept-srv/internal/history"
	"percept-srv/internal/history/repository"
	"percept-srv/pkg/log"
)

// implUseCase - Implementation của UseCase interface
type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

// New - Factory function
func New(l log.Logger, repo repository.Repository) history.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
