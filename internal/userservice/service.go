// Package userservice manages business logic layer of users.
package userservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/wallet-tracker/internal/domain"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo Repo
}

// New returns user service struct to manage user business logic.
func New(ur Repo) *Service {
	return &Service{repo: ur}
}

// Get returns the profile for the given user ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return user, err
	}

	return user, nil
}
