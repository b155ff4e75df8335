package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/dto"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/repository"
)

type CrewService interface {
	Create(ctx context.Context, req dto.CreateCrewRequest) (*model.CrewMember, error)
	List(ctx context.Context, includeInactive bool) ([]model.CrewMember, error)
	Get(ctx context.Context, id uuid.UUID) (*model.CrewMember, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCrewRequest) (*model.CrewMember, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.CrewMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type crewService struct {
	repo repository.CrewRepository
}

func NewCrewService(repo repository.CrewRepository) CrewService {
	return &crewService{repo: repo}
}

func (s *crewService) Create(ctx context.Context, req dto.CreateCrewRequest) (*model.CrewMember, error) {
	currency := req.Currency
	if currency == "" {
		currency = model.CurrencyEUR
	}
	m := &model.CrewMember{
		ID:       uuid.New(),
		Name:     req.Name,
		Rank:     req.Rank,
		IsActive: true,
		Currency: currency,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// List returns members in rank order, the same ordering the distribution
// screen and the order sheet use.
func (s *crewService) List(ctx context.Context, includeInactive bool) ([]model.CrewMember, error) {
	members, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	return ledger.SortCrew(members), nil
}

func (s *crewService) Get(ctx context.Context, id uuid.UUID) (*model.CrewMember, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *crewService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCrewRequest) (*model.CrewMember, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	m.Name = req.Name
	m.Rank = req.Rank
	if req.Currency != "" {
		m.Currency = req.Currency
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *crewService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.CrewMember, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	m.IsActive = active
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *crewService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
