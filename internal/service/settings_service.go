package service

import (
	"context"
	"errors"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/dto"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/repository"
)

type SettingsService interface {
	Get(ctx context.Context) (*model.ReportSettings, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (*model.ReportSettings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (*model.ReportSettings, error) {
	return s.repo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (*model.ReportSettings, error) {
	if !req.ExchangeRate.IsPositive() || !req.GbpExchangeRate.IsPositive() {
		return nil, errors.New("exchange rates must be positive")
	}
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg.VesselName = req.VesselName
	cfg.MasterName = req.MasterName
	cfg.ReportMonth = req.ReportMonth
	cfg.ReportYear = req.ReportYear
	cfg.ExchangeRate = req.ExchangeRate
	cfg.GbpExchangeRate = req.GbpExchangeRate
	cfg.UseGbpForPurchases = req.UseGbpForPurchases
	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
