package service

import (
	"context"
	"time"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/report"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/repository"
)

// ReportService loads the current state and runs the pure aggregators over
// it. Every report is scoped to the active reporting period from settings;
// only History spans the whole journal.
type ReportService interface {
	Payroll(ctx context.Context) (*report.PayrollReport, error)
	Inventory(ctx context.Context) ([]report.InventoryRow, error)
	Monthly(ctx context.Context) (*report.MonthlyReport, error)
	Representation(ctx context.Context) (*report.RepresentationReport, error)
	History(ctx context.Context, recipient string) ([]model.Transaction, error)
	OrderSheet(ctx context.Context) (*report.OrderSheet, error)
	Dashboard(ctx context.Context) (*report.DashboardStats, error)
	Settings(ctx context.Context) (*model.ReportSettings, error)
}

type reportService struct {
	crewRepo    repository.CrewRepository
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	settings    repository.SettingsRepository
	now         func() time.Time
}

func NewReportService(crewRepo repository.CrewRepository, productRepo repository.ProductRepository, txRepo repository.TransactionRepository, settings repository.SettingsRepository) ReportService {
	return &reportService{
		crewRepo:    crewRepo,
		productRepo: productRepo,
		txRepo:      txRepo,
		settings:    settings,
		now:         time.Now,
	}
}

// periodJournal returns the journal restricted to the active reporting
// period, plus the settings it came from.
func (s *reportService) periodJournal(ctx context.Context) ([]model.Transaction, *model.ReportSettings, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ledger.FilterByPeriod(txs, cfg.ReportMonth, cfg.ReportYear), cfg, nil
}

func (s *reportService) Payroll(ctx context.Context) (*report.PayrollReport, error) {
	crew, err := s.crewRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	txs, cfg, err := s.periodJournal(ctx)
	if err != nil {
		return nil, err
	}
	r := report.Payroll(crew, txs, cfg.ExchangeRate)
	return &r, nil
}

func (s *reportService) Inventory(ctx context.Context) ([]report.InventoryRow, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	// Inventory derives live stock, so it reads the full journal rather than
	// the period slice.
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.Inventory(products, txs), nil
}

func (s *reportService) Monthly(ctx context.Context) (*report.MonthlyReport, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, _, err := s.periodJournal(ctx)
	if err != nil {
		return nil, err
	}
	r := report.Monthly(products, txs)
	return &r, nil
}

func (s *reportService) Representation(ctx context.Context) (*report.RepresentationReport, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, _, err := s.periodJournal(ctx)
	if err != nil {
		return nil, err
	}
	r := report.Representation(products, txs)
	return &r, nil
}

func (s *reportService) History(ctx context.Context, recipient string) ([]model.Transaction, error) {
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.History(txs, recipient), nil
}

func (s *reportService) OrderSheet(ctx context.Context) (*report.OrderSheet, error) {
	crew, err := s.crewRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sheet := report.BuildOrderSheet(crew, products, s.now())
	return &sheet, nil
}

func (s *reportService) Dashboard(ctx context.Context) (*report.DashboardStats, error) {
	crew, err := s.crewRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := report.Dashboard(crew, products, txs)
	return &stats, nil
}

func (s *reportService) Settings(ctx context.Context) (*model.ReportSettings, error) {
	return s.settings.Get(ctx)
}
