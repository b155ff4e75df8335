package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/repository"
)

// RolloverService performs the two destructive batch transforms: the monthly
// close-out and the full hard reset. Both run inside a single DB transaction.
type RolloverService interface {
	CloseMonth(ctx context.Context, nextMonth, nextYear string) (*model.ReportSettings, error)
	HardReset(ctx context.Context) (*model.ReportSettings, error)
}

type rolloverService struct {
	crewRepo    repository.CrewRepository
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	settings    repository.SettingsRepository
	now         func() time.Time
}

func NewRolloverService(crewRepo repository.CrewRepository, productRepo repository.ProductRepository, txRepo repository.TransactionRepository, settings repository.SettingsRepository) RolloverService {
	return &rolloverService{
		crewRepo:    crewRepo,
		productRepo: productRepo,
		txRepo:      txRepo,
		settings:    settings,
		now:         time.Now,
	}
}

// CloseMonth carries each product's derived current stock into the next
// period's initial stock, zeroes the three supply slots, clears the journal,
// drops signed-off crew and advances the reporting period. Atomic: a failure
// at any step leaves the old period intact.
func (s *rolloverService) CloseMonth(ctx context.Context, nextMonth, nextYear string) (*model.ReportSettings, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Derive the carry-over stock before anything is deleted. Negative levels
	// carry over as-is so the over-issuance stays visible next month.
	carry := make(map[string]int, len(products))
	for _, p := range products {
		carry[p.ID.String()] = ledger.CurrentStock(p, txs)
	}

	err = runTx(ctx, s.settings.DB(), func(tx *gorm.DB) error {
		for _, p := range products {
			if err := s.productRepo.RolloverStockTx(tx, p.ID, carry[p.ID.String()]); err != nil {
				return err
			}
		}
		if err := s.txRepo.DeleteAllTx(tx); err != nil {
			return err
		}
		if err := s.crewRepo.DeleteInactiveTx(tx); err != nil {
			return err
		}
		return s.settings.UpdatePeriodTx(tx, nextMonth, nextYear)
	})
	if err != nil {
		return nil, err
	}
	return s.settings.Get(ctx)
}

// HardReset wipes crew, catalog and journal and restores the default
// configuration. There is no undo beyond an external backup file.
func (s *rolloverService) HardReset(ctx context.Context) (*model.ReportSettings, error) {
	defaults := model.DefaultSettings(s.now())
	err := runTx(ctx, s.settings.DB(), func(tx *gorm.DB) error {
		if err := s.txRepo.DeleteAllTx(tx); err != nil {
			return err
		}
		if err := s.crewRepo.DeleteAllTx(tx); err != nil {
			return err
		}
		if err := s.productRepo.DeleteAllTx(tx); err != nil {
			return err
		}
		return s.settings.SaveTx(tx, &defaults)
	})
	if err != nil {
		return nil, err
	}
	return &defaults, nil
}
