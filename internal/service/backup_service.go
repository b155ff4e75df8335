package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/backup"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/repository"
)

// BackupService exports the full application state as a JSON bundle and
// restores from one. Restore replaces everything — it is the handover path,
// not a merge.
type BackupService interface {
	Export(ctx context.Context) ([]byte, error)
	Restore(ctx context.Context, data []byte) (*backup.Bundle, error)
}

type backupService struct {
	crewRepo    repository.CrewRepository
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	settings    repository.SettingsRepository
	now         func() time.Time
}

func NewBackupService(crewRepo repository.CrewRepository, productRepo repository.ProductRepository, txRepo repository.TransactionRepository, settings repository.SettingsRepository) BackupService {
	return &backupService{
		crewRepo:    crewRepo,
		productRepo: productRepo,
		txRepo:      txRepo,
		settings:    settings,
		now:         time.Now,
	}
}

func (s *backupService) Export(ctx context.Context) ([]byte, error) {
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
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return backup.Encode(crew, products, txs, cfg, s.now())
}

// Restore decodes the bundle and swaps it in atomically. The previous state
// is gone after this returns without error.
func (s *backupService) Restore(ctx context.Context, data []byte) (*backup.Bundle, error) {
	bundle, err := backup.Decode(data, s.now())
	if err != nil {
		return nil, err
	}

	err = runTx(ctx, s.settings.DB(), func(tx *gorm.DB) error {
		if err := s.txRepo.DeleteAllTx(tx); err != nil {
			return err
		}
		if err := s.crewRepo.DeleteAllTx(tx); err != nil {
			return err
		}
		if err := s.productRepo.DeleteAllTx(tx); err != nil {
			return err
		}
		if err := s.crewRepo.InsertAllTx(tx, bundle.Crew); err != nil {
			return err
		}
		if err := s.productRepo.InsertAllTx(tx, bundle.Products); err != nil {
			return err
		}
		if err := s.txRepo.InsertAllTx(tx, bundle.Transactions); err != nil {
			return err
		}
		cfg := bundle.Settings
		if cfg == nil {
			defaults := model.DefaultSettings(s.now())
			cfg = &defaults
		}
		return s.settings.SaveTx(tx, cfg)
	})
	if err != nil {
		return nil, err
	}
	return bundle, nil
}
