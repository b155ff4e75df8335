package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// SettingsRepository manages the singleton ReportSettings row. Get creates
// the default row on first access so callers never see "no settings".
type SettingsRepository interface {
	Get(ctx context.Context) (*model.ReportSettings, error)
	Save(ctx context.Context, s *model.ReportSettings) error

	UpdatePeriodTx(tx *gorm.DB, month, year string) error
	SaveTx(tx *gorm.DB, s *model.ReportSettings) error

	DB() *gorm.DB
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) SettingsRepository { return &settingsRepo{db: db} }

func (r *settingsRepo) Get(ctx context.Context) (*model.ReportSettings, error) {
	var s model.ReportSettings
	err := r.db.WithContext(ctx).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = model.DefaultSettings(time.Now())
		if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	return &s, err
}

func (r *settingsRepo) Save(ctx context.Context, s *model.ReportSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *settingsRepo) UpdatePeriodTx(tx *gorm.DB, month, year string) error {
	return tx.Model(&model.ReportSettings{}).Where("1 = 1").Updates(map[string]interface{}{
		"report_month": month,
		"report_year":  year,
	}).Error
}

func (r *settingsRepo) SaveTx(tx *gorm.DB, s *model.ReportSettings) error {
	return tx.Save(s).Error
}

func (r *settingsRepo) DB() *gorm.DB { return r.db }
