package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// CrewRepository defines the data access contract for crew members. Services
// depend on this interface, not on the concrete GORM implementation, enabling
// clean unit testing via in-memory stubs.
type CrewRepository interface {
	Create(ctx context.Context, m *model.CrewMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CrewMember, error)
	List(ctx context.Context, includeInactive bool) ([]model.CrewMember, error)
	Update(ctx context.Context, m *model.CrewMember) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Used inside batch transactions (rollover, restore) — callers pass the tx.
	DeleteInactiveTx(tx *gorm.DB) error
	DeleteAllTx(tx *gorm.DB) error
	InsertAllTx(tx *gorm.DB, members []model.CrewMember) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type crewRepo struct{ db *gorm.DB }

func NewCrewRepository(db *gorm.DB) CrewRepository { return &crewRepo{db: db} }

func (r *crewRepo) Create(ctx context.Context, m *model.CrewMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *crewRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CrewMember, error) {
	var m model.CrewMember
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *crewRepo) List(ctx context.Context, includeInactive bool) ([]model.CrewMember, error) {
	var members []model.CrewMember
	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("name ASC").Find(&members).Error
	return members, err
}

func (r *crewRepo) Update(ctx context.Context, m *model.CrewMember) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *crewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CrewMember{}, "id = ?", id).Error
}

func (r *crewRepo) DeleteInactiveTx(tx *gorm.DB) error {
	return tx.Where("is_active = ?", false).Delete(&model.CrewMember{}).Error
}

func (r *crewRepo) DeleteAllTx(tx *gorm.DB) error {
	return tx.Where("1 = 1").Delete(&model.CrewMember{}).Error
}

func (r *crewRepo) InsertAllTx(tx *gorm.DB, members []model.CrewMember) error {
	if len(members) == 0 {
		return nil
	}
	return tx.Create(&members).Error
}

func (r *crewRepo) DB() *gorm.DB { return r.db }
