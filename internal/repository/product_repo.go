package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// ProductRepository defines the data access contract for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// RolloverStockTx folds the derived final stock into the next period's
	// initial stock and clears the three supply slots. Tx-only: rollover must
	// be all-or-nothing.
	RolloverStockTx(tx *gorm.DB, id uuid.UUID, newInitialStock int) error
	DeleteAllTx(tx *gorm.DB) error
	InsertAllTx(tx *gorm.DB, products []model.Product) error

	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) RolloverStockTx(tx *gorm.DB, id uuid.UUID, newInitialStock int) error {
	return tx.Model(&model.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"initial_stock": newInitialStock,
		"added_stock1":  0,
		"added_stock2":  0,
		"added_stock3":  0,
	}).Error
}

func (r *productRepo) DeleteAllTx(tx *gorm.DB) error {
	return tx.Where("1 = 1").Delete(&model.Product{}).Error
}

func (r *productRepo) InsertAllTx(tx *gorm.DB, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	return tx.Create(&products).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
