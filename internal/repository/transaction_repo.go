package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// TransactionRepository defines the data access contract for the distribution
// journal. Items are always loaded with their transaction — the derivation
// engine needs full line detail on every read.
type TransactionRepository interface {
	Create(ctx context.Context, t *model.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
	// Update replaces the transaction's items wholesale and saves the new
	// total in one DB transaction.
	Update(ctx context.Context, t *model.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error

	DeleteAllTx(tx *gorm.DB) error
	InsertAllTx(tx *gorm.DB, txs []model.Transaction) error

	DB() *gorm.DB
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).Preload("Items").First(&t, "id = ?", id).Error
	return &t, err
}

func (r *transactionRepo) List(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).Preload("Items").Order("issued_on ASC, created_at ASC").Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) Update(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", t.ID).Delete(&model.TransactionItem{}).Error; err != nil {
			return err
		}
		for i := range t.Items {
			t.Items[i].ID = 0
			t.Items[i].TransactionID = t.ID
		}
		return tx.Save(t).Error
	})
}

func (r *transactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).Delete(&model.TransactionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Transaction{}, "id = ?", id).Error
	})
}

func (r *transactionRepo) DeleteAllTx(tx *gorm.DB) error {
	if err := tx.Where("1 = 1").Delete(&model.TransactionItem{}).Error; err != nil {
		return err
	}
	return tx.Where("1 = 1").Delete(&model.Transaction{}).Error
}

func (r *transactionRepo) InsertAllTx(tx *gorm.DB, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	return tx.Create(&txs).Error
}

func (r *transactionRepo) DB() *gorm.DB { return r.db }
