package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
)

// ── In-memory repository stubs ───────────────────────────────────────────────
//
// All Tx-variants take the nil *gorm.DB that runTx passes in stub mode and
// mutate the in-memory state directly, so batch transforms are testable
// without a database.

var errStubNotFound = errors.New("not found")

type stubCrewRepo struct {
	members map[uuid.UUID]*model.CrewMember
}

func newStubCrewRepo() *stubCrewRepo {
	return &stubCrewRepo{members: make(map[uuid.UUID]*model.CrewMember)}
}

func (r *stubCrewRepo) Create(_ context.Context, m *model.CrewMember) error {
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *stubCrewRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CrewMember, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, errStubNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *stubCrewRepo) List(_ context.Context, includeInactive bool) ([]model.CrewMember, error) {
	var out []model.CrewMember
	for _, m := range r.members {
		if includeInactive || m.IsActive {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubCrewRepo) Update(_ context.Context, m *model.CrewMember) error {
	if _, ok := r.members[m.ID]; !ok {
		return errStubNotFound
	}
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *stubCrewRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.members, id)
	return nil
}

func (r *stubCrewRepo) DeleteInactiveTx(_ *gorm.DB) error {
	for id, m := range r.members {
		if !m.IsActive {
			delete(r.members, id)
		}
	}
	return nil
}

func (r *stubCrewRepo) DeleteAllTx(_ *gorm.DB) error {
	r.members = make(map[uuid.UUID]*model.CrewMember)
	return nil
}

func (r *stubCrewRepo) InsertAllTx(_ *gorm.DB, members []model.CrewMember) error {
	for _, m := range members {
		cp := m
		r.members[m.ID] = &cp
	}
	return nil
}

func (r *stubCrewRepo) DB() *gorm.DB { return nil }

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errStubNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return errStubNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) RolloverStockTx(_ *gorm.DB, id uuid.UUID, newInitialStock int) error {
	p, ok := r.products[id]
	if !ok {
		return errStubNotFound
	}
	p.InitialStock = newInitialStock
	p.AddedStock1, p.AddedStock2, p.AddedStock3 = 0, 0, 0
	return nil
}

func (r *stubProductRepo) DeleteAllTx(_ *gorm.DB) error {
	r.products = make(map[uuid.UUID]*model.Product)
	return nil
}

func (r *stubProductRepo) InsertAllTx(_ *gorm.DB, products []model.Product) error {
	for _, p := range products {
		cp := p
		r.products[p.ID] = &cp
	}
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

type stubTransactionRepo struct {
	txs []model.Transaction
}

func newStubTransactionRepo() *stubTransactionRepo { return &stubTransactionRepo{} }

func (r *stubTransactionRepo) Create(_ context.Context, t *model.Transaction) error {
	r.txs = append(r.txs, *t)
	return nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Transaction, error) {
	for _, t := range r.txs {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubTransactionRepo) List(_ context.Context) ([]model.Transaction, error) {
	return append([]model.Transaction(nil), r.txs...), nil
}

func (r *stubTransactionRepo) Update(_ context.Context, t *model.Transaction) error {
	for i := range r.txs {
		if r.txs[i].ID == t.ID {
			r.txs[i] = *t
			return nil
		}
	}
	return errStubNotFound
}

func (r *stubTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.txs {
		if r.txs[i].ID == id {
			r.txs = append(r.txs[:i], r.txs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubTransactionRepo) DeleteAllTx(_ *gorm.DB) error {
	r.txs = nil
	return nil
}

func (r *stubTransactionRepo) InsertAllTx(_ *gorm.DB, txs []model.Transaction) error {
	r.txs = append(r.txs, txs...)
	return nil
}

func (r *stubTransactionRepo) DB() *gorm.DB { return nil }

type stubSettingsRepo struct {
	settings model.ReportSettings
}

func newStubSettingsRepo() *stubSettingsRepo {
	return &stubSettingsRepo{
		settings: model.DefaultSettings(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func (r *stubSettingsRepo) Get(_ context.Context) (*model.ReportSettings, error) {
	cp := r.settings
	return &cp, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, s *model.ReportSettings) error {
	r.settings = *s
	return nil
}

func (r *stubSettingsRepo) UpdatePeriodTx(_ *gorm.DB, month, year string) error {
	r.settings.ReportMonth = month
	r.settings.ReportYear = year
	return nil
}

func (r *stubSettingsRepo) SaveTx(_ *gorm.DB, s *model.ReportSettings) error {
	r.settings = *s
	return nil
}

func (r *stubSettingsRepo) DB() *gorm.DB { return nil }
