package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/dto"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/ledger"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/model"
	"github.com/artemsultanov-dotcom/Bonded-Stores-Manager-v2/internal/repository"
)

// JournalService manages the distribution journal lifecycle: checkout
// validation + append, the correction workflow (edit/delete with total
// recomputation), and reads for the history views.
type JournalService interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*model.Transaction, error)
	// ApplyEdit replaces a transaction's items. Returns (nil, true, nil) when
	// the edit emptied the item list and the transaction was removed, and
	// (nil, false, nil) when the id does not exist (no-op by design).
	ApplyEdit(ctx context.Context, id uuid.UUID, req dto.EditTransactionRequest) (*model.Transaction, bool, error)
	Remove(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Transaction, error)
}

type journalService struct {
	repo        repository.TransactionRepository
	crewRepo    repository.CrewRepository
	productRepo repository.ProductRepository
}

func NewJournalService(repo repository.TransactionRepository, crewRepo repository.CrewRepository, productRepo repository.ProductRepository) JournalService {
	return &journalService{repo: repo, crewRepo: crewRepo, productRepo: productRepo}
}

// Checkout validates the cart and recipient, snapshots names and prices, and
// appends the transaction. Validation happens here, before any mutation — the
// journal append itself never partially applies.
func (s *journalService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*model.Transaction, error) {
	issuedOn, err := time.Parse("2006-01-02", req.IssuedOn)
	if err != nil {
		return nil, fmt.Errorf("invalid issue date: %w", err)
	}
	if len(req.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	tx := model.Transaction{
		ID:       uuid.New(),
		IssuedOn: issuedOn,
		Type:     req.Type,
	}

	switch req.Type {
	case model.TypeCrew:
		memberID, err := uuid.Parse(req.RecipientID)
		if err != nil {
			return nil, errors.New("a crew member must be selected")
		}
		member, err := s.crewRepo.FindByID(ctx, memberID)
		if err != nil {
			return nil, errors.New("crew member not found")
		}
		if !member.IsActive {
			return nil, fmt.Errorf("%s is signed off and cannot receive goods", member.Name)
		}
		tx.RecipientID = member.ID.String()
		tx.RecipientName = member.Name
	case model.TypeRepresentation:
		if req.RecipientName == "" {
			return nil, errors.New("a representative name is required")
		}
		repType := req.RepresentationType
		if repType == "" {
			repType = model.RepCharterer
		}
		tx.RecipientID = req.RecipientName
		tx.RecipientName = req.RecipientName
		tx.RepresentationType = repType
	default:
		return nil, fmt.Errorf("unknown transaction type %q", req.Type)
	}

	// Resolve products and verify stock against the derived ledger before
	// committing anything.
	journal, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, errors.New("item quantities must be at least 1")
		}
		pid, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q", line.ProductID)
		}
		p, err := s.productRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("product %s not found", line.ProductID)
		}
		if stock := ledger.CurrentStock(*p, journal); line.Quantity > stock {
			return nil, fmt.Errorf("not enough stock of %s: %d requested, %d available", p.Name, line.Quantity, stock)
		}

		tx.Items = append(tx.Items, model.TransactionItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   p.Price,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	tx.TotalAmount = total

	if err := s.repo.Create(ctx, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *journalService) ApplyEdit(ctx context.Context, id uuid.UUID, req dto.EditTransactionRequest) (*model.Transaction, bool, error) {
	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, nil
	}

	existing := make(map[uuid.UUID]model.TransactionItem, len(tx.Items))
	for _, item := range tx.Items {
		existing[item.ProductID] = item
	}

	var items []model.TransactionItem
	total := decimal.Zero
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			continue // reduced to zero: dropped, not stored
		}
		pid, err := uuid.Parse(line.ProductID)
		if err != nil {
			continue
		}

		var item model.TransactionItem
		if prev, ok := existing[pid]; ok {
			// Existing line keeps its name/price snapshots.
			item = prev
			item.Quantity = line.Quantity
		} else {
			p, err := s.productRepo.FindByID(ctx, pid)
			if err != nil {
				continue // dangling reference: tolerated, contributes nothing
			}
			item = model.TransactionItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    line.Quantity,
				UnitPrice:   p.Price,
			}
		}
		item.ID = 0
		item.TransactionID = tx.ID
		items = append(items, item)
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	// An edit that empties the item list removes the transaction entirely —
	// zero-item records are never persisted.
	if len(items) == 0 {
		if err := s.repo.Delete(ctx, id); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	tx.Items = items
	tx.TotalAmount = total
	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, false, err
	}
	return tx, false, nil
}

// Remove deletes a transaction; a nonexistent id is a no-op.
func (s *journalService) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil
	}
	return s.repo.Delete(ctx, id)
}

func (s *journalService) List(ctx context.Context) ([]model.Transaction, error) {
	return s.repo.List(ctx)
}
