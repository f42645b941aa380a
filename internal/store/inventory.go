package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
)

// consumePart deducts qty from a part's stock inside the caller's transaction.
// The deduction is a single guarded UPDATE (units_in_stock >= qty in the WHERE
// clause), so two concurrent work orders can never both decrement past zero:
// whichever statement runs second sees the already-reduced counter. The
// mutation only becomes visible if the enclosing transaction commits.
//
// The returned cost is the snapshot value for the line: the explicit cost if
// the caller supplied one, the part's current unit cost otherwise.
func consumePart(tx *gorm.DB, partID int64, qty int, explicitCost *decimal.Decimal) (*model.Part, decimal.Decimal, error) {
	if qty <= 0 {
		return nil, decimal.Zero, ErrInvalidQuantity
	}

	var part model.Part
	if err := tx.First(&part, partID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, decimal.Zero, &PartNotFoundError{PartID: partID}
		}
		return nil, decimal.Zero, fmt.Errorf("failed to load part %d: %w", partID, err)
	}

	res := tx.Model(&model.Part{}).
		Where("id = ? AND units_in_stock >= ?", partID, qty).
		UpdateColumn("units_in_stock", gorm.Expr("units_in_stock - ?", qty))
	if res.Error != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to deduct stock for part %d: %w", partID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, decimal.Zero, &InsufficientStockError{
			PartName: part.PartName,
			Have:     part.UnitsInStock,
			Want:     qty,
		}
	}
	part.UnitsInStock -= qty

	cost := part.UnitCost
	if explicitCost != nil {
		cost = *explicitCost
	}
	return &part, cost, nil
}

// AdjustStock applies a manual stock delta to a part. A negative delta that
// would take the counter below zero is rejected without mutation.
func (s *gormStore) AdjustStock(ctx context.Context, partID int64, amount int) (*model.Part, error) {
	var part model.Part
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&part, partID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &PartNotFoundError{PartID: partID}
			}
			return fmt.Errorf("failed to load part %d: %w", partID, err)
		}

		res := tx.Model(&model.Part{}).
			Where("id = ? AND units_in_stock + ? >= 0", partID, amount).
			UpdateColumn("units_in_stock", gorm.Expr("units_in_stock + ?", amount))
		if res.Error != nil {
			return fmt.Errorf("failed to adjust stock for part %d: %w", partID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNegativeStock
		}

		return tx.First(&part, partID).Error
	})
	if err != nil {
		return nil, err
	}
	return &part, nil
}
