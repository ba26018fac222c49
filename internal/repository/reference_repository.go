package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

// CategoryExists checks the categories table owned by the catalog module.
func (r *Repository) CategoryExists(ctx context.Context, q Querier, categoryID int) (bool, error) {
	var count int
	_, err := r.querier(q).From("categories").
		Select(goqu.COUNT("*")).
		Where(goqu.Ex{"id": categoryID}).
		Executor().
		ScanValContext(ctx, &count)
	if err != nil {
		return false, fmt.Errorf("failed to check category %d: %w", categoryID, err)
	}

	return count > 0, nil
}

// ExistingSupplierIDs returns the subset of ids present in the suppliers table.
func (r *Repository) ExistingSupplierIDs(ctx context.Context, q Querier, ids []int) ([]int, error) {
	existing := []int{}
	if len(ids) == 0 {
		return existing, nil
	}

	err := r.querier(q).From("suppliers").
		Select("id").
		Where(goqu.Ex{"id": ids}).
		Order(goqu.I("id").Asc()).
		Executor().
		ScanValsContext(ctx, &existing)
	if err != nil {
		return nil, fmt.Errorf("failed to check suppliers: %w", err)
	}

	return existing, nil
}

func (r *Repository) querier(q Querier) Querier {
	if q == nil {
		return r.GoquDBWrapper
	}
	return q
}
