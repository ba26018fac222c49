package stocks

import (
	"context"

	"stockroom/internal/repository"
	"stockroom/pkg/auditlog"
	"stockroom/pkg/models"

	"github.com/stretchr/testify/mock"
)

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) LockDateCode(ctx context.Context, tx repository.Querier, dateCode string) error {
	args := m.Called(ctx, tx, dateCode)
	return args.Error(0)
}

func (m *MockStockRepository) LastStockID(ctx context.Context, tx repository.Querier, dateCode string) (string, error) {
	args := m.Called(ctx, tx, dateCode)
	return args.String(0), args.Error(1)
}

func (m *MockStockRepository) ItemNameTaken(ctx context.Context, tx repository.Querier, itemName, unit, excludeID string) (bool, error) {
	args := m.Called(ctx, tx, itemName, unit, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockRepository) StockExists(ctx context.Context, q repository.Querier, id string) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockRepository) InsertStock(ctx context.Context, tx repository.Querier, id string, fields models.StockFields) error {
	args := m.Called(ctx, tx, id, fields)
	return args.Error(0)
}

func (m *MockStockRepository) UpdateStock(ctx context.Context, tx repository.Querier, id string, fields models.StockFields) (bool, error) {
	args := m.Called(ctx, tx, id, fields)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockRepository) IncreaseQuantity(ctx context.Context, id string, quantity int) (bool, error) {
	args := m.Called(ctx, id, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockRepository) DeleteStock(ctx context.Context, tx repository.Querier, id string) (bool, error) {
	args := m.Called(ctx, tx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockRepository) SupplierIDs(ctx context.Context, tx repository.Querier, stockID string) ([]int, error) {
	args := m.Called(ctx, tx, stockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockStockRepository) SyncSuppliers(ctx context.Context, tx repository.Querier, stockID string, supplierIDs []int) error {
	args := m.Called(ctx, tx, stockID, supplierIDs)
	return args.Error(0)
}

func (m *MockStockRepository) SkuAliases(ctx context.Context, tx repository.Querier, stockID string) ([]string, error) {
	args := m.Called(ctx, tx, stockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStockRepository) InsertSku(ctx context.Context, q repository.Querier, stockID, alias string) (*models.Sku, error) {
	args := m.Called(ctx, q, stockID, alias)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sku), args.Error(1)
}

func (m *MockStockRepository) DeleteSkus(ctx context.Context, tx repository.Querier, stockID string) error {
	args := m.Called(ctx, tx, stockID)
	return args.Error(0)
}

func (m *MockStockRepository) DeleteSkuByAlias(ctx context.Context, stockID, alias string) (bool, error) {
	args := m.Called(ctx, stockID, alias)
	return args.Bool(0), args.Error(1)
}

func (m *MockStockRepository) GetStock(ctx context.Context, id string) (*models.Stock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stock), args.Error(1)
}

func (m *MockStockRepository) GetStocksBy(ctx context.Context, conditions repository.QueryBuilder) ([]models.Stock, error) {
	args := m.Called(ctx, conditions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Stock), args.Error(1)
}

type MockReferenceLookup struct {
	mock.Mock
}

func (m *MockReferenceLookup) CategoryExists(ctx context.Context, q repository.Querier, categoryID int) (bool, error) {
	args := m.Called(ctx, q, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceLookup) ExistingSupplierIDs(ctx context.Context, q repository.Querier, ids []int) ([]int, error) {
	args := m.Called(ctx, q, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type MockAuditLog struct {
	mock.Mock
}

func (m *MockAuditLog) Log(ctx context.Context, entry auditlog.Entry, item auditlog.Auditable) {
	m.Called(ctx, entry, item)
}

// fakeTransactor runs fn directly and counts how the transaction ended.
type fakeTransactor struct {
	committed  int
	rolledBack int
}

func (f *fakeTransactor) WithTransaction(ctx context.Context, fn func(tx repository.Querier) error) error {
	if err := fn(nil); err != nil {
		f.rolledBack++
		return err
	}
	f.committed++
	return nil
}
