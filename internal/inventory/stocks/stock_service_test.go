package stocks

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"stockroom/pkg/auditlog"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var june2024 = time.Date(2024, time.June, 14, 10, 30, 0, 0, time.UTC)

type serviceFixture struct {
	service *StockService
	repo    *MockStockRepository
	refs    *MockReferenceLookup
	audit   *MockAuditLog
	tx      *fakeTransactor
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		repo:  new(MockStockRepository),
		refs:  new(MockReferenceLookup),
		audit: new(MockAuditLog),
		tx:    &fakeTransactor{},
	}
	f.service = NewStockService(f.tx, f.repo, f.refs, f.audit, zap.NewNop())
	f.service.now = func() time.Time { return june2024 }
	return f
}

func intPtr(v int) *int { return &v }

func widgetRequest(suppliers ...*int) CreateStockRequest {
	date, _ := models.ParseDate("2024-06-14")
	price := decimal.RequireFromString("12.50")
	buying := decimal.RequireFromString("8.00")
	return CreateStockRequest{
		ItemName:      "Widget",
		CategoryID:    intPtr(1),
		Suppliers:     suppliers,
		UnitOfMeasure: "pcs",
		PhysicalCount: intPtr(10),
		OnHand:        intPtr(10),
		Sold:          intPtr(0),
		Date:          &date,
		PricePerUnit:  &price,
		BuyingPrice:   &buying,
	}
}

func (f *serviceFixture) expectValidReferences(suppliers []int) {
	f.repo.On("ItemNameTaken", mock.Anything, mock.Anything, "Widget", "pcs", mock.Anything).Return(false, nil)
	f.refs.On("CategoryExists", mock.Anything, mock.Anything, 1).Return(true, nil)
	if len(suppliers) > 0 {
		f.refs.On("ExistingSupplierIDs", mock.Anything, mock.Anything, suppliers).Return(suppliers, nil)
	}
}

func TestCreateStockAssignsSequentialIdentifiers(t *testing.T) {
	f := newServiceFixture()
	f.expectValidReferences([]int{1})
	f.repo.On("LockDateCode", mock.Anything, mock.Anything, "2406").Return(nil)
	f.repo.On("LastStockID", mock.Anything, mock.Anything, "2406").Return("", nil).Once()
	f.repo.On("LastStockID", mock.Anything, mock.Anything, "2406").Return("2406001", nil).Once()
	f.repo.On("InsertStock", mock.Anything, mock.Anything, "2406001", mock.Anything).Return(nil).Once()
	f.repo.On("InsertStock", mock.Anything, mock.Anything, "2406002", mock.Anything).Return(nil).Once()
	f.repo.On("SyncSuppliers", mock.Anything, mock.Anything, mock.Anything, []int{1}).Return(nil).Twice()
	f.repo.On("GetStock", mock.Anything, "2406001").Return(&models.Stock{ID: "2406001", OnHand: 10}, nil)
	f.repo.On("GetStock", mock.Anything, "2406002").Return(&models.Stock{ID: "2406002", OnHand: 10}, nil)
	f.audit.On("Log", mock.Anything, mock.Anything, mock.Anything).Return()

	first, err := f.service.CreateStock(context.Background(), "jdoe", widgetRequest(intPtr(1)))
	require.NoError(t, err)
	second, err := f.service.CreateStock(context.Background(), "jdoe", widgetRequest(intPtr(1)))
	require.NoError(t, err)

	assert.Equal(t, "2406001", first.ID)
	assert.Equal(t, "2406002", second.ID)
	assert.Equal(t, 2, f.tx.committed)
	f.repo.AssertExpectations(t)
}

func TestCreateStockFiltersNullSuppliers(t *testing.T) {
	f := newServiceFixture()
	f.expectValidReferences([]int{2, 5})
	f.repo.On("LockDateCode", mock.Anything, mock.Anything, "2406").Return(nil)
	f.repo.On("LastStockID", mock.Anything, mock.Anything, "2406").Return("2406041", nil)
	f.repo.On("InsertStock", mock.Anything, mock.Anything, "2406042", mock.Anything).Return(nil)
	f.repo.On("SyncSuppliers", mock.Anything, mock.Anything, "2406042", []int{2, 5}).Return(nil).Once()
	f.repo.On("GetStock", mock.Anything, "2406042").Return(&models.Stock{ID: "2406042"}, nil)
	f.audit.On("Log", mock.Anything, mock.Anything, mock.Anything).Return()

	stock, err := f.service.CreateStock(context.Background(), "jdoe", widgetRequest(intPtr(5), nil, intPtr(2), intPtr(5)))

	require.NoError(t, err)
	assert.Equal(t, "2406042", stock.ID)
	f.repo.AssertExpectations(t)
}

func TestCreateStockProfilingModeSkipsSuppliers(t *testing.T) {
	f := newServiceFixture()
	f.expectValidReferences(nil)
	f.repo.On("LockDateCode", mock.Anything, mock.Anything, "2406").Return(nil)
	f.repo.On("LastStockID", mock.Anything, mock.Anything, "2406").Return("", nil)
	f.repo.On("InsertStock", mock.Anything, mock.Anything, "2406001", mock.Anything).Return(nil)
	f.repo.On("GetStock", mock.Anything, "2406001").Return(&models.Stock{ID: "2406001"}, nil)
	f.audit.On("Log", mock.Anything, mock.Anything, mock.Anything).Return()

	req := widgetRequest()
	req.IsProfiling = true
	_, err := f.service.CreateStock(context.Background(), "jdoe", req)

	require.NoError(t, err)
	f.repo.AssertNotCalled(t, "SyncSuppliers", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.refs.AssertNotCalled(t, "ExistingSupplierIDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateStockRequiresSuppliers(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service.CreateStock(context.Background(), "jdoe", widgetRequest())

	var verr *custom_error.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"The suppliers field is required."}, verr.Fields["suppliers"])
	f.repo.AssertNotCalled(t, "InsertStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateStockOnlyNullSuppliersIsConflict(t *testing.T) {
	f := newServiceFixture()
	f.expectValidReferences(nil)

	_, err := f.service.CreateStock(context.Background(), "jdoe", widgetRequest(nil, nil))

	var conflict *custom_error.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "At least one supplier is required for stocking in.", conflict.Message)
	assert.Equal(t, 1, f.tx.rolledBack)
	f.repo.AssertNotCalled(t, "InsertStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateStockReferenceErrors(t *testing.T) {
	f := newServiceFixture()
	f.repo.On("ItemNameTaken", mock.Anything, mock.Anything, "Widget", "pcs", "").Return(true, nil)
	f.refs.On("CategoryExists", mock.Anything, mock.Anything, 1).Return(false, nil)
	f.refs.On("ExistingSupplierIDs", mock.Anything, mock.Anything, []int{1, 9}).Return([]int{1}, nil)

	_, err := f.service.CreateStock(context.Background(), "jdoe", widgetRequest(intPtr(1), intPtr(9)))

	var verr *custom_error.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"The item name has already been taken."}, verr.Fields["item_name"])
	assert.Equal(t, []string{"The selected category id is invalid."}, verr.Fields["category_id"])
	assert.Equal(t, []string{"The selected suppliers.1 is invalid."}, verr.Fields["suppliers.1"])
	assert.NotContains(t, verr.Fields, "suppliers.0")
}

func TestCreateStockNormalizesUnit(t *testing.T) {
	f := newServiceFixture()
	f.expectValidReferences([]int{1})
	f.repo.On("LockDateCode", mock.Anything, mock.Anything, "2406").Return(nil)
	f.repo.On("LastStockID", mock.Anything, mock.Anything, "2406").Return("", nil)
	f.repo.On("InsertStock", mock.Anything, mock.Anything, "2406001", mock.MatchedBy(func(fields models.StockFields) bool {
		return fields.UnitOfMeasure == "pcs"
	})).Return(nil)
	f.repo.On("SyncSuppliers", mock.Anything, mock.Anything, "2406001", []int{1}).Return(nil)
	f.repo.On("GetStock", mock.Anything, "2406001").Return(&models.Stock{ID: "2406001"}, nil)
	f.audit.On("Log", mock.Anything, mock.Anything, mock.Anything).Return()

	req := widgetRequest(intPtr(1))
	req.UnitOfMeasure = " PCS "
	_, err := f.service.CreateStock(context.Background(), "jdoe", req)

	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

func TestCreateStockRollsBackWhenAttachFails(t *testing.T) {
	f := newServiceFixture()
	f.expectValidReferences([]int{1})
	f.repo.On("LockDateCode", mock.Anything, mock.Anything, "2406").Return(nil)
	f.repo.On("LastStockID", mock.Anything, mock.Anything, "2406").Return("", nil)
	f.repo.On("InsertStock", mock.Anything, mock.Anything, "2406001", mock.Anything).Return(nil)
	f.repo.On("SyncSuppliers", mock.Anything, mock.Anything, "2406001", []int{1}).Return(errors.New("attach failed"))

	_, err := f.service.CreateStock(context.Background(), "jdoe", widgetRequest(intPtr(1)))

	assert.EqualError(t, err, "attach failed")
	assert.Equal(t, 1, f.tx.rolledBack)
	assert.Equal(t, 0, f.tx.committed)
	f.repo.AssertNotCalled(t, "GetStock", mock.Anything, mock.Anything)
	f.audit.AssertNotCalled(t, "Log", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateStockMapsUniqueViolation(t *testing.T) {
	f := newServiceFixture()
	f.expectValidReferences([]int{1})
	f.repo.On("LockDateCode", mock.Anything, mock.Anything, "2406").Return(nil)
	f.repo.On("LastStockID", mock.Anything, mock.Anything, "2406").Return("", nil)
	f.repo.On("InsertStock", mock.Anything, mock.Anything, "2406001", mock.Anything).
		Return(&custom_error.UniqueViolationError{Constraint: itemNameUnitConstraint})

	_, err := f.service.CreateStock(context.Background(), "jdoe", widgetRequest(intPtr(1)))

	var verr *custom_error.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "item_name")
}

func TestCreateStockCounterExhausted(t *testing.T) {
	f := newServiceFixture()
	f.expectValidReferences([]int{1})
	f.repo.On("LockDateCode", mock.Anything, mock.Anything, "2406").Return(nil)
	f.repo.On("LastStockID", mock.Anything, mock.Anything, "2406").Return("2406999", nil)

	_, err := f.service.CreateStock(context.Background(), "jdoe", widgetRequest(intPtr(1)))

	var conflict *custom_error.ConflictError
	require.True(t, errors.As(err, &conflict))
	f.repo.AssertNotCalled(t, "InsertStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustIncoming(t *testing.T) {
	t.Run("defaults to one", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("StockExists", mock.Anything, mock.Anything, "2406001").Return(true, nil)
		f.repo.On("IncreaseQuantity", mock.Anything, "2406001", 1).Return(true, nil).Once()
		f.repo.On("GetStock", mock.Anything, "2406001").Return(&models.Stock{ID: "2406001", PhysicalCount: 11, OnHand: 11}, nil)
		f.audit.On("Log", mock.Anything, mock.Anything, mock.Anything).Return()

		stock, err := f.service.AdjustIncoming(context.Background(), "jdoe", "2406001", StockInRequest{})

		require.NoError(t, err)
		assert.Equal(t, 11, stock.OnHand)
		f.repo.AssertExpectations(t)
	})

	t.Run("records quantity in stock log", func(t *testing.T) {
		f := newServiceFixture()
		stock := &models.Stock{ID: "2406001"}
		f.repo.On("StockExists", mock.Anything, mock.Anything, "2406001").Return(true, nil)
		f.repo.On("IncreaseQuantity", mock.Anything, "2406001", 7).Return(true, nil)
		f.repo.On("GetStock", mock.Anything, "2406001").Return(stock, nil)
		f.audit.On("Log", mock.Anything, mock.Anything, stock).Return().Once()

		_, err := f.service.AdjustIncoming(context.Background(), "jdoe", "2406001", StockInRequest{Quantity: intPtr(7), Reason: "delivery"})

		require.NoError(t, err)
		entry := f.audit.Calls[0].Arguments.Get(1).(auditlog.Entry)
		assert.Equal(t, models.StockLogActionStockIn, entry.Action)
		assert.Equal(t, 7, entry.Qty)
		assert.Equal(t, "delivery", entry.Reason)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("StockExists", mock.Anything, mock.Anything, "2406001").Return(true, nil)

		_, err := f.service.AdjustIncoming(context.Background(), "jdoe", "2406001", StockInRequest{Quantity: intPtr(0)})

		var verr *custom_error.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Quantity must be at least 1.", verr.Message)
		f.repo.AssertNotCalled(t, "IncreaseQuantity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects quantity above the limit", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("StockExists", mock.Anything, mock.Anything, "2406001").Return(true, nil)

		_, err := f.service.AdjustIncoming(context.Background(), "jdoe", "2406001", StockInRequest{Quantity: intPtr(maxStockIn + 1)})

		var verr *custom_error.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Quantity must not be greater than 1000000.", verr.Message)
		f.repo.AssertNotCalled(t, "IncreaseQuantity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("count overflow is a validation error", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("StockExists", mock.Anything, mock.Anything, "2406001").Return(true, nil)
		f.repo.On("IncreaseQuantity", mock.Anything, "2406001", 500).
			Return(false, fmt.Errorf("failed to increase quantity of stock 2406001: %w", &pq.Error{Code: "22003"}))

		_, err := f.service.AdjustIncoming(context.Background(), "jdoe", "2406001", StockInRequest{Quantity: intPtr(500)})

		var verr *custom_error.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Quantity would exceed the maximum stock count.", verr.Message)
		f.audit.AssertNotCalled(t, "Log", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown stock", func(t *testing.T) {
		f := newServiceFixture()
		f.repo.On("StockExists", mock.Anything, mock.Anything, "2406404").Return(false, nil)

		_, err := f.service.AdjustIncoming(context.Background(), "jdoe", "2406404", StockInRequest{Quantity: intPtr(3)})

		var notFound *custom_error.NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "Stock not found.", notFound.Message)
	})
}

func updateRequest() UpdateStockRequest {
	released, _ := models.ParseDate("2024-06-20")
	receiver := "Front desk"
	price := decimal.RequireFromString("12.50")
	buying := decimal.RequireFromString("8.00")
	return UpdateStockRequest{
		ItemName:      "Widget",
		CategoryID:    intPtr(1),
		UnitOfMeasure: "pcs",
		PhysicalCount: intPtr(10),
		OnHand:        intPtr(8),
		Sold:          intPtr(2),
		DateReleased:  &released,
		Receiver:      &receiver,
		PricePerUnit:  &price,
		BuyingPrice:   &buying,
	}
}

func TestUpdateStockMergesSuppliers(t *testing.T) {
	f := newServiceFixture()
	f.repo.On("StockExists", mock.Anything, mock.Anything, "2406001").Return(true, nil)
	f.repo.On("ItemNameTaken", mock.Anything, mock.Anything, "Widget", "pcs", "2406001").Return(false, nil)
	f.refs.On("CategoryExists", mock.Anything, mock.Anything, 1).Return(true, nil)
	f.refs.On("ExistingSupplierIDs", mock.Anything, mock.Anything, []int{2, 3}).Return([]int{2, 3}, nil)
	f.repo.On("UpdateStock", mock.Anything, mock.Anything, "2406001", mock.Anything).Return(true, nil)
	f.repo.On("SupplierIDs", mock.Anything, mock.Anything, "2406001").Return([]int{1, 3}, nil)
	f.repo.On("SyncSuppliers", mock.Anything, mock.Anything, "2406001", []int{1, 2, 3}).Return(nil).Once()
	f.repo.On("GetStock", mock.Anything, "2406001").Return(&models.Stock{ID: "2406001"}, nil)

	req := updateRequest()
	req.Suppliers = []*int{intPtr(3), intPtr(2), nil}
	_, err := f.service.UpdateStock(context.Background(), "2406001", req)

	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

func TestUpdateStockUpsertsSkus(t *testing.T) {
	f := newServiceFixture()
	f.repo.On("StockExists", mock.Anything, mock.Anything, "2406001").Return(true, nil)
	f.repo.On("ItemNameTaken", mock.Anything, mock.Anything, "Widget", "pcs", "2406001").Return(false, nil)
	f.refs.On("CategoryExists", mock.Anything, mock.Anything, 1).Return(true, nil)
	f.repo.On("UpdateStock", mock.Anything, mock.Anything, "2406001", mock.Anything).Return(true, nil)
	f.repo.On("SkuAliases", mock.Anything, mock.Anything, "2406001").Return([]string{"ABC"}, nil)
	f.repo.On("InsertSku", mock.Anything, mock.Anything, "2406001", "XYZ").Return(&models.Sku{ID: 2, Sku: "XYZ"}, nil).Once()
	f.repo.On("InsertSku", mock.Anything, mock.Anything, "2406001", "QRS").Return(&models.Sku{ID: 3, Sku: "QRS"}, nil).Once()
	f.repo.On("GetStock", mock.Anything, "2406001").Return(&models.Stock{ID: "2406001"}, nil)

	req := updateRequest()
	req.Sku = "XYZ"
	req.Skus = []string{"ABC", "XYZ", "QRS", "QRS"}
	_, err := f.service.UpdateStock(context.Background(), "2406001", req)

	require.NoError(t, err)
	f.repo.AssertNumberOfCalls(t, "InsertSku", 2)
	f.repo.AssertNotCalled(t, "SyncSuppliers", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStockResubmittingExistingSkuIsNoop(t *testing.T) {
	f := newServiceFixture()
	f.repo.On("StockExists", mock.Anything, mock.Anything, "2406001").Return(true, nil)
	f.repo.On("ItemNameTaken", mock.Anything, mock.Anything, "Widget", "pcs", "2406001").Return(false, nil)
	f.refs.On("CategoryExists", mock.Anything, mock.Anything, 1).Return(true, nil)
	f.repo.On("UpdateStock", mock.Anything, mock.Anything, "2406001", mock.Anything).Return(true, nil)
	f.repo.On("SkuAliases", mock.Anything, mock.Anything, "2406001").Return([]string{"ABC"}, nil)
	f.repo.On("GetStock", mock.Anything, "2406001").Return(&models.Stock{ID: "2406001"}, nil)

	req := updateRequest()
	req.Skus = []string{"ABC"}
	for i := 0; i < 2; i++ {
		_, err := f.service.UpdateStock(context.Background(), "2406001", req)
		require.NoError(t, err)
	}

	f.repo.AssertNotCalled(t, "InsertSku", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStockNotFound(t *testing.T) {
	f := newServiceFixture()
	f.repo.On("StockExists", mock.Anything, mock.Anything, "2406404").Return(false, nil)

	_, err := f.service.UpdateStock(context.Background(), "2406404", updateRequest())

	var notFound *custom_error.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, 1, f.tx.rolledBack)
	f.repo.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteStockCascadesSkus(t *testing.T) {
	f := newServiceFixture()
	stock := &models.Stock{ID: "2406001", OnHand: 4}
	f.repo.On("GetStock", mock.Anything, "2406001").Return(stock, nil)
	deleteSkus := f.repo.On("DeleteSkus", mock.Anything, mock.Anything, "2406001").Return(nil).Once()
	f.repo.On("DeleteStock", mock.Anything, mock.Anything, "2406001").Return(true, nil).Once().NotBefore(deleteSkus)
	f.audit.On("Log", mock.Anything, mock.Anything, stock).Return().Once()

	err := f.service.DeleteStock(context.Background(), "jdoe", "2406001")

	require.NoError(t, err)
	assert.Equal(t, 1, f.tx.committed)
	f.repo.AssertExpectations(t)
	f.audit.AssertExpectations(t)
}

func TestDeleteStockNotFound(t *testing.T) {
	f := newServiceFixture()
	f.repo.On("GetStock", mock.Anything, "2406404").Return(nil, custom_error.NewNotFoundError("Stock not found."))

	err := f.service.DeleteStock(context.Background(), "jdoe", "2406404")

	var notFound *custom_error.NotFoundError
	require.True(t, errors.As(err, &notFound))
	f.repo.AssertNotCalled(t, "DeleteSkus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddSkuToleratesDuplicates(t *testing.T) {
	f := newServiceFixture()
	f.repo.On("StockExists", mock.Anything, mock.Anything, "2406001").Return(true, nil)
	f.repo.On("InsertSku", mock.Anything, mock.Anything, "2406001", "ABC").Return(&models.Sku{Sku: "ABC"}, nil).Twice()

	for i := 0; i < 2; i++ {
		sku, err := f.service.AddSku(context.Background(), "2406001", "ABC")
		require.NoError(t, err)
		assert.Equal(t, "ABC", sku.Sku)
	}

	f.repo.AssertNumberOfCalls(t, "InsertSku", 2)
}

func TestRemoveSku(t *testing.T) {
	tests := []struct {
		name            string
		stockExists     bool
		deleted         bool
		expectedMessage string
	}{
		{name: "removes first match", stockExists: true, deleted: true},
		{name: "unknown stock", stockExists: false, expectedMessage: "Stock not found."},
		{name: "unknown sku", stockExists: true, deleted: false, expectedMessage: "SKU not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture()
			f.repo.On("StockExists", mock.Anything, mock.Anything, "2406001").Return(tt.stockExists, nil)
			f.repo.On("DeleteSkuByAlias", mock.Anything, "2406001", "ABC").Return(tt.deleted, nil)

			err := f.service.RemoveSku(context.Background(), "2406001", "ABC")

			if tt.expectedMessage == "" {
				assert.NoError(t, err)
				return
			}
			var notFound *custom_error.NotFoundError
			require.True(t, errors.As(err, &notFound))
			assert.Equal(t, tt.expectedMessage, notFound.Message)
		})
	}
}

func TestGetStocksEmptyIsNotFound(t *testing.T) {
	f := newServiceFixture()
	f.repo.On("GetStocksBy", mock.Anything, mock.Anything).Return([]models.Stock{}, nil)

	_, err := f.service.GetStocks(context.Background(), nil)

	var notFound *custom_error.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "No records found.", notFound.Message)
}

func TestMergeSupplierIDs(t *testing.T) {
	tests := []struct {
		name     string
		existing []int
		incoming []int
		expected []int
	}{
		{"empty", nil, nil, []int{}},
		{"keeps existing", []int{4, 1}, nil, []int{1, 4}},
		{"union without duplicates", []int{1, 3}, []int{3, 2, 2}, []int{1, 2, 3}},
		{"incoming subset", []int{1, 2, 3}, []int{2}, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mergeSupplierIDs(tt.existing, tt.incoming))
		})
	}
}
