package stocks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"stockroom/internal/repository"
	"stockroom/pkg/auditlog"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"go.uber.org/zap"
)

const (
	msgStockNotFound     = "Stock not found."
	msgSkuNotFound       = "SKU not found."
	msgNoRecords         = "No records found."
	msgSupplierRequired  = "At least one supplier is required for stocking in."
	msgQuantityTooSmall  = "Quantity must be at least 1."
	msgQuantityTooLarge  = "Quantity must not be greater than 1000000."
	msgCountOutOfRange   = "Quantity would exceed the maximum stock count."
	msgItemNameTaken     = "The item name has already been taken."
	msgCategoryInvalid   = "The selected category id is invalid."
	msgSuppliersRequired = "The suppliers field is required."
	msgCounterExhausted  = "No stock identifiers left for this month."

	itemNameUnitConstraint = "stocks_item_name_unit_of_measure_key"

	maxStockIn = 1000000
)

type Repository interface {
	LockDateCode(ctx context.Context, tx repository.Querier, dateCode string) error
	LastStockID(ctx context.Context, tx repository.Querier, dateCode string) (string, error)
	ItemNameTaken(ctx context.Context, tx repository.Querier, itemName, unit, excludeID string) (bool, error)
	StockExists(ctx context.Context, q repository.Querier, id string) (bool, error)
	InsertStock(ctx context.Context, tx repository.Querier, id string, fields models.StockFields) error
	UpdateStock(ctx context.Context, tx repository.Querier, id string, fields models.StockFields) (bool, error)
	IncreaseQuantity(ctx context.Context, id string, quantity int) (bool, error)
	DeleteStock(ctx context.Context, tx repository.Querier, id string) (bool, error)
	SupplierIDs(ctx context.Context, tx repository.Querier, stockID string) ([]int, error)
	SyncSuppliers(ctx context.Context, tx repository.Querier, stockID string, supplierIDs []int) error
	SkuAliases(ctx context.Context, tx repository.Querier, stockID string) ([]string, error)
	InsertSku(ctx context.Context, q repository.Querier, stockID, alias string) (*models.Sku, error)
	DeleteSkus(ctx context.Context, tx repository.Querier, stockID string) error
	DeleteSkuByAlias(ctx context.Context, stockID, alias string) (bool, error)
	GetStock(ctx context.Context, id string) (*models.Stock, error)
	GetStocksBy(ctx context.Context, conditions repository.QueryBuilder) ([]models.Stock, error)
}

// ReferenceLookup checks rows owned by the catalog (categories, suppliers).
type ReferenceLookup interface {
	CategoryExists(ctx context.Context, q repository.Querier, categoryID int) (bool, error)
	ExistingSupplierIDs(ctx context.Context, q repository.Querier, ids []int) ([]int, error)
}

type AuditLogger interface {
	Log(ctx context.Context, entry auditlog.Entry, item auditlog.Auditable)
}

type StockService struct {
	tx     repository.Transactor
	stocks Repository
	refs   ReferenceLookup
	audit  AuditLogger
	logger *zap.Logger
	now    func() time.Time
}

func NewStockService(tx repository.Transactor, stocks Repository, refs ReferenceLookup, audit AuditLogger, logger *zap.Logger) *StockService {
	return &StockService{
		tx:     tx,
		stocks: stocks,
		refs:   refs,
		audit:  audit,
		logger: logger,
		now:    time.Now,
	}
}

// CreateStock assigns the next YYMM### identifier and inserts the stock with
// its suppliers in one transaction. Profiling mode skips suppliers entirely.
func (s *StockService) CreateStock(ctx context.Context, actor string, req CreateStockRequest) (*models.Stock, error) {
	unit, err := metadata.NormalizeUnit(req.UnitOfMeasure)
	if err != nil {
		verr := custom_error.NewValidationError()
		verr.Add("unit_of_measure", "The unit of measure field is required.")
		return nil, verr
	}
	req.UnitOfMeasure = unit

	if !req.IsProfiling && len(req.Suppliers) == 0 {
		verr := custom_error.NewValidationError()
		verr.Add("suppliers", msgSuppliersRequired)
		return nil, verr
	}

	var supplierIDs []int
	if !req.IsProfiling {
		supplierIDs = mergeSupplierIDs(nil, filterSuppliers(req.Suppliers))
	}

	var stockID string
	err = s.tx.WithTransaction(ctx, func(tx repository.Querier) error {
		if err := s.validateReferences(ctx, tx, req.ItemName, unit, "", *req.CategoryID, req.Suppliers, !req.IsProfiling); err != nil {
			return err
		}

		if !req.IsProfiling && len(supplierIDs) == 0 {
			return custom_error.NewConflictError(msgSupplierRequired)
		}

		id, err := s.nextStockID(ctx, tx)
		if err != nil {
			return err
		}

		if err := s.stocks.InsertStock(ctx, tx, id, req.Fields()); err != nil {
			return err
		}

		if !req.IsProfiling {
			if err := s.stocks.SyncSuppliers(ctx, tx, id, supplierIDs); err != nil {
				return err
			}
		}

		stockID = id
		return nil
	})
	if err != nil {
		return nil, translateWriteError(err)
	}

	stock, err := s.stocks.GetStock(ctx, stockID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created stock: %w", err)
	}

	s.logger.Info("Stock created",
		zap.String("stock_id", stock.ID),
		zap.Bool("is_profiling", req.IsProfiling),
		zap.Ints("suppliers", supplierIDs),
	)
	s.audit.Log(ctx, auditlog.Entry{
		Action: models.StockLogActionCreate,
		Actor:  actor,
		Qty:    stock.OnHand,
		Reason: "Register stock item",
	}, stock)

	return stock, nil
}

// nextStockID must run inside the creating transaction: the advisory lock is
// held until commit, so concurrent creates in one month read distinct maxima.
func (s *StockService) nextStockID(ctx context.Context, tx repository.Querier) (string, error) {
	now := s.now()
	dateCode := metadata.DateCode(now)

	if err := s.stocks.LockDateCode(ctx, tx, dateCode); err != nil {
		return "", err
	}

	lastID, err := s.stocks.LastStockID(ctx, tx, dateCode)
	if err != nil {
		return "", err
	}

	code, err := metadata.NextStockCode(now, lastID)
	if err != nil {
		if lastID != "" {
			if last, parseErr := metadata.ParseStockCode(lastID); parseErr == nil && last.Counter() >= metadata.MaxStockCounter {
				return "", custom_error.NewConflictError(msgCounterExhausted)
			}
		}
		return "", fmt.Errorf("failed to derive stock id: %w", err)
	}

	return code.String(), nil
}

// AdjustIncoming adds quantity (default 1) to the physical and on hand counts.
func (s *StockService) AdjustIncoming(ctx context.Context, actor, id string, req StockInRequest) (*models.Stock, error) {
	exists, err := s.stocks.StockExists(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, custom_error.NewNotFoundError(msgStockNotFound)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		return nil, custom_error.NewValidationMessage(msgQuantityTooSmall)
	}
	if quantity > maxStockIn {
		return nil, custom_error.NewValidationMessage(msgQuantityTooLarge)
	}

	updated, err := s.stocks.IncreaseQuantity(ctx, id, quantity)
	if custom_error.IsOutOfRange(err) {
		return nil, custom_error.NewValidationMessage(msgCountOutOfRange)
	}
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, custom_error.NewNotFoundError(msgStockNotFound)
	}

	stock, err := s.stocks.GetStock(ctx, id)
	if err != nil {
		return nil, err
	}

	reason := req.Reason
	if reason == "" {
		reason = "Stock in"
	}
	s.audit.Log(ctx, auditlog.Entry{
		Action: models.StockLogActionStockIn,
		Actor:  actor,
		Qty:    quantity,
		Reason: reason,
	}, stock)

	return stock, nil
}

// UpdateStock replaces the scalar fields, merges suppliers into the existing
// set and inserts SKU aliases the stock does not have yet. Nothing is removed.
func (s *StockService) UpdateStock(ctx context.Context, id string, req UpdateStockRequest) (*models.Stock, error) {
	unit, err := metadata.NormalizeUnit(req.UnitOfMeasure)
	if err != nil {
		verr := custom_error.NewValidationError()
		verr.Add("unit_of_measure", "The unit of measure field is required.")
		return nil, verr
	}
	req.UnitOfMeasure = unit

	err = s.tx.WithTransaction(ctx, func(tx repository.Querier) error {
		exists, err := s.stocks.StockExists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return custom_error.NewNotFoundError(msgStockNotFound)
		}

		if err := s.validateReferences(ctx, tx, req.ItemName, unit, id, *req.CategoryID, req.Suppliers, true); err != nil {
			return err
		}

		updated, err := s.stocks.UpdateStock(ctx, tx, id, req.Fields())
		if err != nil {
			return err
		}
		if !updated {
			return custom_error.NewNotFoundError(msgStockNotFound)
		}

		if req.Suppliers != nil {
			existing, err := s.stocks.SupplierIDs(ctx, tx, id)
			if err != nil {
				return err
			}
			if err := s.stocks.SyncSuppliers(ctx, tx, id, mergeSupplierIDs(existing, filterSuppliers(req.Suppliers))); err != nil {
				return err
			}
		}

		if aliases := req.SkuAliases(); len(aliases) > 0 {
			if err := s.upsertSkus(ctx, tx, id, aliases); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, translateWriteError(err)
	}

	return s.stocks.GetStock(ctx, id)
}

func (s *StockService) upsertSkus(ctx context.Context, tx repository.Querier, stockID string, aliases []string) error {
	existing, err := s.stocks.SkuAliases(ctx, tx, stockID)
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(existing))
	for _, alias := range existing {
		known[alias] = struct{}{}
	}

	for _, alias := range aliases {
		if _, ok := known[alias]; ok {
			continue
		}
		if _, err := s.stocks.InsertSku(ctx, tx, stockID, alias); err != nil {
			return err
		}
		known[alias] = struct{}{}
	}

	return nil
}

// DeleteStock removes the stock's SKUs, its supplier links and the stock itself.
func (s *StockService) DeleteStock(ctx context.Context, actor, id string) error {
	stock, err := s.stocks.GetStock(ctx, id)
	if err != nil {
		return err
	}

	err = s.tx.WithTransaction(ctx, func(tx repository.Querier) error {
		if err := s.stocks.DeleteSkus(ctx, tx, id); err != nil {
			return err
		}

		deleted, err := s.stocks.DeleteStock(ctx, tx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return custom_error.NewNotFoundError(msgStockNotFound)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Log(ctx, auditlog.Entry{
		Action: models.StockLogActionDelete,
		Actor:  actor,
		Qty:    -stock.OnHand,
		Reason: "Stock deleted",
	}, stock)

	return nil
}

// AddSku inserts alias unconditionally; duplicates are accepted on this path.
func (s *StockService) AddSku(ctx context.Context, stockID, alias string) (*models.Sku, error) {
	exists, err := s.stocks.StockExists(ctx, nil, stockID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, custom_error.NewNotFoundError(msgStockNotFound)
	}

	return s.stocks.InsertSku(ctx, nil, stockID, alias)
}

func (s *StockService) RemoveSku(ctx context.Context, stockID, alias string) error {
	exists, err := s.stocks.StockExists(ctx, nil, stockID)
	if err != nil {
		return err
	}
	if !exists {
		return custom_error.NewNotFoundError(msgStockNotFound)
	}

	deleted, err := s.stocks.DeleteSkuByAlias(ctx, stockID, alias)
	if err != nil {
		return err
	}
	if !deleted {
		return custom_error.NewNotFoundError(msgSkuNotFound)
	}

	return nil
}

func (s *StockService) GetStock(ctx context.Context, id string) (*models.Stock, error) {
	return s.stocks.GetStock(ctx, id)
}

func (s *StockService) GetStocks(ctx context.Context, conditions repository.QueryBuilder) ([]models.Stock, error) {
	stocks, err := s.stocks.GetStocksBy(ctx, conditions)
	if err != nil {
		return nil, err
	}
	if len(stocks) == 0 {
		return nil, custom_error.NewNotFoundError(msgNoRecords)
	}

	return stocks, nil
}

// validateReferences collects the uniqueness and foreign reference failures
// into one ValidationError.
func (s *StockService) validateReferences(
	ctx context.Context,
	tx repository.Querier,
	itemName, unit, excludeID string,
	categoryID int,
	suppliers []*int,
	checkSuppliers bool,
) error {
	verr := custom_error.NewValidationError()

	taken, err := s.stocks.ItemNameTaken(ctx, tx, itemName, unit, excludeID)
	if err != nil {
		return err
	}
	if taken {
		verr.Add("item_name", msgItemNameTaken)
	}

	categoryExists, err := s.refs.CategoryExists(ctx, tx, categoryID)
	if err != nil {
		return err
	}
	if !categoryExists {
		verr.Add("category_id", msgCategoryInvalid)
	}

	if checkSuppliers {
		requested := filterSuppliers(suppliers)
		if len(requested) > 0 {
			existing, err := s.refs.ExistingSupplierIDs(ctx, tx, mergeSupplierIDs(nil, requested))
			if err != nil {
				return err
			}
			known := make(map[int]struct{}, len(existing))
			for _, id := range existing {
				known[id] = struct{}{}
			}
			for i, supplierID := range suppliers {
				if supplierID == nil {
					continue
				}
				if _, ok := known[*supplierID]; !ok {
					field := fmt.Sprintf("suppliers.%d", i)
					verr.Add(field, fmt.Sprintf("The selected %s is invalid.", field))
				}
			}
		}
	}

	return verr.OrNil()
}

// translateWriteError maps a unique violation raced past the lookup to the
// same field error the lookup produces.
func translateWriteError(err error) error {
	var unique *custom_error.UniqueViolationError
	if errors.As(err, &unique) && unique.Constraint == itemNameUnitConstraint {
		verr := custom_error.NewValidationError()
		verr.Add("item_name", msgItemNameTaken)
		return verr
	}

	return err
}

func filterSuppliers(suppliers []*int) []int {
	ids := make([]int, 0, len(suppliers))
	for _, id := range suppliers {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

// mergeSupplierIDs returns the sorted union of existing and incoming.
func mergeSupplierIDs(existing, incoming []int) []int {
	seen := make(map[int]struct{}, len(existing)+len(incoming))
	merged := make([]int, 0, len(existing)+len(incoming))
	for _, ids := range [][]int{existing, incoming} {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}
	sort.Ints(merged)
	return merged
}
