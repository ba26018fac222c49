package stocks

import (
	"context"
	"fmt"

	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type StockRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *StockRepository {
	return &StockRepository{repository: r}
}

// LockDateCode serializes identifier allocation for one month until the
// surrounding transaction ends.
func (r *StockRepository) LockDateCode(ctx context.Context, tx repository.Querier, dateCode string) error {
	if _, err := r.querier(tx).ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", "stocks:"+dateCode); err != nil {
		return fmt.Errorf("failed to lock stock id sequence %s: %w", dateCode, err)
	}

	return nil
}

// LastStockID returns the greatest id starting with dateCode, or "" when the
// month has no stock yet.
func (r *StockRepository) LastStockID(ctx context.Context, tx repository.Querier, dateCode string) (string, error) {
	var id string
	found, err := r.querier(tx).From("stocks").
		Select("id").
		Where(goqu.C("id").Like(dateCode + "%")).
		Order(goqu.C("id").Desc()).
		Limit(1).
		Executor().
		ScanValContext(ctx, &id)
	if err != nil {
		return "", fmt.Errorf("failed to read last stock id for %s: %w", dateCode, err)
	}
	if !found {
		return "", nil
	}

	return id, nil
}

// ItemNameTaken reports whether another stock already uses itemName with the
// same unit of measure. excludeID skips the stock being updated.
func (r *StockRepository) ItemNameTaken(ctx context.Context, tx repository.Querier, itemName, unit, excludeID string) (bool, error) {
	query := r.querier(tx).From("stocks").
		Select(goqu.COUNT("*")).
		Where(goqu.Ex{"item_name": itemName, "unit_of_measure": unit})
	if excludeID != "" {
		query = query.Where(goqu.C("id").Neq(excludeID))
	}

	var count int
	if _, err := query.Executor().ScanValContext(ctx, &count); err != nil {
		return false, fmt.Errorf("failed to check item name uniqueness: %w", err)
	}

	return count > 0, nil
}

func (r *StockRepository) StockExists(ctx context.Context, q repository.Querier, id string) (bool, error) {
	var count int
	_, err := r.querier(q).From("stocks").
		Select(goqu.COUNT("*")).
		Where(goqu.Ex{"id": id}).
		Executor().
		ScanValContext(ctx, &count)
	if err != nil {
		return false, fmt.Errorf("failed to check stock %s: %w", id, err)
	}

	return count > 0, nil
}

func (r *StockRepository) InsertStock(ctx context.Context, tx repository.Querier, id string, fields models.StockFields) error {
	record := stockRecord(fields)
	record["id"] = id

	_, err := r.querier(tx).Insert("stocks").Rows(record).Executor().ExecContext(ctx)
	if err != nil {
		return custom_error.FromPQ("failed to insert stock record", err)
	}

	return nil
}

// UpdateStock replaces the scalar columns. A nil description keeps the stored one.
func (r *StockRepository) UpdateStock(ctx context.Context, tx repository.Querier, id string, fields models.StockFields) (bool, error) {
	record := stockRecord(fields)
	if fields.Description == nil {
		delete(record, "description")
	}
	record["updated_at"] = goqu.L("NOW()")

	result, err := r.querier(tx).Update("stocks").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return false, custom_error.FromPQ("failed to update stock", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to retrieve rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// IncreaseQuantity adds quantity to both the physical and the on hand count
// in a single statement.
func (r *StockRepository) IncreaseQuantity(ctx context.Context, id string, quantity int) (bool, error) {
	result, err := r.repository.GoquDBWrapper.Update("stocks").
		Set(goqu.Record{
			"physical_count": goqu.L("physical_count + ?", quantity),
			"on_hand":        goqu.L("on_hand + ?", quantity),
			"updated_at":     goqu.L("NOW()"),
		}).
		Where(goqu.Ex{"id": id}).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to increase quantity of stock %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to retrieve rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *StockRepository) DeleteStock(ctx context.Context, tx repository.Querier, id string) (bool, error) {
	if _, err := r.querier(tx).Delete("stock_supplier").Where(goqu.Ex{"stock_id": id}).Executor().ExecContext(ctx); err != nil {
		return false, fmt.Errorf("failed to detach suppliers of stock %s: %w", id, err)
	}

	result, err := r.querier(tx).Delete("stocks").Where(goqu.Ex{"id": id}).Executor().ExecContext(ctx)
	if err != nil {
		return false, custom_error.FromPQ("failed to delete stock", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to retrieve rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *StockRepository) SupplierIDs(ctx context.Context, tx repository.Querier, stockID string) ([]int, error) {
	ids := []int{}
	err := r.querier(tx).From("stock_supplier").
		Select("supplier_id").
		Where(goqu.Ex{"stock_id": stockID}).
		Order(goqu.C("supplier_id").Asc()).
		Executor().
		ScanValsContext(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read suppliers of stock %s: %w", stockID, err)
	}

	return ids, nil
}

// SyncSuppliers makes the association set of stockID equal to supplierIDs.
func (r *StockRepository) SyncSuppliers(ctx context.Context, tx repository.Querier, stockID string, supplierIDs []int) error {
	detach := r.querier(tx).Delete("stock_supplier").Where(goqu.Ex{"stock_id": stockID})
	if len(supplierIDs) > 0 {
		detach = detach.Where(goqu.C("supplier_id").NotIn(supplierIDs))
	}
	if _, err := detach.Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to detach suppliers of stock %s: %w", stockID, err)
	}

	if len(supplierIDs) == 0 {
		return nil
	}

	rows := make([]interface{}, 0, len(supplierIDs))
	for _, supplierID := range supplierIDs {
		rows = append(rows, goqu.Record{"stock_id": stockID, "supplier_id": supplierID})
	}

	_, err := r.querier(tx).Insert("stock_supplier").
		Rows(rows...).
		OnConflict(goqu.DoNothing()).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return custom_error.FromPQ("failed to attach suppliers", err)
	}

	return nil
}

func (r *StockRepository) SkuAliases(ctx context.Context, tx repository.Querier, stockID string) ([]string, error) {
	aliases := []string{}
	err := r.querier(tx).From("skus").
		Select("sku").
		Where(goqu.Ex{"stock_id": stockID}).
		Order(goqu.C("id").Asc()).
		Executor().
		ScanValsContext(ctx, &aliases)
	if err != nil {
		return nil, fmt.Errorf("failed to read skus of stock %s: %w", stockID, err)
	}

	return aliases, nil
}

func (r *StockRepository) InsertSku(ctx context.Context, q repository.Querier, stockID, alias string) (*models.Sku, error) {
	var sku models.Sku
	_, err := r.querier(q).Insert("skus").
		Rows(goqu.Record{"sku": alias, "stock_id": stockID}).
		Returning("id", "sku", "stock_id", "created_at").
		Executor().
		ScanStructContext(ctx, &sku)
	if err != nil {
		return nil, custom_error.FromPQ("failed to insert sku", err)
	}

	return &sku, nil
}

func (r *StockRepository) DeleteSkus(ctx context.Context, tx repository.Querier, stockID string) error {
	if _, err := r.querier(tx).Delete("skus").Where(goqu.Ex{"stock_id": stockID}).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to delete skus of stock %s: %w", stockID, err)
	}

	return nil
}

// DeleteSkuByAlias removes the oldest sku of stockID whose alias equals alias.
func (r *StockRepository) DeleteSkuByAlias(ctx context.Context, stockID, alias string) (bool, error) {
	db := r.repository.GoquDBWrapper
	first := db.From("skus").
		Select("id").
		Where(goqu.Ex{"stock_id": stockID, "sku": alias}).
		Order(goqu.C("id").Asc()).
		Limit(1)

	result, err := db.Delete("skus").
		Where(goqu.C("id").In(first)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete sku %s of stock %s: %w", alias, stockID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to retrieve rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetStock returns the stock aggregate or a NotFoundError.
func (r *StockRepository) GetStock(ctx context.Context, id string) (*models.Stock, error) {
	var record models.StockRecord
	found, err := r.getStockQuery().
		Where(goqu.Ex{"s.id": id}).
		Executor().
		ScanStructContext(ctx, &record)
	if err != nil {
		return nil, fmt.Errorf("unable to select stock from database: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("Stock not found.")
	}

	stocks, err := r.materialize(ctx, []models.StockRecord{record})
	if err != nil {
		return nil, err
	}

	return &stocks[0], nil
}

func (r *StockRepository) GetStocksBy(ctx context.Context, conditions repository.QueryBuilder) ([]models.Stock, error) {
	aliases := map[string]string{
		"category_id":     "s.category_id",
		"unit_of_measure": "s.unit_of_measure",
		"on_hand":         "s.on_hand",
	}

	var records []models.StockRecord
	err := r.getStockQuery().
		Where(conditions.Expressions(aliases)...).
		Order(goqu.I("s.id").Asc()).
		Executor().
		ScanStructsContext(ctx, &records)
	if err != nil {
		return nil, fmt.Errorf("unable to select stocks from database: %w", err)
	}

	return r.materialize(ctx, records)
}

// materialize attaches suppliers and skus to the stock rows with one query each.
func (r *StockRepository) materialize(ctx context.Context, records []models.StockRecord) ([]models.Stock, error) {
	stocks := make([]models.Stock, 0, len(records))
	if len(records) == 0 {
		return stocks, nil
	}

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}

	db := r.repository.GoquDBWrapper

	var suppliers []models.StockSupplier
	err := db.From(goqu.T("stock_supplier").As("ss")).
		Select(
			goqu.I("ss.stock_id").As("stock_id"),
			goqu.I("sp.id").As("supplier_id"),
			goqu.I("sp.name").As("supplier_name"),
		).
		InnerJoin(
			goqu.T("suppliers").As("sp"),
			goqu.On(goqu.Ex{"ss.supplier_id": goqu.I("sp.id")}),
		).
		Where(goqu.Ex{"ss.stock_id": ids}).
		Order(goqu.I("sp.id").Asc()).
		Executor().
		ScanStructsContext(ctx, &suppliers)
	if err != nil {
		return nil, fmt.Errorf("unable to select stock suppliers: %w", err)
	}

	var skus []models.Sku
	err = db.From("skus").
		Select("id", "sku", "stock_id", "created_at").
		Where(goqu.Ex{"stock_id": ids}).
		Order(goqu.C("id").Asc()).
		Executor().
		ScanStructsContext(ctx, &skus)
	if err != nil {
		return nil, fmt.Errorf("unable to select stock skus: %w", err)
	}

	suppliersByStock := make(map[string][]models.Supplier)
	for _, s := range suppliers {
		suppliersByStock[s.StockID] = append(suppliersByStock[s.StockID], models.Supplier{ID: s.SupplierID, Name: s.SupplierName})
	}
	skusByStock := make(map[string][]models.Sku)
	for _, sku := range skus {
		skusByStock[sku.StockID] = append(skusByStock[sku.StockID], sku)
	}

	for _, record := range records {
		stock := record.ToStock()
		if s, ok := suppliersByStock[stock.ID]; ok {
			stock.Suppliers = s
		}
		if s, ok := skusByStock[stock.ID]; ok {
			stock.Skus = s
		}
		stocks = append(stocks, stock)
	}

	return stocks, nil
}

func (r *StockRepository) querier(q repository.Querier) repository.Querier {
	if q == nil {
		return r.repository.GoquDBWrapper
	}
	return q
}

func (r *StockRepository) getStockQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.
		Select(
			goqu.I("s.id").As("id"),
			goqu.I("s.item_name").As("item_name"),
			goqu.I("s.description").As("description"),
			goqu.I("s.category_id").As("category_id"),
			goqu.I("c.name").As("category_name"),
			goqu.I("s.unit_of_measure").As("unit_of_measure"),
			goqu.I("s.physical_count").As("physical_count"),
			goqu.I("s.on_hand").As("on_hand"),
			goqu.I("s.sold").As("sold"),
			goqu.I("s.date").As("date"),
			goqu.I("s.date_released").As("date_released"),
			goqu.I("s.receiver").As("receiver"),
			goqu.I("s.price_per_unit").As("price_per_unit"),
			goqu.I("s.buying_price").As("buying_price"),
			goqu.I("s.created_at").As("created_at"),
			goqu.I("s.updated_at").As("updated_at"),
		).
		From(goqu.T("stocks").As("s")).
		LeftJoin(
			goqu.T("categories").As("c"),
			goqu.On(goqu.Ex{"s.category_id": goqu.I("c.id")}),
		)
}

func stockRecord(fields models.StockFields) goqu.Record {
	return goqu.Record{
		"item_name":       fields.ItemName,
		"description":     fields.Description,
		"category_id":     fields.CategoryID,
		"unit_of_measure": fields.UnitOfMeasure,
		"physical_count":  fields.PhysicalCount,
		"on_hand":         fields.OnHand,
		"sold":            fields.Sold,
		"date":            nullableDate(fields.Date),
		"date_released":   nullableDate(fields.DateReleased),
		"receiver":        fields.Receiver,
		"price_per_unit":  fields.PricePerUnit,
		"buying_price":    fields.BuyingPrice,
	}
}

func nullableDate(d *models.Date) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}
