package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/geovannedomonte/vaiart/internal/domain"
	"github.com/geovannedomonte/vaiart/internal/errors"
)

type MySQLProductsRepository struct {
	db *sql.DB
}

func NewMySQLProductsRepository(db *sql.DB) *MySQLProductsRepository {
	return &MySQLProductsRepository{db: db}
}

const productColumns = "id, name, description, price, image_url, available, created_at"

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.Available, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MySQLProductsRepository) queryPage(ctx context.Context, where string, args []any, limit, offset int) ([]domain.Product, int64, error) {
	countQuery := "SELECT COUNT(*) FROM products" + where
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM products%s ORDER BY name ASC LIMIT ? OFFSET ?",
		productColumns, where,
	)
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating products: %w", err)
	}

	return products, total, nil
}

func (r *MySQLProductsRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
	return r.queryPage(ctx, "", nil, limit, offset)
}

func (r *MySQLProductsRepository) FindAvailable(ctx context.Context, limit, offset int) ([]domain.Product, int64, error) {
	return r.queryPage(ctx, " WHERE available = TRUE", nil, limit, offset)
}

func (r *MySQLProductsRepository) SearchByName(ctx context.Context, name string, limit, offset int) ([]domain.Product, int64, error) {
	return r.queryPage(
		ctx,
		" WHERE LOWER(name) LIKE CONCAT('%', LOWER(?), '%')",
		[]any{name},
		limit, offset,
	)
}

func (r *MySQLProductsRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = ?", productColumns)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return product, nil
}

// FindByIDForUpdate locks the product row for the duration of the caller's
// transaction. Checkout uses it so the price snapshot and availability check
// read a stable row.
func (r *MySQLProductsRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = ? FOR UPDATE", productColumns)

	product, err := scanProduct(tx.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product for update: %w", err)
	}

	return product, nil
}

func (r *MySQLProductsRepository) Insert(ctx context.Context, p *domain.Product) (uint, error) {
	query := `
		INSERT INTO products (name, description, price, image_url, available)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, p.ImageURL, p.Available,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted product id: %w", err)
	}

	return uint(id), nil
}

func (r *MySQLProductsRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `
		UPDATE products
		SET name = ?, description = ?, price = ?, image_url = ?, available = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, p.ImageURL, p.Available, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	return nil
}

func (r *MySQLProductsRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return nil
}

func (r *MySQLProductsRepository) HasOrderReferences(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM order_lines WHERE product_id = ?", id,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("counting order line references: %w", err)
	}
	return count > 0, nil
}
