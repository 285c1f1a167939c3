package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/geovannedomonte/vaiart/internal/domain"
	"github.com/geovannedomonte/vaiart/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `id, customer_name, customer_email, customer_phone,
	delivery_address, payment_method, transaction_id, status, total,
	created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	var o domain.Order
	var status string
	err := row.Scan(
		&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.DeliveryAddress, &o.PaymentMethod, &o.TransactionID, &status,
		&o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

// Insert persists the order shell inside the checkout transaction.
func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, o *domain.Order) (uint, error) {
	query := `
		INSERT INTO orders (customer_name, customer_email, customer_phone,
			delivery_address, payment_method, status, total, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.DeliveryAddress, o.PaymentMethod, string(o.Status), o.Total,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted order id: %w", err)
	}

	return uint(id), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := fmt.Sprintf("SELECT %s FROM orders WHERE id = ?", orderColumns)

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := fmt.Sprintf("SELECT %s FROM orders ORDER BY created_at DESC", orderColumns)
	return r.queryOrders(ctx, query)
}

func (r *MySQLOrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]domain.Order, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM orders WHERE customer_email = ? ORDER BY created_at DESC",
		orderColumns,
	)
	return r.queryOrders(ctx, query, email)
}

func (r *MySQLOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, nil
}

func (r *MySQLOrderRepository) UpdateTotal(ctx context.Context, tx *sql.Tx, id uint, total decimal.Decimal) error {
	result, err := tx.ExecContext(ctx, "UPDATE orders SET total = ? WHERE id = ?", total, id)
	if err != nil {
		return fmt.Errorf("updating order total: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}

// UpdateStatus does not inspect the affected-row count: re-setting the
// current status is a valid no-op and MySQL reports it as zero rows.
// Callers verify existence and the transition beforehand.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	_, err := r.db.ExecContext(ctx, "UPDATE orders SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}
	return nil
}

// UpdateTransaction stores the payment confirmation and forces PAID in the
// same statement. The coupling is intentional: a transaction id only arrives
// when the external gateway confirmed payment.
func (r *MySQLOrderRepository) UpdateTransaction(ctx context.Context, id uint, transactionID string) error {
	query := "UPDATE orders SET transaction_id = ?, status = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, transactionID, string(domain.OrderStatusPaid), id)
	if err != nil {
		return fmt.Errorf("updating order transaction id: %w", err)
	}
	return nil
}
