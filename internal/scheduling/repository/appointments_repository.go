package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/geovannedomonte/vaiart/internal/domain"
	"github.com/geovannedomonte/vaiart/internal/errors"
)

const mysqlErrDuplicateEntry = 1062

type MySQLAppointmentsRepository struct {
	db *sql.DB
}

func NewMySQLAppointmentsRepository(db *sql.DB) *MySQLAppointmentsRepository {
	return &MySQLAppointmentsRepository{db: db}
}

const appointmentColumns = "id, client_name, client_phone, scheduled_at, address, notes, created_at"

// CountInWindow counts appointments whose start falls in [from, to]
// inclusive, locking the scanned rows so a concurrent create for the same
// window waits for this transaction.
func (r *MySQLAppointmentsRepository) CountInWindow(ctx context.Context, tx *sql.Tx, from, to time.Time, excludeID uint) (int, error) {
	query := "SELECT COUNT(*) FROM appointments WHERE scheduled_at BETWEEN ? AND ?"
	args := []any{from, to}
	if excludeID != 0 {
		query += " AND id <> ?"
		args = append(args, excludeID)
	}
	query += " FOR UPDATE"

	var count int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting appointments in window: %w", err)
	}
	return count, nil
}

func (r *MySQLAppointmentsRepository) Insert(ctx context.Context, tx *sql.Tx, a domain.Appointment) (uint, error) {
	query := `
		INSERT INTO appointments (client_name, client_phone, scheduled_at, address, notes)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		a.ClientName, a.ClientPhone, a.ScheduledAt, a.Address, a.Notes,
	)
	if err != nil {
		// The unique index on scheduled_at catches the race the window
		// scan cannot lock when the window is empty.
		var mysqlErr *mysql.MySQLError
		if stderrors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return 0, errors.NewConflictError("an appointment already exists in this time slot")
		}
		return 0, fmt.Errorf("inserting appointment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted appointment id: %w", err)
	}

	return uint(id), nil
}

func (r *MySQLAppointmentsRepository) Update(ctx context.Context, tx *sql.Tx, a domain.Appointment) error {
	query := `
		UPDATE appointments
		SET client_name = ?, client_phone = ?, scheduled_at = ?, address = ?, notes = ?
		WHERE id = ?
	`

	_, err := tx.ExecContext(ctx, query,
		a.ClientName, a.ClientPhone, a.ScheduledAt, a.Address, a.Notes, a.ID,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if stderrors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return errors.NewConflictError("an appointment already exists in this time slot")
		}
		return fmt.Errorf("updating appointment: %w", err)
	}

	return nil
}

func (r *MySQLAppointmentsRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM appointments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting appointment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("appointment with id %d not found", id))
	}

	return nil
}

func (r *MySQLAppointmentsRepository) FindByID(ctx context.Context, id uint) (*domain.Appointment, error) {
	query := fmt.Sprintf("SELECT %s FROM appointments WHERE id = ?", appointmentColumns)

	var a domain.Appointment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.ClientName, &a.ClientPhone, &a.ScheduledAt,
		&a.Address, &a.Notes, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("appointment with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying appointment by id: %w", err)
	}

	return &a, nil
}

func (r *MySQLAppointmentsRepository) FindAll(ctx context.Context) ([]domain.Appointment, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM appointments ORDER BY scheduled_at ASC",
		appointmentColumns,
	)
	return r.queryAppointments(ctx, query)
}

func (r *MySQLAppointmentsRepository) FindByRange(ctx context.Context, start, end time.Time) ([]domain.Appointment, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM appointments WHERE scheduled_at BETWEEN ? AND ? ORDER BY scheduled_at ASC",
		appointmentColumns,
	)
	return r.queryAppointments(ctx, query, start, end)
}

func (r *MySQLAppointmentsRepository) queryAppointments(ctx context.Context, query string, args ...any) ([]domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying appointments: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		err := rows.Scan(
			&a.ID, &a.ClientName, &a.ClientPhone, &a.ScheduledAt,
			&a.Address, &a.Notes, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appointments: %w", err)
	}

	return appointments, nil
}
