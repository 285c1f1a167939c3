package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/geovannedomonte/vaiart/internal/domain"
	"github.com/geovannedomonte/vaiart/internal/errors"
)

const mysqlErrDuplicateEntry = 1062

type MySQLUsersRepository struct {
	db *sql.DB
}

func NewMySQLUsersRepository(db *sql.DB) *MySQLUsersRepository {
	return &MySQLUsersRepository{db: db}
}

func (r *MySQLUsersRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE email = ?
	`

	var user domain.User
	var role string
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &role, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user with email %s not found", email))
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}
	user.Role = domain.Role(role)

	return &user, nil
}

func (r *MySQLUsersRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email = ?", email,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("counting users by email: %w", err)
	}
	return count > 0, nil
}

func (r *MySQLUsersRepository) Insert(ctx context.Context, u *domain.User) (uint, error) {
	query := "INSERT INTO users (email, password_hash, role) VALUES (?, ?, ?)"

	result, err := r.db.ExecContext(ctx, query, u.Email, u.PasswordHash, string(u.Role))
	if err != nil {
		// The unique index on email catches registrations racing past the
		// service-level existence check.
		var mysqlErr *mysql.MySQLError
		if stderrors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return 0, errors.NewConflictError(fmt.Sprintf("user with email %s already exists", u.Email))
		}
		return 0, fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted user id: %w", err)
	}

	u.ID = uint(id)
	return uint(id), nil
}
