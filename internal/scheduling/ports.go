package scheduling

import (
	"context"
	"database/sql"
	"time"

	"github.com/geovannedomonte/vaiart/internal/domain"
)

type Service interface {
	Create(ctx context.Context, req AppointmentRequest) (*AppointmentDTO, error)
	Update(ctx context.Context, id uint, req AppointmentRequest) (*AppointmentDTO, error)
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]AppointmentDTO, error)
	FindByRange(ctx context.Context, start, end time.Time) ([]AppointmentDTO, error)
}

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type Repository interface {
	CountInWindow(ctx context.Context, tx *sql.Tx, from, to time.Time, excludeID uint) (int, error)
	Insert(ctx context.Context, tx *sql.Tx, a domain.Appointment) (uint, error)
	Update(ctx context.Context, tx *sql.Tx, a domain.Appointment) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*domain.Appointment, error)
	FindAll(ctx context.Context) ([]domain.Appointment, error)
	FindByRange(ctx context.Context, start, end time.Time) ([]domain.Appointment, error)
}
