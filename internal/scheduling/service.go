package scheduling

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
)

const txTimeout = 5 * time.Second

type schedulingService struct {
	db     TransactionManager
	repo   Repository
	logger *zap.Logger
}

func NewService(db TransactionManager, repo Repository, logger *zap.Logger) Service {
	return &schedulingService{
		db:     db,
		repo:   repo,
		logger: logger,
	}
}

// conflictWindow returns the inclusive range of existing start times that
// collide with a requested start: slots are exclusive within a rolling
// one-hour window anchored to the request, not a fixed calendar grid.
func conflictWindow(start time.Time) (time.Time, time.Time) {
	return start.Add(-59 * time.Minute), start.Add(domain.SlotDuration)
}

// Create inserts the appointment after scanning the conflict window under a
// row lock in the same transaction. With no candidate rows the range lock
// depends on the storage engine's gap locking, so two concurrent creates for
// an empty window can still race; the unique index on scheduled_at backstops
// the exact-same-minute case.
func (s *schedulingService) Create(ctx context.Context, req AppointmentRequest) (*AppointmentDTO, error) {
	txCtx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin scheduling transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	from, to := conflictWindow(req.ScheduledAt)
	count, err := s.repo.CountInWindow(txCtx, tx, from, to, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.NewConflictError("an appointment already exists in this time slot")
	}

	appointment := domain.Appointment{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ScheduledAt: req.ScheduledAt,
		Address:     req.Address,
		Notes:       req.Notes,
	}

	id, err := s.repo.Insert(txCtx, tx, appointment)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit appointment", zap.Error(err))
		return nil, err
	}

	s.logger.Info("appointment created",
		zap.Uint("appointmentId", id),
		zap.Time("scheduledAt", req.ScheduledAt))

	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := toAppointmentDTO(*created)
	return &result, nil
}

// Update re-runs the conflict check, excluding the record being updated so
// keeping the same slot is always allowed.
func (s *schedulingService) Update(ctx context.Context, id uint, req AppointmentRequest) (*AppointmentDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin scheduling transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	from, to := conflictWindow(req.ScheduledAt)
	count, err := s.repo.CountInWindow(txCtx, tx, from, to, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.NewConflictError("an appointment already exists in this time slot")
	}

	updated := domain.Appointment{
		ID:          id,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ScheduledAt: req.ScheduledAt,
		Address:     req.Address,
		Notes:       req.Notes,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.repo.Update(txCtx, tx, updated); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit appointment update", zap.Error(err))
		return nil, err
	}

	result := toAppointmentDTO(updated)
	return &result, nil
}

func (s *schedulingService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *schedulingService) FindAll(ctx context.Context) ([]AppointmentDTO, error) {
	appointments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(appointments), nil
}

func (s *schedulingService) FindByRange(ctx context.Context, start, end time.Time) ([]AppointmentDTO, error) {
	if end.Before(start) {
		return nil, apperrors.NewValidationError("invalid range", apperrors.ValidationDetail{
			Field:   "end",
			Message: "end must not be before start",
		})
	}

	appointments, err := s.repo.FindByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toDTOs(appointments), nil
}

func toDTOs(appointments []domain.Appointment) []AppointmentDTO {
	result := make([]AppointmentDTO, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, toAppointmentDTO(a))
	}
	return result
}
