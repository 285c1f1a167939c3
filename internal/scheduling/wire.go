package scheduling

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/scheduling/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLAppointmentsRepository(db)
	svc := NewService(db, repo, logger)
	return NewController(svc, logger)
}
