package auth

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/auth/repository"
	"github.com/geovannedomonte/vaiart/internal/config"
)

type Module struct {
	Controller *Controller
	Middleware *Middleware
	Service    Service
}

func NewModule(db *sql.DB, cfg config.AuthConfig, logger *zap.Logger) *Module {
	repo := repository.NewMySQLUsersRepository(db)
	svc := NewService(repo, cfg, logger)
	return &Module{
		Controller: NewController(svc, logger),
		Middleware: NewMiddleware(svc, logger),
		Service:    svc,
	}
}
