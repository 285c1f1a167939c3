package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/catalog/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLProductsRepository(db)
	svc := NewService(repo)
	return NewController(svc, logger)
}
