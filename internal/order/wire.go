package order

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	catalogrepo "github.com/geovannedomonte/vaiart/internal/catalog/repository"
	"github.com/geovannedomonte/vaiart/internal/order/controller"
	orderrepo "github.com/geovannedomonte/vaiart/internal/order/repository"
	"github.com/geovannedomonte/vaiart/internal/order/service"
	"github.com/geovannedomonte/vaiart/internal/order/usecase"
)

const checkoutTxTimeout = 5 * time.Second

func NewModule(db *sql.DB, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	lineRepo := orderrepo.NewMySQLOrderLineRepository(db)
	productRepo := catalogrepo.NewMySQLProductsRepository(db)

	checkoutSvc := service.NewCheckoutService(
		db,
		productRepo,
		orderRepo,
		lineRepo,
		logger,
		checkoutTxTimeout,
	)

	return controller.NewOrderController(
		usecase.NewCreateOrderUseCase(checkoutSvc, logger),
		usecase.NewUpdateStatusUseCase(orderRepo, lineRepo, logger),
		usecase.NewConfirmPaymentUseCase(orderRepo, lineRepo, logger),
		usecase.NewFindOrdersUseCase(orderRepo, lineRepo),
		logger,
	)
}
