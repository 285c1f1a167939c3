package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
	"github.com/geovannedomonte/vaiart/internal/order/dto"
)

type CreateOrderUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderDTO, error)
}

type UpdateStatusUseCase interface {
	UpdateStatus(ctx context.Context, id uint, status string) (*dto.OrderDTO, error)
}

type ConfirmPaymentUseCase interface {
	ConfirmPayment(ctx context.Context, id uint, transactionID string) (*dto.OrderDTO, error)
}

type FindOrdersUseCase interface {
	FindByID(ctx context.Context, id uint) (*dto.OrderDTO, error)
	FindAll(ctx context.Context) ([]dto.OrderDTO, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]dto.OrderDTO, error)
}

type OrderController struct {
	createOrder    CreateOrderUseCase
	updateStatus   UpdateStatusUseCase
	confirmPayment ConfirmPaymentUseCase
	findOrders     FindOrdersUseCase
	logger         *zap.Logger
}

func NewOrderController(
	createOrder CreateOrderUseCase,
	updateStatus UpdateStatusUseCase,
	confirmPayment ConfirmPaymentUseCase,
	findOrders FindOrdersUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		createOrder:    createOrder,
		updateStatus:   updateStatus,
		confirmPayment: confirmPayment,
		findOrders:     findOrders,
		logger:         logger,
	}
}

func (c *OrderController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.validateCreateRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	result, err := c.createOrder.CreateOrder(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, result)
}

func (c *OrderController) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	result, err := c.findOrders.FindByID(r.Context(), id)
	if err != nil {
		c.handleUseCaseError(w, err, c.logger)
		return
	}
	c.writeJSON(w, http.StatusOK, result)
}

func (c *OrderController) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := c.findOrders.FindAll(r.Context())
	if err != nil {
		c.handleUseCaseError(w, err, c.logger)
		return
	}
	c.writeJSON(w, http.StatusOK, result)
}

func (c *OrderController) HandleListByCustomer(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if strings.TrimSpace(email) == "" {
		c.writeValidationError(w, "email is required", apperrors.ValidationDetail{
			Field:   "email",
			Message: "email must not be empty",
		})
		return
	}

	result, err := c.findOrders.FindByCustomerEmail(r.Context(), email)
	if err != nil {
		c.handleUseCaseError(w, err, c.logger)
		return
	}
	c.writeJSON(w, http.StatusOK, result)
}

func (c *OrderController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	result, err := c.updateStatus.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}
	c.writeJSON(w, http.StatusOK, result)
}

func (c *OrderController) HandleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	result, err := c.confirmPayment.ConfirmPayment(r.Context(), id, req.TransactionID)
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}
	c.writeJSON(w, http.StatusOK, result)
}

func (c *OrderController) parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		c.writeValidationError(w, "invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func (c *OrderController) validateCreateRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.CustomerName) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerName",
			Message: "customerName is required",
		})
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerEmail",
			Message: "customerEmail is required",
		})
	}

	if len(req.Lines) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "lines",
			Message: "lines must not be empty",
		})
	}

	seen := make(map[uint]bool)
	for idx, line := range req.Lines {
		field := "lines[" + strconv.Itoa(idx) + "]"

		if line.ProductID == 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   field + ".productId",
				Message: "productId must be a positive integer",
			})
		}

		if seen[line.ProductID] {
			details = append(details, apperrors.ValidationDetail{
				Field:   field + ".productId",
				Message: "productId must not be duplicated",
			})
		}
		seen[line.ProductID] = true

		if line.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   field + ".quantity",
				Message: "quantity must be at least 1",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *OrderController) handleUseCaseError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}

	if _, ok := apperrors.IsInvalidTransitionError(err); ok {
		c.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":   "INVALID_TRANSITION",
			"message": err.Error(),
		})
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, map[string]string{
			"error":   "CONFLICT",
			"message": err.Error(),
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
