package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"freight_crm/internal/adapter/http/dto/response"
	"freight_crm/internal/usecase"
	"freight_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DealPaymentHandler handles the collection of a deal's client payment.
type DealPaymentHandler struct {
	usecase usecase.IDealPaymentUseCase
	logger  *zap.Logger
}

func NewDealPaymentHandler(uc usecase.IDealPaymentUseCase, logger *zap.Logger) *DealPaymentHandler {
	return &DealPaymentHandler{usecase: uc, logger: orNop(logger)}
}

// CollectPayment godoc
// @Summary      Charge the deal through Mercado Pago
// @Description  The amount is the cost sheet sale total, or the deal value without a sheet. The body is the Mercado Pago payment payload, optionally wrapped in {"mp_payload": ...}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                            true  "Deal ID"
// @Param        body  body      request.DealPaymentCreateRequest  true  "Payload"
// @Success      200   {object}  response.DealPaymentResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /deals/{id}/payments [post]
func (h *DealPaymentHandler) CollectPayment(c *gin.Context) {
	dealID := c.Param("id")
	log := h.logger.With(zap.String("deal_id", dealID))
	log.Info("[payment][handler] collect start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		// The use case rejects a nil payload unless mock mode is on.
		log.Warn("[payment][handler] payload unreadable", zap.Error(err))
		mpPayload = nil
	}

	created, err := h.usecase.Collect(c.Request.Context(), dealID, mpPayload)
	if err != nil {
		log.Warn("[payment][handler] collect failed", zap.Error(err))
		writeError(c, mapDealPaymentError(err))
		return
	}
	log.Info("[payment][handler] collect success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromDealPayment(created))
}

// ListPayments godoc
// @Summary      List the deal's payments, newest first
// @Tags         payments
// @Produce      json
// @Param        id   path     string  true  "Deal ID"
// @Success      200  {array}  response.DealPaymentResponse
// @Router       /deals/{id}/payments [get]
func (h *DealPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByDealID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDealPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDealPayments(payments))
}

// GetPayment godoc
// @Summary      Get a payment by id
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {object}  response.DealPaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *DealPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		writeError(c, mapDealPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDealPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if w := strings.TrimSpace(string(wrapped)); w == "" || w == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDealPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("NOTHING_TO_COLLECT", "Deal has no amount to collect", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDealAlreadyPaid):
		return pkg.NewDomainErrorSimple("DEAL_ALREADY_PAID", "Deal already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrDealPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
