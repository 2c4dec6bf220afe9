package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"freight_crm/internal/config"
	"freight_crm/internal/domain/costing"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrDealPaymentNotFound            = errors.New("deal payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInvalidPaymentAmount           = errors.New("deal has no amount to collect")
	ErrDealAlreadyPaid                = errors.New("deal already paid")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IDealPaymentUseCase collects a deal's client payment through Mercado Pago.
//
// The charged amount is never taken from the caller: it is the cost sheet's
// sale total when one exists, else the deal value.
type IDealPaymentUseCase interface {
	Collect(ctx context.Context, dealID string, mpPayload json.RawMessage) (entities.DealPayment, error)
	GetByID(ctx context.Context, id string) (entities.DealPayment, error)
	ListByDealID(ctx context.Context, dealID string) ([]entities.DealPayment, error)
}

type DealPaymentUseCase struct {
	repo      interfaces.IDealPaymentRepository
	dealRepo  interfaces.IDealRepository
	sheetRepo interfaces.ICostSheetRepository
	gateway   interfaces.IPaymentGateway
	cfg       config.Payments
	logger    *zap.Logger
}

var _ IDealPaymentUseCase = (*DealPaymentUseCase)(nil)

func NewDealPaymentUseCase(
	repo interfaces.IDealPaymentRepository,
	dealRepo interfaces.IDealRepository,
	sheetRepo interfaces.ICostSheetRepository,
	gateway interfaces.IPaymentGateway,
	cfg config.Payments,
	logger *zap.Logger,
) *DealPaymentUseCase {
	if strings.TrimSpace(cfg.Currency) == "" {
		cfg.Currency = "USD"
	}
	return &DealPaymentUseCase{repo: repo, dealRepo: dealRepo, sheetRepo: sheetRepo, gateway: gateway, cfg: cfg, logger: orNop(logger)}
}

func (u *DealPaymentUseCase) Collect(ctx context.Context, dealID string, mpPayload json.RawMessage) (entities.DealPayment, error) {
	dealID = strings.TrimSpace(dealID)
	log := u.logger.With(zap.String("deal_id", dealID))
	log.Debug("[payment][usecase] collect start", zap.Int("payload_len", len(mpPayload)))
	mockMode := u.cfg.Mock

	if dealID == "" {
		return entities.DealPayment{}, ErrInvalidDealID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Warn("[payment][usecase] invalid payload")
			return entities.DealPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.DealPayment{}, ErrPaymentGatewayNotConfigured
	}

	d, err := requireDeal(ctx, u.dealRepo, dealID)
	if err != nil {
		log.Warn("[payment][usecase] deal lookup failed", zap.Error(err))
		return entities.DealPayment{}, err
	}

	previous, err := u.repo.ListByDealID(ctx, d.ID)
	if err != nil {
		return entities.DealPayment{}, err
	}
	if slices.ContainsFunc(previous, func(p entities.DealPayment) bool { return p.Status == entities.PaymentStatusApproved }) {
		return entities.DealPayment{}, ErrDealAlreadyPaid
	}

	amount, err := u.amount(ctx, d)
	if err != nil {
		return entities.DealPayment{}, err
	}
	log.Info("[payment][usecase] amount resolved", zap.Float64("amount", amount), zap.String("reference", d.Reference))

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.DealPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Warn("[payment][usecase] missing payment_method_id")
		return entities.DealPayment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn("[payment][usecase] missing or invalid payer")
			return entities.DealPayment{}, ErrInvalidMPPayload
		}
	}

	// Mercado Pago reconciles events through external_reference.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = d.Reference
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Operación %s - %s", d.Reference, d.Title)
	}
	reqMap["transaction_amount"] = amount
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.DealPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Warn("[payment][usecase] payment gateway failed", zap.Error(err))
		return entities.DealPayment{}, classifyGatewayError(err)
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus))

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Debug("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	created, err := u.repo.Create(ctx, entities.DealPayment{
		ID:           providerPaymentID,
		DealID:       d.ID,
		Amount:       amount,
		Currency:     u.cfg.Currency,
		Date:         time.Now().UTC(),
		Status:       paymentStatus(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	})
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", providerPaymentID), zap.Error(err))
		return entities.DealPayment{}, err
	}
	log.Info("[payment][usecase] collect success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

// amount is the cost sheet sale total, falling back to the deal value.
func (u *DealPaymentUseCase) amount(ctx context.Context, d entities.Deal) (float64, error) {
	if u.sheetRepo != nil {
		sheet, err := u.sheetRepo.Get(ctx, d.ID)
		if err != nil {
			return 0, err
		}
		if sheet.DealID != "" {
			if sale := costing.Round2(costing.ComputeTotals(&sheet).SaleUSD); sale > 0 {
				return sale, nil
			}
		}
	}
	if d.Value > 0 {
		return costing.Round2(d.Value), nil
	}
	return 0, ErrInvalidPaymentAmount
}

func paymentStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRejected
	default:
		return entities.PaymentStatusPending
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *DealPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	if m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email works; fill email only when
	// both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.cfg.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.cfg.Sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured test user id for its e-mail,
// which is what the sandbox accepts.
func (u *DealPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.cfg.Sandbox() {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	userID := strings.TrimSpace(u.cfg.TestPayerUserID)
	email := strings.TrimSpace(u.cfg.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	u.logger.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func (u *DealPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DealPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DealPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DealPayment{}, err
	}
	if p.ID == "" {
		return entities.DealPayment{}, ErrDealPaymentNotFound
	}
	return p, nil
}

// ListByDealID returns the deal's payments newest first.
func (u *DealPaymentUseCase) ListByDealID(ctx context.Context, dealID string) ([]entities.DealPayment, error) {
	d, err := requireDeal(ctx, u.dealRepo, dealID)
	if err != nil {
		return nil, err
	}
	payments, err := u.repo.ListByDealID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(payments, func(a, b entities.DealPayment) int { return b.Date.Compare(a.Date) })
	return payments, nil
}
