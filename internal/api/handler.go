package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/lngate/lnurlpay/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api_service.go -package=mocks

type Service interface {
	ResolvePayRequest(ctx context.Context, storeID, cryptoCode, invoiceID string, amount *entity.LightMoney) (entity.PayResolution, error)
	PaymentMethods(ctx context.Context, f entity.PaymentMethodFilter) ([]entity.LightningPaymentMethod, int, error)
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

// PayRequest serves GET /stores/{storeId}/lnurl/{cryptoCode}/pay/{invoiceId}.
// Without an amount query parameter it answers with LNURL-pay parameters,
// with one it answers with the BOLT11 payment request.
func (h *Handler) PayRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	storeID := chi.URLParam(r, "storeId")
	cryptoCode := chi.URLParam(r, "cryptoCode")
	invoiceID := chi.URLParam(r, "invoiceId")

	var amount *entity.LightMoney

	if raw := r.URL.Query().Get("amount"); raw != "" {
		parsed, err := entity.ParseLightMoney(raw)
		if err != nil {
			SendLNURLErr(ctx, w, http.StatusBadRequest, err, "Invalid amount")
			return
		}

		amount = &parsed
	}

	res, err := h.s.ResolvePayRequest(ctx, storeID, cryptoCode, invoiceID, amount)
	if err != nil {
		h.sendResolveErr(ctx, w, err)
		return
	}

	if res.Callback != nil {
		SendJSON(ctx, w, http.StatusOK, res.Callback)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res.Params)
}

func (h *Handler) sendResolveErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendLNURLErr(ctx, w, http.StatusNotFound, err, "Invoice not found")
	case errors.Is(err, entity.ErrInvalidState):
		SendLNURLErr(ctx, w, http.StatusBadRequest, err, "Invoice not in a valid payable state")
	case errors.Is(err, entity.ErrExpired):
		SendLNURLErr(ctx, w, http.StatusBadRequest, err, "Invoice expired")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendLNURLErr(ctx, w, http.StatusBadRequest, err, "Amount is out of bounds")
	case errors.Is(err, entity.ErrConfigurationMissing):
		SendLNURLErr(ctx, w, http.StatusInternalServerError, err, "Lightning node is not configured")
	case errors.Is(err, entity.ErrNodeFailure):
		SendLNURLErr(ctx, w, http.StatusBadGateway, err, "Failed to generate payment request")
	default:
		SendLNURLErr(ctx, w, http.StatusInternalServerError, err, "Internal error")
	}
}

type CreateInvoiceRequest struct {
	ID           string          `json:"id"`
	StoreID      string          `json:"storeId"`
	CryptoCode   string          `json:"cryptoCode"`
	AmountBTC    decimal.Decimal `json:"amountBtc"`
	TopUp        bool            `json:"topUp"`
	ExternalNode string          `json:"externalNode,omitempty"`
	ExpiresAt    time.Time       `json:"expiresAt"`
}

type CreateInvoiceResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CreateInvoice registers an invoice so wallets can pay it over LNURL.
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendLNURLErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if req.CryptoCode == "" {
		req.CryptoCode = "BTC"
	}

	inv := entity.Invoice{
		ID:        req.ID,
		StoreID:   req.StoreID,
		TopUp:     req.TopUp,
		ExpiresAt: req.ExpiresAt,
		PaymentMethods: []entity.LightningPaymentMethod{
			{
				ID:           entity.NewLNURLPayMethodID(req.CryptoCode),
				AmountDue:    req.AmountBTC,
				ExternalNode: req.ExternalNode,
			},
		},
	}

	inv, err = h.s.CreateInvoice(ctx, inv)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendLNURLErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid invoice")
			return
		}

		SendLNURLErr(ctx, w, http.StatusInternalServerError, err, "Failed to create invoice")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, CreateInvoiceResponse{
		ID:        inv.ID,
		StoreID:   inv.StoreID,
		Status:    inv.Status.String(),
		ExpiresAt: inv.ExpiresAt,
	})
}

type PaymentMethodResponse struct {
	InvoiceID     string `json:"invoiceId"`
	Method        string `json:"method"`
	State         string `json:"state"`
	BOLT11        string `json:"bolt11,omitempty"`
	NodeInvoiceID string `json:"nodeInvoiceId,omitempty"`
	AmountMsat    int64  `json:"amountMsat"`
}

type PaymentMethodsResponse struct {
	Items      []PaymentMethodResponse `json:"items"`
	TotalCount int                     `json:"totalCount"`
}

// PaymentMethods lists payment methods, with pagination and filters.
func (h *Handler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := paymentMethodFilter(r)
	if err != nil {
		SendLNURLErr(ctx, w, http.StatusBadRequest, err, "Invalid filter")
		return
	}

	methods, total, err := h.s.PaymentMethods(ctx, f)
	if err != nil {
		SendLNURLErr(ctx, w, http.StatusInternalServerError, err, "Failed to list payment methods")
		return
	}

	resp := PaymentMethodsResponse{
		Items:      make([]PaymentMethodResponse, 0, len(methods)),
		TotalCount: total,
	}

	for _, m := range methods {
		resp.Items = append(resp.Items, PaymentMethodResponse{
			InvoiceID:     m.InvoiceID,
			Method:        m.ID.String(),
			State:         m.State,
			BOLT11:        m.Details.BOLT11,
			NodeInvoiceID: m.Details.NodeInvoiceID,
			AmountMsat:    m.Details.Amount.MilliSatoshis(),
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func paymentMethodFilter(r *http.Request) (entity.PaymentMethodFilter, error) {
	q := r.URL.Query()

	var f entity.PaymentMethodFilter

	if v := q.Get("state"); v != "" {
		f.State = &v
	}

	if v := q.Get("issued"); v != "" {
		issued, err := strconv.ParseBool(v)
		if err != nil {
			return entity.PaymentMethodFilter{}, err
		}

		f.Issued = &issued
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return entity.PaymentMethodFilter{}, err
		}

		f.Page = page
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return entity.PaymentMethodFilter{}, err
		}

		f.Limit = limit
	}

	f.SortBy = entity.PaymentMethodSortCol(q.Get("sort_by"))
	f.OrderBy = entity.OrderByCol(q.Get("order_by"))

	return f, nil
}

// HealthHandler - returns service health status.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendLNURLErr(ctx, w, http.StatusInternalServerError, err, "Service is unhealthy")
		return
	}
}
