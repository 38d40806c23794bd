package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lngate/lnurlpay/internal/api"
	"github.com/lngate/lnurlpay/internal/entity"
	"github.com/lngate/lnurlpay/internal/mocks"
)

const payPath = "/stores/store-1/lnurl/BTC/pay/INV1"

func newServer(t *testing.T) (*httptest.Server, *mocks.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := mocks.NewMockService(ctrl)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(true, "secret")

	srv := httptest.NewServer(api.NewRouter(handler, mw))
	t.Cleanup(srv.Close)

	return srv, s
}

func get(t *testing.T, url string) (int, []byte) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, body
}

func TestHandler_PayRequest_Params(t *testing.T) {
	t.Parallel()

	srv, s := newServer(t)

	s.EXPECT().
		ResolvePayRequest(gomock.Any(), "store-1", "BTC", "INV1", nil).
		Return(entity.PayResolution{
			Params: &entity.PayRequestParams{
				Tag:         entity.PayRequestTag,
				MinSendable: 25_000,
				MaxSendable: 25_000,
				Metadata:    `[["text/plain","INV1"]]`,
			},
		}, nil)

	code, body := get(t, srv.URL+payPath)
	require.Equal(t, http.StatusOK, code)

	require.JSONEq(t, `{
		"tag": "payRequest",
		"minSendable": 25000,
		"maxSendable": 25000,
		"commentAllowed": 0,
		"metadata": "[[\"text/plain\",\"INV1\"]]"
	}`, string(body))
}

func TestHandler_PayRequest_Callback(t *testing.T) {
	t.Parallel()

	srv, s := newServer(t)

	amount := entity.LightMoney(25_000)
	cb := entity.NewPayCallback("lnbc250n1issued")

	s.EXPECT().
		ResolvePayRequest(gomock.Any(), "store-1", "BTC", "INV1", &amount).
		Return(entity.PayResolution{Callback: &cb}, nil)

	code, body := get(t, srv.URL+payPath+"?amount=25000")
	require.Equal(t, http.StatusOK, code)

	require.JSONEq(t, `{
		"pr": "lnbc250n1issued",
		"routes": [],
		"disposable": true
	}`, string(body))
}

func TestHandler_PayRequest_BadAmount(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	for _, amount := range []string{"abc", "-5", "0", "1.5"} {
		code, body := get(t, srv.URL+payPath+"?amount="+amount)
		require.Equal(t, http.StatusBadRequest, code, "amount %q", amount)
		require.JSONEq(t, `{"status":"ERROR","reason":"Invalid amount"}`, string(body))
	}
}

func TestHandler_PayRequest_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantReason string
	}{
		{
			name:       "not found",
			err:        entity.ErrNotFound,
			wantCode:   http.StatusNotFound,
			wantReason: "Invoice not found",
		},
		{
			name:       "invalid state",
			err:        entity.ErrInvalidState,
			wantCode:   http.StatusBadRequest,
			wantReason: "Invoice not in a valid payable state",
		},
		{
			name:       "expired",
			err:        entity.ErrExpired,
			wantCode:   http.StatusBadRequest,
			wantReason: "Invoice expired",
		},
		{
			name:       "amount out of bounds",
			err:        entity.ErrInvalidArgument,
			wantCode:   http.StatusBadRequest,
			wantReason: "Amount is out of bounds",
		},
		{
			name:       "no node configured",
			err:        entity.ErrConfigurationMissing,
			wantCode:   http.StatusInternalServerError,
			wantReason: "Lightning node is not configured",
		},
		{
			name:       "node failure",
			err:        entity.ErrNodeFailure,
			wantCode:   http.StatusBadGateway,
			wantReason: "Failed to generate payment request",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, s := newServer(t)

			s.EXPECT().
				ResolvePayRequest(gomock.Any(), "store-1", "BTC", "INV1", nil).
				Return(entity.PayResolution{}, tt.err)

			code, body := get(t, srv.URL+payPath)
			require.Equal(t, tt.wantCode, code)

			var status entity.StatusResponse
			require.NoError(t, json.Unmarshal(body, &status))
			require.Equal(t, "ERROR", status.Status)
			require.Equal(t, tt.wantReason, status.Reason)
		})
	}
}

func TestHandler_CreateInvoice(t *testing.T) {
	t.Parallel()

	srv, s := newServer(t)

	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	s.EXPECT().
		CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, inv entity.Invoice) (entity.Invoice, error) {
			require.Equal(t, "INV1", inv.ID)
			require.Equal(t, "store-1", inv.StoreID)
			require.Len(t, inv.PaymentMethods, 1)
			require.Equal(t, entity.NewLNURLPayMethodID("BTC"), inv.PaymentMethods[0].ID)

			inv.Status = entity.InvoiceStatusNew
			return inv, nil
		})

	reqBody := `{
		"id": "INV1",
		"storeId": "store-1",
		"amountBtc": "0.00000025",
		"expiresAt": "` + expiresAt.Format(time.RFC3339) + `"
	}`

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/internal/invoices", strings.NewReader(reqBody))
	require.NoError(t, err)
	req.Header.Set("X-Api-Key", "secret")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.CreateInvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "INV1", got.ID)
	require.Equal(t, entity.InvoiceStatusNew.String(), got.Status)
}

func TestHandler_Internal_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	code, _ := get(t, srv.URL+"/api/internal/payment-methods")
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestHandler_PaymentMethods(t *testing.T) {
	t.Parallel()

	srv, s := newServer(t)

	s.EXPECT().
		PaymentMethods(gomock.Any(), gomock.Any()).
		Return([]entity.LightningPaymentMethod{
			{
				InvoiceID: "INV1",
				ID:        entity.NewLNURLPayMethodID("BTC"),
				State:     "issued",
				Details: entity.PaymentMethodDetails{
					BOLT11:        "lnbc250n1issued",
					NodeInvoiceID: "rhash1",
					Amount:        25_000,
				},
			},
		}, 1, nil)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/internal/payment-methods?state=issued", nil)
	require.NoError(t, err)
	req.Header.Set("X-Api-Key", "secret")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.PaymentMethodsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, 1, got.TotalCount)
	require.Len(t, got.Items, 1)
	require.Equal(t, "BTC_LNURLPAY", got.Items[0].Method)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	code, body := get(t, srv.URL+"/api/health")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "OK\n", string(body))
}
