package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lngate/lnurlpay/internal/entity"
)

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// SendLNURLErr renders the protocol error form {"status":"ERROR","reason":…}.
// Wallets show reason to the payer, so it carries no internals.
func SendLNURLErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, reason string) {
	slog.ErrorContext(ctx, "api error", "error", originErr.Error())
	SendJSON(ctx, w, code, entity.NewErrorResponse(reason))
}
