// Package api carries the response envelope shared by all handlers: every
// response has ok, and failures carry a stable reason code plus a
// human-readable message.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/auth"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/invoice"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
)

type failure struct {
	OK      bool   `json:"ok"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Fail maps err's reason code to a status and writes the failure envelope.
// Errors outside the taxonomy are treated as store failures.
func Fail(w http.ResponseWriter, err error) {
	var e *ledger.Error
	if !errors.As(err, &e) {
		slog.Error("unclassified handler error", "error", err)
		e = ledger.ErrStoreUnavailable
	}

	JSON(w, statusFor(e.Reason), failure{Reason: string(e.Reason), Message: e.Message})
}

func statusFor(reason ledger.Reason) int {
	switch reason {
	case ledger.ReasonValidation, invoice.ReasonVatMismatch, invoice.ReasonRoleNotInForm:
		return http.StatusBadRequest
	case auth.ReasonInvalidCredentials:
		return http.StatusUnauthorized
	case ledger.ReasonItemOrFormNotFound:
		return http.StatusNotFound
	case ledger.ReasonNoOpenForm, ledger.ReasonAmbiguousOpenForm,
		ledger.ReasonDuplicateKey, ledger.ReasonConflict,
		ledger.ReasonFormChanged, auth.ReasonAlreadyLoggedIn:
		return http.StatusConflict
	case ledger.ReasonStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
