package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/auth"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/http/api"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	OK      bool          `json:"ok"`
	Session *auth.Session `json:"session"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, ledger.NewError(ledger.ReasonValidation, err.Error()))
		return
	}

	session, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusOK, loginResponse{OK: true, Session: session})
}
