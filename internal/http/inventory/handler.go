package inventory

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/http/api"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/inventory"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
)

type Handler struct {
	svc *inventory.Service
}

func NewHandler(svc *inventory.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/items", h.appendItem)
	r.Delete("/items", h.removeItem)
	r.Patch("/items", h.updateQuantities)
}

type appendItemRequest struct {
	Barcode          string `json:"barcode"`
	Type             string `json:"type"`
	Name             string `json:"name"`
	Unit             string `json:"unit"`
	Price            any    `json:"price"`
	PreviousQuantity any    `json:"previous_quantity"`
}

type appendItemResponse struct {
	OK         bool            `json:"ok"`
	DocumentID string          `json:"document_id"`
	Item       *inventory.Item `json:"item"`
}

func (h *Handler) appendItem(w http.ResponseWriter, r *http.Request) {
	var req appendItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, ledger.NewError(ledger.ReasonValidation, err.Error()))
		return
	}

	res, err := h.svc.Append(r.Context(), inventory.AppendParams{
		Barcode:          req.Barcode,
		Type:             req.Type,
		Name:             req.Name,
		Unit:             req.Unit,
		Price:            req.Price,
		PreviousQuantity: req.PreviousQuantity,
	})
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, appendItemResponse{
		OK:         true,
		DocumentID: res.FormID,
		Item:       res.Item,
	})
}

type removeItemRequest struct {
	Barcode string `json:"barcode"`
}

type removeItemResponse struct {
	OK               bool               `json:"ok"`
	DocumentID       string             `json:"document_id"`
	Barcode          string             `json:"barcode"`
	RemovedCount     int                `json:"removed_count"`
	Pull             ledger.WriteCounts `json:"pull"`
	Set              ledger.WriteCounts `json:"set"`
	ItemNumbersAfter []string           `json:"item_numbers_after"`
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, ledger.NewError(ledger.ReasonValidation, err.Error()))
		return
	}

	res, err := h.svc.Remove(r.Context(), req.Barcode)
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusOK, removeItemResponse{
		OK:               true,
		DocumentID:       res.FormID,
		Barcode:          req.Barcode,
		RemovedCount:     res.RemovedCount,
		Pull:             res.Pull,
		Set:              res.Set,
		ItemNumbersAfter: res.ItemNumbers,
	})
}

type updateQuantitiesRequest struct {
	Barcode  string `json:"barcode"`
	AddStock any    `json:"addstock"`
	Sold     any    `json:"sold"`
}

type updateQuantitiesResponse struct {
	OK         bool            `json:"ok"`
	DocumentID string          `json:"document_id"`
	QRCode     string          `json:"current_form_qr_code"`
	Item       *inventory.Item `json:"item"`
	BalanceOK  bool            `json:"balance_ok"`
}

func (h *Handler) updateQuantities(w http.ResponseWriter, r *http.Request) {
	var req updateQuantitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, ledger.NewError(ledger.ReasonValidation, err.Error()))
		return
	}

	res, err := h.svc.UpdateQuantities(r.Context(), req.Barcode, req.AddStock, req.Sold)
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusOK, updateQuantitiesResponse{
		OK:         true,
		DocumentID: res.FormID,
		QRCode:     res.QRCode,
		Item:       res.Item,
		BalanceOK:  res.BalanceOK,
	})
}
