package invoice

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/http/api"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/invoice"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/items", h.appendItem)
	r.Delete("/items", h.removeItem)
	r.Patch("/employees", h.patchEmployee)
}

type appendItemRequest struct {
	ReceiptNumber string `json:"receipt_number"`
	CustomerName  string `json:"customer_name"`
	Type          string `json:"type"`
	VatableSales  any    `json:"vatable_sales"`
	VatAmount     any    `json:"vat_amount"`
	TotalAmount   any    `json:"total_amount"`
}

type appendItemResponse struct {
	OK         bool          `json:"ok"`
	DocumentID string        `json:"document_id"`
	Item       *invoice.Item `json:"item"`
}

func (h *Handler) appendItem(w http.ResponseWriter, r *http.Request) {
	var req appendItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, ledger.NewError(ledger.ReasonValidation, err.Error()))
		return
	}

	res, err := h.svc.Append(r.Context(), invoice.AppendParams{
		ReceiptNumber: req.ReceiptNumber,
		CustomerName:  req.CustomerName,
		Type:          req.Type,
		VatableSales:  req.VatableSales,
		VatAmount:     req.VatAmount,
		TotalAmount:   req.TotalAmount,
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
	ReceiptNumber string `json:"receipt_number"`
}

type removeItemResponse struct {
	OK               bool               `json:"ok"`
	DocumentID       string             `json:"document_id"`
	ReceiptNumber    string             `json:"receipt_number"`
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

	res, err := h.svc.Remove(r.Context(), req.ReceiptNumber)
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusOK, removeItemResponse{
		OK:               true,
		DocumentID:       res.FormID,
		ReceiptNumber:    req.ReceiptNumber,
		RemovedCount:     res.RemovedCount,
		Pull:             res.Pull,
		Set:              res.Set,
		ItemNumbersAfter: res.ItemNumbers,
	})
}

type patchEmployeeRequest struct {
	Role           string `json:"role"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
}

type patchEmployeeResponse struct {
	OK              bool               `json:"ok"`
	DocumentID      string             `json:"document_id"`
	Counts          ledger.WriteCounts `json:"counts"`
	UpdatedEmployee invoice.Employee   `json:"updated_employee"`
}

func (h *Handler) patchEmployee(w http.ResponseWriter, r *http.Request) {
	var req patchEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, ledger.NewError(ledger.ReasonValidation, err.Error()))
		return
	}

	res, err := h.svc.PatchEmployee(r.Context(), req.Role, req.EmployeeNumber, req.Name)
	if err != nil {
		api.Fail(w, err)
		return
	}

	api.JSON(w, http.StatusOK, patchEmployeeResponse{
		OK:              true,
		DocumentID:      res.FormID,
		Counts:          res.Counts,
		UpdatedEmployee: res.Employee,
	})
}
