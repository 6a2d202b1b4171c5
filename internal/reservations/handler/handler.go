// Package handler exposes the reservation ledger, the pricing engine, the
// catalogs and the invoice generator over HTTP.
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/derekgf27/AntesalaReservationsDemo/internal/catalog"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/invoice"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/ledger"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/pricing"
	apperrors "github.com/derekgf27/AntesalaReservationsDemo/pkg/errors"
	httpx "github.com/derekgf27/AntesalaReservationsDemo/pkg/http"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/logger"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
)

type Handler struct {
	ledger   *ledger.Service
	catalog  *catalog.Catalog
	invoices *invoice.Generator
	log      *logger.Logger
}

func New(svc *ledger.Service, cat *catalog.Catalog, gen *invoice.Generator, log *logger.Logger) *Handler {
	return &Handler{ledger: svc, catalog: cat, invoices: gen, log: log}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/reservations", h.List)
	router.POST("/reservations", h.Create)
	router.GET("/reservations/:id", h.Get)
	router.PUT("/reservations/:id", h.Update)
	router.DELETE("/reservations/:id", h.Delete)

	router.POST("/reservations/:id/deposit/toggle", h.ToggleDeposit)
	router.POST("/reservations/:id/payments", h.RecordPayment)
	router.DELETE("/reservations/:id/payments/:index", h.DeletePayment)
	router.GET("/reservations/:id/invoice", h.ExportInvoice)

	router.POST("/pricing/quote", h.Quote)
	router.GET("/stats", h.GetStats)

	router.GET("/catalog/beverages", h.ListBeverages)
	router.GET("/catalog/entremeses", h.ListEntremeses)
	router.GET("/catalog/services", h.ListServices)
	router.GET("/catalog/food-options", h.ListFoodOptions)
	router.POST("/catalog/beverages/custom", h.AddCustomBeverage)
	router.DELETE("/catalog/beverages/custom/:id", h.RemoveCustomBeverage)
}

// ReservationRequest is the save payload: the frozen client fields plus the
// current selection. Pricing is always recomputed server-side.
type ReservationRequest struct {
	model.ClientDetails
	model.Selection
}

func (h *Handler) List(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httpx.WriteSuccess(w, h.ledger.GetAll())
}

func (h *Handler) Get(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	reservation, err := h.ledger.Get(ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, reservation)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req ReservationRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	reservation, err := h.ledger.Create(r.Context(), req.ClientDetails, req.Selection)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteCreated(w, reservation)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req ReservationRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	reservation, err := h.ledger.Update(r.Context(), ps.ByName("id"), req.Selection)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, reservation)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.ledger.Delete(r.Context(), ps.ByName("id"), confirmed(r)); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteNoContent(w)
}

func (h *Handler) ToggleDeposit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reservation, err := h.ledger.ToggleDeposit(r.Context(), ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, reservation)
}

type paymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date,omitempty"`
	Notes  string          `json:"notes,omitempty"`
}

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req paymentRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	reservation, err := h.ledger.RecordPayment(r.Context(), ps.ByName("id"), req.Amount, req.Date, req.Notes)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, reservation)
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	index, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("payment index must be a number"))
		return
	}

	reservation, err := h.ledger.DeletePayment(r.Context(), ps.ByName("id"), index, confirmed(r))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, reservation)
}

func (h *Handler) ExportInvoice(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	reservation, err := h.ledger.Get(id)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	number := invoice.Number(time.Now().Year(), h.invoiceSequence(id))
	data, err := h.invoices.Generate(reservation, number)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "Invoice-"+number+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// invoiceSequence is the reservation's 1-based position in the date-ordered
// collection, matching the numbering printed on earlier invoices.
func (h *Handler) invoiceSequence(id string) int {
	for i, r := range h.ledger.GetAll() {
		if r.ID == id {
			return i + 1
		}
	}
	return 1
}

type quoteRequest struct {
	EventDuration int `json:"eventDuration,omitempty"`
	model.Selection
}

// Quote prices a selection without saving anything. The form calls this on
// every relevant mutation.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req quoteRequest
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	sel := *req.Selection.Clone()
	sel.Normalize()
	httpx.WriteSuccess(w, pricing.Compute(&sel, req.EventDuration, h.catalog))
}

func (h *Handler) GetStats(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httpx.WriteSuccess(w, h.ledger.Stats())
}

func (h *Handler) ListBeverages(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httpx.WriteSuccess(w, h.catalog.BeverageItems())
}

func (h *Handler) ListEntremeses(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httpx.WriteSuccess(w, h.catalog.EntremesItems())
}

func (h *Handler) ListServices(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httpx.WriteSuccess(w, h.catalog.ServiceItems())
}

func (h *Handler) ListFoodOptions(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httpx.WriteSuccess(w, h.catalog.FoodOptionItems())
}

func (h *Handler) AddCustomBeverage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req catalog.CustomBeverageInput
	if err := decodeBody(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	item, err := h.catalog.AddCustomBeverage(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteCreated(w, item)
}

func (h *Handler) RemoveCustomBeverage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.catalog.RemoveCustomBeverage(r.Context(), ps.ByName("id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteNoContent(w)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.InvalidInput("invalid request body: " + err.Error())
	}
	return nil
}

// confirmed reads the confirmation flag destructive routes require.
func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}
