package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/derekgf27/AntesalaReservationsDemo/internal/catalog"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/invoice"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/ledger"
	"github.com/derekgf27/AntesalaReservationsDemo/internal/ledger/validator"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/events"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/logger"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type memoryStore struct {
	reservations []model.Reservation
	beverages    []model.CatalogItem
}

func (m *memoryStore) LoadAll(_ context.Context) ([]model.Reservation, error) {
	return m.reservations, nil
}

func (m *memoryStore) SaveAll(_ context.Context, reservations []model.Reservation) error {
	m.reservations = reservations
	return nil
}

func (m *memoryStore) LoadCustomBeverages(_ context.Context) ([]model.CatalogItem, error) {
	return m.beverages, nil
}

func (m *memoryStore) SaveCustomBeverages(_ context.Context, items []model.CatalogItem) error {
	m.beverages = items
	return nil
}

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	log := logger.Discard()
	store := &memoryStore{}
	cat := catalog.New(store, log)
	svc := ledger.NewService(store, cat, validator.New(), events.NopPublisher{}, log)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	router := httprouter.New()
	New(svc, cat, invoice.NewGenerator(cat, log), log).RegisterRoutes(router)
	return router
}

const createBody = `{
	"clientName": "Ana Rivera",
	"clientPhone": "787-555-0100",
	"eventDate": "2026-10-15",
	"eventTime": "18:00",
	"eventType": "wedding",
	"eventDuration": 4,
	"guestCount": 50,
	"roomType": "grand-hall",
	"foodType": "buffet",
	"buffetPricePerPerson": 20,
	"buffet": {"rice": "arroz-guisado", "protein1": "pernil", "side": "tostones", "salad": "ensalada-verde"},
	"beverages": {"medalla": 2},
	"entremeses": {},
	"additionalServices": {},
	"tipPercentage": 0,
	"depositPercentage": 20
}`

func doJSON(t *testing.T, router *httprouter.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createReservation(t *testing.T, router *httprouter.Router) model.Reservation {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/reservations", createBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data model.Reservation `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return resp.Data
}

func TestCreateAndGetReservation(t *testing.T) {
	router := newTestRouter(t)
	created := createReservation(t, router)

	if created.ID == "" {
		t.Fatal("created reservation has no id")
	}
	if created.Pricing.TotalCost.String() != "1230.56" {
		t.Errorf("totalCost = %s, want 1230.56", created.Pricing.TotalCost)
	}

	rec := doJSON(t, router, http.MethodGet, "/reservations/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/reservations/no-such-id", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing reservation status = %d, want 404", rec.Code)
	}
}

func TestCreateValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/reservations", `{"clientName": ""}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422; body %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	router := newTestRouter(t)
	created := createReservation(t, router)

	rec := doJSON(t, router, http.MethodDelete, "/reservations/"+created.ID, "")
	if rec.Code != http.StatusConflict {
		t.Errorf("unconfirmed delete status = %d, want 409", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/reservations/"+created.ID+"?confirm=true", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("confirmed delete status = %d, want 204", rec.Code)
	}
}

func TestPaymentEndpoints(t *testing.T) {
	router := newTestRouter(t)
	created := createReservation(t, router)
	base := "/reservations/" + created.ID

	rec := doJSON(t, router, http.MethodPost, base+"/payments", `{"amount": 500, "date": "2026-09-01"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("payment status = %d, body %s", rec.Code, rec.Body.String())
	}

	// Overpayment is refused with a conflict.
	rec = doJSON(t, router, http.MethodPost, base+"/payments", `{"amount": 99999}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("overpayment status = %d, want 409", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, base+"/deposit/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, base+"/payments/0", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("unconfirmed payment delete status = %d, want 409", rec.Code)
	}
	rec = doJSON(t, router, http.MethodDelete, base+"/payments/0?confirm=true", "")
	if rec.Code != http.StatusOK {
		t.Errorf("payment delete status = %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodDelete, base+"/payments/notanumber?confirm=true", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad index status = %d, want 400", rec.Code)
	}
}

func TestQuoteDoesNotPersist(t *testing.T) {
	router := newTestRouter(t)

	quote := `{
		"eventDuration": 4,
		"guestCount": 50,
		"foodType": "buffet",
		"buffetPricePerPerson": 20,
		"beverages": {"medalla": 2},
		"entremeses": {},
		"additionalServices": {},
		"tipPercentage": 0,
		"depositPercentage": 20
	}`
	rec := doJSON(t, router, http.MethodPost, "/pricing/quote", quote)
	if rec.Code != http.StatusOK {
		t.Fatalf("quote status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.Breakdown `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode quote: %v", err)
	}
	if resp.Data.TotalCost.String() != "1230.56" {
		t.Errorf("quote totalCost = %s, want 1230.56", resp.Data.TotalCost)
	}

	rec = doJSON(t, router, http.MethodGet, "/reservations", "")
	var list struct {
		Data []model.Reservation `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Data) != 0 {
		t.Errorf("quote persisted %d reservations", len(list.Data))
	}
}

func TestInvoiceExport(t *testing.T) {
	router := newTestRouter(t)
	created := createReservation(t, router)

	rec := doJSON(t, router, http.MethodGet, "/reservations/"+created.ID+"/invoice", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("invoice status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("invoice body is not a PDF")
	}
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/catalog/beverages", "/catalog/entremeses", "/catalog/services", "/catalog/food-options"} {
		rec := doJSON(t, router, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, rec.Code)
		}
	}

	rec := doJSON(t, router, http.MethodPost, "/catalog/beverages/custom",
		`{"name": "Coquito", "price": 30, "alcohol": true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("custom beverage status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data model.CatalogItem `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode custom beverage: %v", err)
	}
	if resp.Data.ID != "coquito" {
		t.Errorf("custom beverage id = %q", resp.Data.ID)
	}

	rec = doJSON(t, router, http.MethodDelete, "/catalog/beverages/custom/coquito", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("custom beverage delete status = %d", rec.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	createReservation(t, router)

	rec := doJSON(t, router, http.MethodGet, "/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("stats status = %d", rec.Code)
	}
	var resp struct {
		Data ledger.Stats `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if resp.Data.TotalReservations != 1 {
		t.Errorf("totalReservations = %d, want 1", resp.Data.TotalReservations)
	}
	if got := resp.Data.TotalBooked.String(); got != "1230.56" {
		t.Errorf("totalBooked = %s", got)
	}
}
