package validator

import (
	"testing"

	apperrors "github.com/derekgf27/AntesalaReservationsDemo/pkg/errors"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	"github.com/shopspring/decimal"
)

func validDetails() *model.ClientDetails {
	return &model.ClientDetails{
		ClientName:  "Ana Rivera",
		ClientPhone: "787-555-0100",
		EventDate:   "2026-10-15",
		EventTime:   "18:00",
		EventType:   "wedding",
	}
}

func validSelection() *model.Selection {
	return &model.Selection{
		GuestCount:           50,
		RoomType:             "grand-hall",
		FoodType:             "individual-plates",
		Beverages:            map[string]model.SelectionItem{},
		Entremeses:           map[string]model.SelectionItem{},
		AdditionalServices:   map[string]bool{},
		BuffetPricePerPerson: decimal.Zero,
	}
}

func missingLabels(t *testing.T, err error) []string {
	t.Helper()
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Fatalf("code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
	fields, _ := appErr.Details["missingFields"].([]string)
	return fields
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestValidReservationPasses(t *testing.T) {
	v := New()
	if err := v.ValidateReservation(validDetails(), validSelection()); err != nil {
		t.Fatalf("valid reservation rejected: %v", err)
	}
}

func TestMissingRequiredFields(t *testing.T) {
	v := New()
	details := validDetails()
	details.ClientName = "  "
	details.EventDate = ""
	sel := validSelection()
	sel.RoomType = ""
	sel.GuestCount = 0

	err := v.ValidateReservation(details, sel)
	fields := missingLabels(t, err)

	for _, want := range []string{"Nombre del Cliente", "Fecha del Evento", "Salón", "Número de Invitados"} {
		if !contains(fields, want) {
			t.Errorf("missing fields %v should contain %q", fields, want)
		}
	}
}

func TestOtherEventTypeNeedsText(t *testing.T) {
	v := New()
	details := validDetails()
	details.EventType = "other"

	err := v.ValidateReservation(details, validSelection())
	if !contains(missingLabels(t, err), "Especifique el Tipo de Evento") {
		t.Error("other event type without text should be rejected")
	}

	details.OtherEventType = "Reunión familiar"
	if err := v.ValidateReservation(details, validSelection()); err != nil {
		t.Errorf("other event type with text rejected: %v", err)
	}
}

func TestBuffetRequiresSubSelectionsAndPrice(t *testing.T) {
	v := New()
	sel := validSelection()
	sel.FoodType = "buffet"

	err := v.ValidateReservation(validDetails(), sel)
	fields := missingLabels(t, err)
	for _, want := range []string{
		"Precio del Buffet por Persona",
		"Arroz del Buffet",
		"Proteína del Buffet",
		"Acompañante del Buffet",
		"Ensalada del Buffet",
	} {
		if !contains(fields, want) {
			t.Errorf("missing fields %v should contain %q", fields, want)
		}
	}

	sel.BuffetPricePerPerson = decimal.NewFromInt(20)
	sel.Buffet = &model.BuffetChoices{
		Rice:     "arroz-guisado",
		Protein1: "pernil",
		Side:     "tostones",
		Salad:    "ensalada-verde",
	}
	if err := v.ValidateReservation(validDetails(), sel); err != nil {
		t.Errorf("complete buffet rejected: %v", err)
	}
}

func TestInvalidEmailAndGuestCount(t *testing.T) {
	v := New()
	details := validDetails()
	details.ClientEmail = "not-an-email"
	sel := validSelection()
	sel.GuestCount = 900

	err := v.ValidateReservation(details, sel)
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Fatalf("code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
	invalid, _ := appErr.Details["invalidFields"].([]string)
	if !contains(invalid, "Correo Electrónico") {
		t.Errorf("invalid fields %v should contain the email label", invalid)
	}
	if !contains(invalid, "Número de Invitados") {
		t.Errorf("invalid fields %v should contain the guest count label", invalid)
	}
}
