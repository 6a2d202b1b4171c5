// Package validator checks a reservation's client and selection fields before
// the ledger accepts a save. Errors carry the user-facing Spanish labels of
// the offending fields so the UI can render them as a single dialog.
package validator

import (
	"strings"

	apperrors "github.com/derekgf27/AntesalaReservationsDemo/pkg/errors"
	"github.com/derekgf27/AntesalaReservationsDemo/pkg/model"

	playground "github.com/go-playground/validator/v10"
)

var fieldLabels = map[string]string{
	"clientName":           "Nombre del Cliente",
	"clientEmail":          "Correo Electrónico",
	"clientPhone":          "Teléfono",
	"eventDate":            "Fecha del Evento",
	"eventTime":            "Hora del Evento",
	"eventType":            "Tipo de Evento",
	"otherEventType":       "Especifique el Tipo de Evento",
	"eventDuration":        "Duración del Evento",
	"roomType":             "Salón",
	"foodType":             "Tipo de Comida",
	"guestCount":           "Número de Invitados",
	"buffetPricePerPerson": "Precio del Buffet por Persona",
	"buffetRice":           "Arroz del Buffet",
	"buffetProtein1":       "Proteína del Buffet",
	"buffetSide":           "Acompañante del Buffet",
	"buffetSalad":          "Ensalada del Buffet",
}

// Label maps a field identifier to its user-facing name.
func Label(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

type Validator struct {
	validate *playground.Validate
}

func New() *Validator {
	return &Validator{validate: playground.New(validatorOptions()...)}
}

func validatorOptions() []playground.Option {
	return []playground.Option{playground.WithRequiredStructEnabled()}
}

// ValidateReservation returns a single validation error listing every missing
// or invalid field, or nil when the reservation can be saved.
func (v *Validator) ValidateReservation(details *model.ClientDetails, sel *model.Selection) error {
	var missing, invalid []string

	requireText := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	requireText("clientName", details.ClientName)
	requireText("clientPhone", details.ClientPhone)
	requireText("eventDate", details.EventDate)
	requireText("eventTime", details.EventTime)
	requireText("roomType", sel.RoomType)
	requireText("foodType", sel.FoodType)

	if sel.GuestCount < 1 {
		missing = append(missing, "guestCount")
	} else if sel.GuestCount > 500 {
		invalid = append(invalid, "guestCount")
	}

	if details.EventType == "other" && strings.TrimSpace(details.OtherEventType) == "" {
		missing = append(missing, "otherEventType")
	}

	if model.IsBuffet(sel.FoodType) {
		if !sel.BuffetPricePerPerson.IsPositive() {
			missing = append(missing, "buffetPricePerPerson")
		}
		b := sel.Buffet
		if b == nil {
			missing = append(missing, "buffetRice", "buffetProtein1", "buffetSide", "buffetSalad")
		} else {
			requireText("buffetRice", b.Rice)
			requireText("buffetProtein1", b.Protein1)
			requireText("buffetSide", b.Side)
			requireText("buffetSalad", b.Salad)
		}
	}

	// Struct tags cover the format checks: email, date layout, duration range.
	if err := v.validate.Struct(details); err != nil {
		var fieldErrors playground.ValidationErrors
		if ok := asValidationErrors(err, &fieldErrors); ok {
			for _, fe := range fieldErrors {
				field := jsonFieldName(fe.Field())
				if fe.Tag() == "required" {
					continue // blank requireds are already collected above
				}
				invalid = append(invalid, field)
			}
		} else {
			return apperrors.Internal("reservation validation failed", err)
		}
	}

	if len(missing) == 0 && len(invalid) == 0 {
		return nil
	}

	errDetails := map[string]any{}
	if len(missing) > 0 {
		errDetails["missingFields"] = labels(missing)
	}
	if len(invalid) > 0 {
		errDetails["invalidFields"] = labels(invalid)
	}
	return apperrors.Validation("La reservación tiene campos requeridos sin completar", errDetails)
}

func asValidationErrors(err error, target *playground.ValidationErrors) bool {
	ve, ok := err.(playground.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

func labels(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = Label(f)
	}
	return out
}

// jsonFieldName lowercases the struct field's first rune to line up with the
// json tag names used in fieldLabels.
func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
