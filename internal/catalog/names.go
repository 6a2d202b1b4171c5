package catalog

// Display names for non-priced identifiers carried on reservations.

var roomNames = map[string]string{
	"grand-hall":      "Salon 1",
	"intimate-room":   "Salon 2",
	"outdoor-terrace": "Salon 3",
}

var foodNames = map[string]string{
	"buffet":             "Buffet",
	"individual-plates":  "Platos Individuales",
	"cocktail-reception": "Recepción de Cóctel",
	"desayuno-9.95":      "Desayuno $9.95",
	"desayuno-10.95":     "Desayuno $10.95",
	"postres":            "Postres",
	"no-food":            "Sin Servicio de Comida",
}

var eventTypeNames = map[string]string{
	"wedding":        "Boda",
	"birthdays":      "Cumpleaños",
	"pharmaceutical": "Farmacéutica",
	"baptism":        "Bautizo",
	"graduation":     "Graduación",
	"fiesta-navidad": "Fiesta de Navidad",
	"other":          "Otro",
}

var buffetItemNames = map[string]string{
	"arroz-guisado":         "Arroz Guisado",
	"arroz-blanco":          "Arroz Blanco",
	"arroz-mamposteao":      "Arroz Mamposteao",
	"pollo-guisado":         "Pollo Guisado",
	"pollo-horno":           "Pollo al Horno",
	"pernil":                "Pernil",
	"carne-mechada":         "Carne Mechada",
	"habichuelas-rosadas":   "Habichuelas Rosadas",
	"habichuelas-blancas":   "Habichuelas Blancas",
	"ensalada-verde":        "Ensalada Verde",
	"ensalada-coditos":      "Ensalada de Coditos",
	"ensalada-papa":         "Ensalada de Papa",
	"tostones":              "Tostones",
	"amarillos":             "Amarillos",
	"panecillos":            "Panecillos",
	"agua-refresco":         "Agua y Refresco",
	"pasteles":              "Pasteles",
	"cafe":                  "Café",
	"jugo":                  "Jugo",
	"avena":                 "Avena",
	"wrap-jamon-queso":      "Wrap de Jamón y Queso",
	"bocadillo-jamon-queso": "Bocadillo de Jamón y Queso",
	"flan-queso":            "Flan de Queso",
	"flan-vainilla":         "Flan de Vainilla",
	"flan-coco":             "Flan de Coco",
	"cheesecake":            "Cheesecake",
	"bizcocho-chocolate":    "Bizcocho de Chocolate",
	"bizcocho-zanahoria":    "Bizcocho de Zanahoria",
	"tres-leches":           "Tres Leches",
	"tembleque":             "Tembleque",
	"postres-surtidos":      "Postres Surtidos",
}

func nameOr(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

// RoomName resolves a room id to its display name, falling back to the id.
func RoomName(id string) string { return nameOr(roomNames, id) }

// FoodName resolves a food option id to its display name.
func FoodName(id string) string { return nameOr(foodNames, id) }

// EventTypeName resolves an event type id to its display name.
func EventTypeName(id string) string { return nameOr(eventTypeNames, id) }

// BuffetItemName resolves a buffet/breakfast/dessert sub-selection value.
func BuffetItemName(id string) string { return nameOr(buffetItemNames, id) }

// EventTypes lists the selectable event type ids.
func EventTypes() []string {
	return []string{"wedding", "birthdays", "pharmaceutical", "baptism", "graduation", "fiesta-navidad", "other"}
}

// Rooms lists the selectable room ids.
func Rooms() []string {
	return []string{"grand-hall", "intimate-room", "outdoor-terrace"}
}
