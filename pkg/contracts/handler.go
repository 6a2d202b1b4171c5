package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every HTTP surface wired into the application.
type Handler interface {
	RegisterRoutes(router *httprouter.Router)
}
