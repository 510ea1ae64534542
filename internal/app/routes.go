package app

import (
	"net/http"

	"github.com/ferdiebergado/userhub/internal/middleware"
	"github.com/ferdiebergado/userhub/internal/platform/router"
	"github.com/ferdiebergado/userhub/internal/platform/validation"
	"github.com/ferdiebergado/userhub/internal/user"
)

// UserEndpoint is the path every user operation is addressed under.
const UserEndpoint = "/connect/User"

func mountUserRoutes(r router.Router, handler *user.Handler, validator validation.Validator, maxBodySize int64) {
	r.Group(UserEndpoint, func(gr router.Router) {
		gr.Post("/newUser", handler.NewUser,
			middleware.CheckContentType,
			middleware.DecodePayload[user.NewUserRequest](maxBodySize),
			middleware.ValidateInput[user.NewUserRequest](validator))
		gr.Post("/save", handler.Save,
			middleware.CheckContentType,
			middleware.DecodePayload[user.SaveRequest](maxBodySize),
			middleware.ValidateInput[user.SaveRequest](validator))
		gr.Post("/saveAll", handler.SaveAll,
			middleware.CheckContentType,
			middleware.DecodePayload[user.SaveAllRequest](maxBodySize),
			middleware.ValidateInput[user.SaveAllRequest](validator))
		gr.Post("/getAll", handler.GetAll)
	})
}

func mountHealthRoutes(r router.Router, handler http.HandlerFunc) {
	r.Get("/health", handler)
}
