package app

import (
	"context"
	"net/http"

	"github.com/ferdiebergado/userhub/internal/pkg/message"
	"github.com/ferdiebergado/userhub/internal/pkg/web"
)

type HealthData struct {
	Status string `json:"status"`
}

func handleHealth(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ping(r.Context()); err != nil {
			web.RespondServiceUnavailable(w, err, message.StoreDown, nil)
			return
		}

		msg := message.Healthy
		web.RespondOK(w, &msg, &HealthData{Status: "up"})
	}
}
