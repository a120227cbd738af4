package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// APIVersion is reported by the health endpoint.
const APIVersion = "1.0.0"

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealth reports API status and database connectivity.
// GET /health
func HandleHealth(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC().Format(time.RFC3339)

		if err := db.Ping(r.Context()); err != nil {
			slog.Error("health check", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"status":      "ERRO",
				"mensagem":    "Problemas na API",
				"timestamp":   now,
				"versao":      APIVersion,
				"banco_dados": "desconectado",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"status":      "OK",
			"mensagem":    "API funcionando corretamente!",
			"timestamp":   now,
			"versao":      APIVersion,
			"banco_dados": "conectado",
		})
	}
}
