package handler

import (
	"net/http"
	"strings"

	"github.com/msomdec/tasklist/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, tasks *service.TaskService, db Pinger) {
	authHandler := NewAuthHandler(auth)
	taskHandler := NewTaskHandler(tasks)

	health := HandleHealth(db)
	mux.Handle("GET /health", health)
	mux.Handle("GET /healthz", health)

	mux.HandleFunc("POST /registro", authHandler.HandleRegister)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)

	mux.Handle("GET /tarefas", RequireAuth(auth, taskHandler.HandleList))
	mux.Handle("POST /tarefas", RequireAuth(auth, taskHandler.HandleCreate))
	mux.Handle("GET /tarefas/{id}", RequireAuth(auth, taskHandler.HandleGet))
	mux.Handle("PUT /tarefas/{id}", RequireAuth(auth, taskHandler.HandleUpdate))
	mux.Handle("DELETE /tarefas/{id}", RequireAuth(auth, taskHandler.HandleDelete))

	// Method-less patterns only match when no method-specific pattern does.
	mux.Handle("/health", methodNotAllowed(http.MethodGet))
	mux.Handle("/healthz", methodNotAllowed(http.MethodGet))
	mux.Handle("/registro", methodNotAllowed(http.MethodPost))
	mux.Handle("/login", methodNotAllowed(http.MethodPost))
	mux.Handle("/tarefas", methodNotAllowed(http.MethodGet, http.MethodPost))
	mux.Handle("/tarefas/{id}", methodNotAllowed(http.MethodGet, http.MethodPut, http.MethodDelete))

	mux.HandleFunc("/", HandleNotFound)
}

// HandleNotFound answers any unknown route.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Rota não encontrada!")
}

func methodNotAllowed(allowed ...string) http.Handler {
	allow := strings.Join(allowed, ", ")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		writeError(w, http.StatusMethodNotAllowed, "Método HTTP não permitido para esta rota!")
	})
}
