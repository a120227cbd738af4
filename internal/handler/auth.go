package handler

import (
	"errors"
	"net/http"

	"github.com/msomdec/tasklist/internal/domain"
	"github.com/msomdec/tasklist/internal/service"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister creates an account.
// POST /registro
// Request:  {"nome":"...","email":"...","senha":"..."}
// Response: 201 {"mensagem":"...","usuario":{...}}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"nome"`
		Email    string `json:"email"`
		Password string `json:"senha"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Nome, email e senha são obrigatórios!")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Nome, email e senha são obrigatórios!")
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, "Este email já está sendo usado!")
		default:
			writeInternalError(w, r, "register user", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"mensagem": "Usuário criado com sucesso!",
		"usuario":  toUserDTO(user),
	})
}

// HandleLogin exchanges credentials for a bearer token.
// POST /login
// Request:  {"email":"...","senha":"..."}
// Response: 200 {"mensagem":"...","token":"...","usuario":{...}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"senha"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Email e senha são obrigatórios!")
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Email e senha são obrigatórios!")
		case errors.Is(err, domain.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Email ou senha incorretos!")
		default:
			writeInternalError(w, r, "login user", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"mensagem": "Login realizado com sucesso!",
		"token":    token,
		"usuario":  toUserDTO(user),
	})
}
