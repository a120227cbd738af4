package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/msomdec/tasklist/internal/domain"
	"github.com/msomdec/tasklist/internal/service"
)

// TaskHandler serves the task endpoints. Every method runs behind
// RequireAuth and only touches the caller's own tasks.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// HandleList returns the caller's tasks, newest first.
// GET /tarefas
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request, user *domain.User) {
	tasks, err := h.tasks.ListForUser(r.Context(), user.ID)
	if err != nil {
		writeInternalError(w, r, "list tasks", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tarefas": toTaskDTOs(tasks),
		"total":   len(tasks),
	})
}

// HandleCreate adds a task.
// POST /tarefas
// Request: {"titulo":"...","descricao":"..."}
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request, user *domain.User) {
	var req struct {
		Title       string `json:"titulo"`
		Description string `json:"descricao"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Título é obrigatório!")
		return
	}

	task, err := h.tasks.Create(r.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTitle) {
			writeError(w, http.StatusBadRequest, "Título é obrigatório!")
			return
		}
		writeInternalError(w, r, "create task", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"mensagem": "Tarefa criada com sucesso!",
		"tarefa":   toTaskDTO(task),
	})
}

// HandleGet returns one task.
// GET /tarefas/{id}
func (h *TaskHandler) HandleGet(w http.ResponseWriter, r *http.Request, user *domain.User) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.GetOwned(r.Context(), id, user.ID)
	if err != nil {
		h.writeTaskError(w, r, "get task", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tarefa": toTaskDTO(task),
	})
}

// HandleUpdate applies a partial update.
// PUT /tarefas/{id}
// Request: any of {"titulo":"...","descricao":"...","concluida":true}
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request, user *domain.User) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var req TaskPatchRequest
	err := readJSON(w, r, &req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.rejectBody(w, r, id, user.ID, "Dados inválidos!")
		return
	}
	patch := req.toDomain()
	if patch.IsEmpty() {
		h.rejectBody(w, r, id, user.ID, "Dados não fornecidos!")
		return
	}

	task, err := h.tasks.UpdateOwned(r.Context(), id, user.ID, patch)
	if err != nil {
		h.writeTaskError(w, r, "update task", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"mensagem": "Tarefa atualizada com sucesso!",
		"tarefa":   toTaskDTO(task),
	})
}

// HandleDelete removes a task.
// DELETE /tarefas/{id}
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request, user *domain.User) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.tasks.DeleteOwned(r.Context(), id, user.ID); err != nil {
		h.writeTaskError(w, r, "delete task", err)
		return
	}

	writeMessage(w, http.StatusOK, "Tarefa excluída com sucesso!")
}

// rejectBody answers an unusable update body. The task is looked up first
// so a task the caller does not own is still a 404.
func (h *TaskHandler) rejectBody(w http.ResponseWriter, r *http.Request, id, userID int64, message string) {
	if _, err := h.tasks.GetOwned(r.Context(), id, userID); err != nil {
		h.writeTaskError(w, r, "get task", err)
		return
	}
	writeError(w, http.StatusBadRequest, message)
}

func (h *TaskHandler) writeTaskError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Tarefa não encontrada!")
	case errors.Is(err, domain.ErrEmptyTitle):
		writeError(w, http.StatusBadRequest, "Título não pode estar vazio!")
	default:
		writeInternalError(w, r, op, err)
	}
}

// taskID parses the {id} path value. A non-numeric id is an unknown route.
func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		HandleNotFound(w, r)
		return 0, false
	}
	return id, true
}
