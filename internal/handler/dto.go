package handler

import (
	"time"

	"github.com/msomdec/tasklist/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	CreatedAt string `json:"data_criacao"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// TaskDTO is the JSON representation of a task.
type TaskDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Completed   bool   `json:"concluida"`
	CreatedAt   string `json:"data_criacao"`
	UpdatedAt   string `json:"data_atualizacao"`
	UserID      int64  `json:"usuario_id"`
}

func toTaskDTO(t *domain.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339Nano),
		UserID:      t.UserID,
	}
}

func toTaskDTOs(tasks []domain.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i := range tasks {
		dtos[i] = toTaskDTO(&tasks[i])
	}
	return dtos
}

// TaskPatchRequest is the body of PUT /tarefas/{id}. Absent fields are nil.
type TaskPatchRequest struct {
	Title       *string `json:"titulo"`
	Description *string `json:"descricao"`
	Completed   *bool   `json:"concluida"`
}

func (p TaskPatchRequest) toDomain() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       p.Title,
		Description: p.Description,
		Completed:   p.Completed,
	}
}
