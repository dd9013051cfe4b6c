package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/pkg/apiErrors"
)

func ListTasks(repo repository.TaskRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := repo.List()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar tarefas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar tarefas", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
	}
}

func CreateTask(repo repository.TaskRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var task domain.Task

		if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if task.Title == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Título é obrigatório", nil)
			return
		}

		if task.Status == "" {
			task.Status = domain.TaskTodo
		}

		created, err := repo.Create(&task)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar tarefa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar tarefa", nil)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

func UpdateTask(repo repository.TaskRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var task domain.Task
		if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		task.ID = id

		updated, err := repo.Update(&task)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Tarefa não encontrada", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao atualizar tarefa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar tarefa", nil)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

func DeleteTask(repo repository.TaskRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := repo.Delete(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Tarefa não encontrada", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao excluir tarefa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir tarefa", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
