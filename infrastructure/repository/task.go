package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/QUATTROMKT/info-sistema/infrastructure/database/postgres"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/pkg/utils"
)

const tasksTable = "tasks"

type TaskRepository interface {
	List() ([]*domain.Task, error)
	GetByID(id string) (*domain.Task, error)
	Create(task *domain.Task) (*domain.Task, error)
	Update(task *domain.Task) (*domain.Task, error)
	Delete(id string) error
}

type taskRepository struct {
	conn *postgres.Connection
}

func NewTaskRepository(conn *postgres.Connection) TaskRepository {
	return &taskRepository{conn: conn}
}

func (r *taskRepository) List() ([]*domain.Task, error) {
	query, args, err := squirrel.
		Select("id, title, description, status, priority, assignee, created_at").
		From(tasksTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task := &domain.Task{}
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Priority,
			&task.Assignee,
			&task.CreatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) GetByID(id string) (*domain.Task, error) {
	query, args, err := squirrel.
		Select("id, title, description, status, priority, assignee, created_at").
		From(tasksTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	task := &domain.Task{}
	err = r.conn.QueryRow(query, args...).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.Assignee,
		&task.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) Create(task *domain.Task) (*domain.Task, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert(tasksTable).
		Columns("id", "title", "description", "status", "priority", "assignee", "created_at").
		Values(id, task.Title, task.Description, task.Status, task.Priority, task.Assignee, time.Now()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	return r.GetByID(id)
}

func (r *taskRepository) Update(task *domain.Task) (*domain.Task, error) {
	query, args, err := squirrel.
		Update(tasksTable).
		Set("title", task.Title).
		Set("description", task.Description).
		Set("status", task.Status).
		Set("priority", task.Priority).
		Set("assignee", task.Assignee).
		Where(squirrel.Eq{"id": task.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if err := requireRowsAffected(result, "task not found"); err != nil {
		return nil, err
	}

	return r.GetByID(task.ID)
}

func (r *taskRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(tasksTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return requireRowsAffected(result, "task not found")
}
