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

const usersTable = "users"

type UserRepository interface {
	GetByEmail(email string) (*domain.User, error)
	GetByID(id string) (*domain.User, error)
	Count() (int, error)
	Create(email, name, passwordHash string, role domain.Role) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{conn: conn}
}

func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	return r.getOne(squirrel.Eq{"email": email})
}

func (r *userRepository) GetByID(id string) (*domain.User, error) {
	return r.getOne(squirrel.Eq{"id": id})
}

func (r *userRepository) getOne(where map[string]interface{}) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id, email, name, password_hash, role, created_at").
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	user := &domain.User{}
	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) Count() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(usersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *userRepository) Create(email, name, passwordHash string, role domain.Role) (*domain.User, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert(usersTable).
		Columns("id", "email", "name", "password_hash", "role", "created_at").
		Values(id, email, name, passwordHash, role, time.Now()).
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
