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

const credentialsTable = "credentials"

type CredentialRepository interface {
	List() ([]*domain.Credential, error)
	GetByID(id string) (*domain.Credential, error)
	Create(credential *domain.Credential) (*domain.Credential, error)
	Update(credential *domain.Credential) (*domain.Credential, error)
	Delete(id string) error
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{conn: conn}
}

func (r *credentialRepository) List() ([]*domain.Credential, error) {
	query, args, err := squirrel.
		Select("id, service, username, password, url, category, created_at").
		From(credentialsTable).
		OrderBy("service ASC").
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

	credentials := make([]*domain.Credential, 0)
	for rows.Next() {
		credential := &domain.Credential{}
		if err := rows.Scan(
			&credential.ID,
			&credential.Service,
			&credential.Username,
			&credential.Password,
			&credential.URL,
			&credential.Category,
			&credential.CreatedAt,
		); err != nil {
			return nil, err
		}
		credentials = append(credentials, credential)
	}

	return credentials, rows.Err()
}

func (r *credentialRepository) GetByID(id string) (*domain.Credential, error) {
	query, args, err := squirrel.
		Select("id, service, username, password, url, category, created_at").
		From(credentialsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	credential := &domain.Credential{}
	err = r.conn.QueryRow(query, args...).Scan(
		&credential.ID,
		&credential.Service,
		&credential.Username,
		&credential.Password,
		&credential.URL,
		&credential.Category,
		&credential.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return credential, nil
}

func (r *credentialRepository) Create(credential *domain.Credential) (*domain.Credential, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert(credentialsTable).
		Columns("id", "service", "username", "password", "url", "category", "created_at").
		Values(id, credential.Service, credential.Username, credential.Password,
			credential.URL, credential.Category, time.Now()).
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

func (r *credentialRepository) Update(credential *domain.Credential) (*domain.Credential, error) {
	query, args, err := squirrel.
		Update(credentialsTable).
		Set("service", credential.Service).
		Set("username", credential.Username).
		Set("password", credential.Password).
		Set("url", credential.URL).
		Set("category", credential.Category).
		Where(squirrel.Eq{"id": credential.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if err := requireRowsAffected(result, "credential not found"); err != nil {
		return nil, err
	}

	return r.GetByID(credential.ID)
}

func (r *credentialRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(credentialsTable).
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

	return requireRowsAffected(result, "credential not found")
}
