package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/QUATTROMKT/info-sistema/infrastructure/database/postgres"
	"github.com/QUATTROMKT/info-sistema/internal/domain"
	"github.com/QUATTROMKT/info-sistema/pkg/utils"
)

const integrationsTable = "integrations"

type IntegrationRepository interface {
	GetActiveByPlatform(platform domain.Platform) (*domain.Integration, error)
	GetByPlatform(platform domain.Platform) (*domain.Integration, error)
	GetByID(id string) (*domain.Integration, error)
	List() ([]*domain.Integration, error)
	Save(req *domain.SaveIntegrationRequest) (*domain.Integration, error)
	SetActive(id string, active bool) error
	Delete(id string) error
}

type integrationRepository struct {
	conn *postgres.Connection
}

func NewIntegrationRepository(conn *postgres.Connection) IntegrationRepository {
	return &integrationRepository{conn: conn}
}

func (r *integrationRepository) GetActiveByPlatform(platform domain.Platform) (*domain.Integration, error) {
	return r.getOne(squirrel.Eq{"platform": platform, "is_active": true})
}

func (r *integrationRepository) GetByPlatform(platform domain.Platform) (*domain.Integration, error) {
	return r.getOne(squirrel.Eq{"platform": platform})
}

func (r *integrationRepository) GetByID(id string) (*domain.Integration, error) {
	return r.getOne(squirrel.Eq{"id": id})
}

func (r *integrationRepository) getOne(where map[string]interface{}) (*domain.Integration, error) {
	query, args, err := squirrel.
		Select("id, platform, api_key, account_id, is_active, created_at, updated_at").
		From(integrationsTable).
		Where(where).
		OrderBy("created_at ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(query, args...)

	integration, err := deserializeIntegration(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return integration, nil
}

func (r *integrationRepository) List() ([]*domain.Integration, error) {
	query, args, err := squirrel.
		Select("id, platform, api_key, account_id, is_active, created_at, updated_at").
		From(integrationsTable).
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

	integrations := make([]*domain.Integration, 0)
	for rows.Next() {
		integration := &domain.Integration{}
		if err := rows.Scan(
			&integration.ID,
			&integration.Platform,
			&integration.APIKey,
			&integration.AccountID,
			&integration.IsActive,
			&integration.CreatedAt,
			&integration.UpdatedAt,
		); err != nil {
			return nil, err
		}
		integrations = append(integrations, integration)
	}

	return integrations, rows.Err()
}

// Save faz upsert por plataforma: se já existe uma linha para a plataforma,
// atualiza no lugar; senão cria. A unicidade é garantida pela consulta, não
// por constraint de schema — um double-save concorrente pode criar duas
// linhas (lacuna conhecida; as leituras usam a mais antiga).
func (r *integrationRepository) Save(req *domain.SaveIntegrationRequest) (*domain.Integration, error) {
	existing, err := r.GetByPlatform(req.Platform)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if existing != nil {
		query, args, err := squirrel.
			Update(integrationsTable).
			Set("api_key", req.APIKey).
			Set("account_id", req.AccountID).
			Set("is_active", true).
			Set("updated_at", now).
			Where(squirrel.Eq{"id": existing.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, err
		}

		if _, err := r.conn.Exec(query, args...); err != nil {
			return nil, fmt.Errorf("failed to execute query: %w", err)
		}

		return r.GetByID(existing.ID)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert(integrationsTable).
		Columns("id", "platform", "api_key", "account_id", "is_active", "created_at", "updated_at").
		Values(id, req.Platform, req.APIKey, req.AccountID, true, now, now).
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

func (r *integrationRepository) SetActive(id string, active bool) error {
	query, args, err := squirrel.
		Update(integrationsTable).
		Set("is_active", active).
		Set("updated_at", time.Now()).
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

	return requireRowsAffected(result, "integration not found")
}

func (r *integrationRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(integrationsTable).
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

	return requireRowsAffected(result, "integration not found")
}

func deserializeIntegration(row *sql.Row) (*domain.Integration, error) {
	integration := &domain.Integration{}

	if err := row.Scan(
		&integration.ID,
		&integration.Platform,
		&integration.APIKey,
		&integration.AccountID,
		&integration.IsActive,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return integration, nil
}
