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

const adAccountsTable = "ad_accounts"

type AdAccountRepository interface {
	ListActiveByIntegration(integrationID string) ([]*domain.AdAccount, error)
	ListByIntegration(integrationID string) ([]*domain.AdAccount, error)
	GetByID(id string) (*domain.AdAccount, error)
	Create(integrationID string, req *domain.AddAdAccountRequest) (*domain.AdAccount, error)
	SetActive(id string, active bool) error
	Delete(id string) error
}

type adAccountRepository struct {
	conn *postgres.Connection
}

func NewAdAccountRepository(conn *postgres.Connection) AdAccountRepository {
	return &adAccountRepository{conn: conn}
}

func (r *adAccountRepository) ListActiveByIntegration(integrationID string) ([]*domain.AdAccount, error) {
	return r.list(squirrel.Eq{"integration_id": integrationID, "is_active": true})
}

func (r *adAccountRepository) ListByIntegration(integrationID string) ([]*domain.AdAccount, error) {
	return r.list(squirrel.Eq{"integration_id": integrationID})
}

func (r *adAccountRepository) list(where map[string]interface{}) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("id, name, account_id, integration_id, is_active, created_at").
		From(adAccountsTable).
		Where(where).
		OrderBy("created_at ASC").
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

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account := &domain.AdAccount{}
		if err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.AccountID,
			&account.IntegrationID,
			&account.IsActive,
			&account.CreatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *adAccountRepository) GetByID(id string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("id, name, account_id, integration_id, is_active, created_at").
		From(adAccountsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	account := &domain.AdAccount{}
	err = r.conn.QueryRow(query, args...).Scan(
		&account.ID,
		&account.Name,
		&account.AccountID,
		&account.IntegrationID,
		&account.IsActive,
		&account.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (r *adAccountRepository) Create(integrationID string, req *domain.AddAdAccountRequest) (*domain.AdAccount, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert(adAccountsTable).
		Columns("id", "name", "account_id", "integration_id", "is_active", "created_at").
		Values(id, req.Name, domain.NormalizeMetaAccountID(req.AccountID), integrationID, true, time.Now()).
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

func (r *adAccountRepository) SetActive(id string, active bool) error {
	query, args, err := squirrel.
		Update(adAccountsTable).
		Set("is_active", active).
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

	return requireRowsAffected(result, "ad account not found")
}

func (r *adAccountRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(adAccountsTable).
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

	return requireRowsAffected(result, "ad account not found")
}
