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

const financialRecordsTable = "financial_records"

type FinancialRecordRepository interface {
	List() ([]*domain.FinancialRecord, error)
	GetByID(id string) (*domain.FinancialRecord, error)
	Create(record *domain.FinancialRecord) (*domain.FinancialRecord, error)
	Update(record *domain.FinancialRecord) (*domain.FinancialRecord, error)
	Delete(id string) error
}

type financialRecordRepository struct {
	conn *postgres.Connection
}

func NewFinancialRecordRepository(conn *postgres.Connection) FinancialRecordRepository {
	return &financialRecordRepository{conn: conn}
}

func (r *financialRecordRepository) List() ([]*domain.FinancialRecord, error) {
	query, args, err := squirrel.
		Select("id, description, amount, type, category, due_date, status, created_at").
		From(financialRecordsTable).
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

	records := make([]*domain.FinancialRecord, 0)
	for rows.Next() {
		record := &domain.FinancialRecord{}
		if err := rows.Scan(
			&record.ID,
			&record.Description,
			&record.Amount,
			&record.Type,
			&record.Category,
			&record.DueDate,
			&record.Status,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *financialRecordRepository) GetByID(id string) (*domain.FinancialRecord, error) {
	query, args, err := squirrel.
		Select("id, description, amount, type, category, due_date, status, created_at").
		From(financialRecordsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	record := &domain.FinancialRecord{}
	err = r.conn.QueryRow(query, args...).Scan(
		&record.ID,
		&record.Description,
		&record.Amount,
		&record.Type,
		&record.Category,
		&record.DueDate,
		&record.Status,
		&record.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return record, nil
}

func (r *financialRecordRepository) Create(record *domain.FinancialRecord) (*domain.FinancialRecord, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert(financialRecordsTable).
		Columns("id", "description", "amount", "type", "category", "due_date", "status", "created_at").
		Values(id, record.Description, record.Amount, record.Type, record.Category,
			record.DueDate, record.Status, time.Now()).
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

func (r *financialRecordRepository) Update(record *domain.FinancialRecord) (*domain.FinancialRecord, error) {
	query, args, err := squirrel.
		Update(financialRecordsTable).
		Set("description", record.Description).
		Set("amount", record.Amount).
		Set("type", record.Type).
		Set("category", record.Category).
		Set("due_date", record.DueDate).
		Set("status", record.Status).
		Where(squirrel.Eq{"id": record.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if err := requireRowsAffected(result, "financial record not found"); err != nil {
		return nil, err
	}

	return r.GetByID(record.ID)
}

func (r *financialRecordRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(financialRecordsTable).
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

	return requireRowsAffected(result, "financial record not found")
}
