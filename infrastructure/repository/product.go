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

const productsTable = "products"

type ProductRepository interface {
	List() ([]*domain.Product, error)
	GetByID(id string) (*domain.Product, error)
	Create(product *domain.Product) (*domain.Product, error)
	Update(product *domain.Product) (*domain.Product, error)
	Delete(id string) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{conn: conn}
}

func (r *productRepository) List() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("id, name, plataform, status, drive_link, miro_link, notion_link, created_at, updated_at").
		From(productsTable).
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Plataform,
			&product.Status,
			&product.DriveLink,
			&product.MiroLink,
			&product.NotionLink,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *productRepository) GetByID(id string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("id, name, plataform, status, drive_link, miro_link, notion_link, created_at, updated_at").
		From(productsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	product := &domain.Product{}
	err = r.conn.QueryRow(query, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Plataform,
		&product.Status,
		&product.DriveLink,
		&product.MiroLink,
		&product.NotionLink,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return product, nil
}

func (r *productRepository) Create(product *domain.Product) (*domain.Product, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()

	query, args, err := squirrel.
		Insert(productsTable).
		Columns("id", "name", "plataform", "status", "drive_link", "miro_link", "notion_link", "created_at", "updated_at").
		Values(id, product.Name, product.Plataform, product.Status, product.DriveLink,
			product.MiroLink, product.NotionLink, now, now).
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

func (r *productRepository) Update(product *domain.Product) (*domain.Product, error) {
	query, args, err := squirrel.
		Update(productsTable).
		Set("name", product.Name).
		Set("plataform", product.Plataform).
		Set("status", product.Status).
		Set("drive_link", product.DriveLink).
		Set("miro_link", product.MiroLink).
		Set("notion_link", product.NotionLink).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": product.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if err := requireRowsAffected(result, "product not found"); err != nil {
		return nil, err
	}

	return r.GetByID(product.ID)
}

func (r *productRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(productsTable).
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

	return requireRowsAffected(result, "product not found")
}
