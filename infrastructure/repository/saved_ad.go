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

const savedAdsTable = "saved_ads"

var savedAdColumns = "id, ad_id, page_name, page_id, ad_text, image_url, video_url, platform, country, start_date, landing_page_url, category, ai_analysis, created_at"

type SavedAdRepository interface {
	List() ([]*domain.SavedAd, error)
	GetByID(id string) (*domain.SavedAd, error)
	GetByAdID(adID string) (*domain.SavedAd, error)
	Create(req *domain.SaveAdRequest) (*domain.SavedAd, error)
	UpdateAnalysis(id string, analysis string) error
	ListWithoutAnalysis(limit int) ([]*domain.SavedAd, error)
	Delete(id string) error
}

type savedAdRepository struct {
	conn *postgres.Connection
}

func NewSavedAdRepository(conn *postgres.Connection) SavedAdRepository {
	return &savedAdRepository{conn: conn}
}

func (r *savedAdRepository) List() ([]*domain.SavedAd, error) {
	builder := squirrel.
		Select(savedAdColumns).
		From(savedAdsTable).
		OrderBy("created_at DESC")

	return r.queryMany(builder)
}

func (r *savedAdRepository) ListWithoutAnalysis(limit int) ([]*domain.SavedAd, error) {
	builder := squirrel.
		Select(savedAdColumns).
		From(savedAdsTable).
		Where(squirrel.Eq{"ai_analysis": nil}).
		Where(squirrel.NotEq{"ad_text": nil}).
		OrderBy("created_at ASC").
		Limit(uint64(limit))

	return r.queryMany(builder)
}

func (r *savedAdRepository) queryMany(builder squirrel.SelectBuilder) ([]*domain.SavedAd, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
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

	ads := make([]*domain.SavedAd, 0)
	for rows.Next() {
		ad := &domain.SavedAd{}
		if err := scanSavedAd(rows, ad); err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}

	return ads, rows.Err()
}

func (r *savedAdRepository) GetByID(id string) (*domain.SavedAd, error) {
	return r.getOne(squirrel.Eq{"id": id})
}

func (r *savedAdRepository) GetByAdID(adID string) (*domain.SavedAd, error) {
	return r.getOne(squirrel.Eq{"ad_id": adID})
}

func (r *savedAdRepository) getOne(where map[string]interface{}) (*domain.SavedAd, error) {
	query, args, err := squirrel.
		Select(savedAdColumns).
		From(savedAdsTable).
		Where(where).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	ad := &domain.SavedAd{}
	if err := scanSavedAd(r.conn.QueryRow(query, args...), ad); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return ad, nil
}

func (r *savedAdRepository) Create(req *domain.SaveAdRequest) (*domain.SavedAd, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Insert(savedAdsTable).
		Columns("id", "ad_id", "page_name", "page_id", "ad_text", "image_url", "video_url",
			"platform", "country", "start_date", "landing_page_url", "category", "created_at").
		Values(id, req.AdID, req.PageName, req.PageID, req.AdText, req.ImageURL, req.VideoURL,
			req.Platform, req.Country, req.StartDate, req.LandingPageURL, req.Category, time.Now()).
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

func (r *savedAdRepository) UpdateAnalysis(id string, analysis string) error {
	query, args, err := squirrel.
		Update(savedAdsTable).
		Set("ai_analysis", analysis).
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

	return requireRowsAffected(result, "saved ad not found")
}

func (r *savedAdRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(savedAdsTable).
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

	return requireRowsAffected(result, "saved ad not found")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSavedAd(row rowScanner, ad *domain.SavedAd) error {
	return row.Scan(
		&ad.ID,
		&ad.AdID,
		&ad.PageName,
		&ad.PageID,
		&ad.AdText,
		&ad.ImageURL,
		&ad.VideoURL,
		&ad.Platform,
		&ad.Country,
		&ad.StartDate,
		&ad.LandingPageURL,
		&ad.Category,
		&ad.AIAnalysis,
		&ad.CreatedAt,
	)
}
