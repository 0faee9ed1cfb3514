package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"JejuTrip-App/internal/domain/model"
	"JejuTrip-App/internal/domain/repository"
	"JejuTrip-App/internal/infrastructure/database"
)

// PostgresPlacesRepository Supabaseを経由せずPostgreSQLへ直接クエリする実装
// 境界ボックスによる地理検索など、PostgREST経由では書きにくいクエリに使う
type PostgresPlacesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPlacesRepository(client *database.PostgreSQLClient) *PostgresPlacesRepository {
	return &PostgresPlacesRepository{
		client: client,
	}
}

const placeColumns = "id, name, category, x, y, address, phone, rating, image_url, homepage, link"

// placeResult 行スキャン用の構造体（NULLABLE列はsql.Nullで受ける）
type placeResult struct {
	ID       string
	Name     string
	Category string
	X        float64
	Y        float64
	Address  sql.NullString
	Phone    sql.NullString
	Rating   sql.NullFloat64
	ImageURL sql.NullString
	Homepage sql.NullString
	Link     sql.NullString
}

// toPlace placeResultをmodel.Placeに変換
func (pr *placeResult) toPlace() model.Place {
	return model.Place{
		ID:       pr.ID,
		Name:     pr.Name,
		Category: model.NormalizeCategory(pr.Category),
		X:        pr.X,
		Y:        pr.Y,
		Address:  pr.Address.String,
		Phone:    pr.Phone.String,
		Rating:   pr.Rating.Float64,
		ImageURL: pr.ImageURL.String,
		Homepage: pr.Homepage.String,
		Link:     pr.Link.String,
	}
}

func (r *PostgresPlacesRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	query := fmt.Sprintf("SELECT %s FROM places WHERE id = $1", placeColumns)

	row := r.client.DB.QueryRowContext(ctx, query, id)

	var result placeResult
	err := row.Scan(&result.ID, &result.Name, &result.Category, &result.X, &result.Y,
		&result.Address, &result.Phone, &result.Rating, &result.ImageURL, &result.Homepage, &result.Link)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("場所ID %s が見つかりません", id)
		}
		return nil, fmt.Errorf("場所データの取得失敗: %w", err)
	}

	place := result.toPlace()
	return &place, nil
}

func (r *PostgresPlacesRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Place, error) {
	if len(ids) == 0 {
		return []model.Place{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf("SELECT %s FROM places WHERE id IN (%s)", placeColumns, strings.Join(placeholders, ", "))

	rows, err := r.client.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("場所データの一括取得失敗: %w", err)
	}
	defer rows.Close()

	return collectPlaces(rows)
}

func (r *PostgresPlacesRepository) GetByCategory(ctx context.Context, category model.Category) ([]model.Place, error) {
	query := fmt.Sprintf("SELECT %s FROM places WHERE category = $1", placeColumns)

	rows, err := r.client.DB.QueryContext(ctx, query, model.GetCategoryKoreanName(category))
	if err != nil {
		return nil, fmt.Errorf("カテゴリ別場所データの取得失敗: %w", err)
	}
	defer rows.Close()

	return collectPlaces(rows)
}

func (r *PostgresPlacesRepository) GetAll(ctx context.Context) ([]model.Place, error) {
	query := fmt.Sprintf("SELECT %s FROM places", placeColumns)

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("場所データの全件取得失敗: %w", err)
	}
	defer rows.Close()

	return collectPlaces(rows)
}

// GetNearby 中心座標と半径(km)の境界ボックス内にある場所を検索する
func (r *PostgresPlacesRepository) GetNearby(ctx context.Context, center model.LatLng, radiusKm float64) ([]model.Place, error) {
	bound := CreateSearchBound(center, radiusKm)

	query := fmt.Sprintf(`
		SELECT %s FROM places
		WHERE x BETWEEN $1 AND $2
		AND y BETWEEN $3 AND $4
	`, placeColumns)

	rows, err := r.client.DB.QueryContext(ctx, query,
		bound.Min.Lon(), bound.Max.Lon(), bound.Min.Lat(), bound.Max.Lat())
	if err != nil {
		return nil, fmt.Errorf("周辺場所データの検索失敗: %w", err)
	}
	defer rows.Close()

	return collectPlaces(rows)
}

func collectPlaces(rows *sql.Rows) ([]model.Place, error) {
	var places []model.Place
	for rows.Next() {
		var result placeResult
		err := rows.Scan(&result.ID, &result.Name, &result.Category, &result.X, &result.Y,
			&result.Address, &result.Phone, &result.Rating, &result.ImageURL, &result.Homepage, &result.Link)
		if err != nil {
			return nil, fmt.Errorf("場所データスキャンエラー: %w", err)
		}
		places = append(places, result.toPlace())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("行イテレーション中のエラー: %w", err)
	}
	return places, nil
}

// インターフェース適合の確認
var _ repository.PlacesRepository = (*PostgresPlacesRepository)(nil)
