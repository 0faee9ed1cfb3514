package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"JejuTrip-App/internal/domain/model"
	"JejuTrip-App/internal/domain/repository"
	"JejuTrip-App/internal/infrastructure/database"
)

// placeRow Supabaseのplacesテーブルの行
// categoryは韓国語表記で保存されているため読み取り時に正規化する
type placeRow struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Address  string  `json:"address"`
	Phone    string  `json:"phone"`
	Rating   float64 `json:"rating"`
	ImageURL string  `json:"image_url"`
	Homepage string  `json:"homepage"`
	Link     string  `json:"link"`
}

// toPlace placeRowをmodel.Placeに変換
func (pr *placeRow) toPlace() model.Place {
	return model.Place{
		ID:       pr.ID,
		Name:     pr.Name,
		Category: model.NormalizeCategory(pr.Category),
		X:        pr.X,
		Y:        pr.Y,
		Address:  pr.Address,
		Phone:    pr.Phone,
		Rating:   pr.Rating,
		ImageURL: pr.ImageURL,
		Homepage: pr.Homepage,
		Link:     pr.Link,
	}
}

func rowsToPlaces(rows []placeRow) []model.Place {
	places := make([]model.Place, 0, len(rows))
	for i := range rows {
		places = append(places, rows[i].toPlace())
	}
	return places
}

type SupabasePlacesRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePlacesRepository(client *database.SupabaseClient) repository.PlacesRepository {
	return &SupabasePlacesRepository{
		client: client,
	}
}

func (r *SupabasePlacesRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	var rows []placeRow
	data, count, err := r.client.GetClient().From("places").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("場所データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("場所データのJSONアンマーシャル失敗: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("場所ID %s が見つかりません", id)
	}

	place := rows[0].toPlace()
	return &place, nil
}

func (r *SupabasePlacesRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Place, error) {
	if len(ids) == 0 {
		return []model.Place{}, nil
	}

	var rows []placeRow
	data, count, err := r.client.GetClient().From("places").
		Select("*", "exact", false).
		In("id", ids).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("場所データの一括取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("場所データのJSONアンマーシャル失敗: %w", err)
	}

	return rowsToPlaces(rows), nil
}

func (r *SupabasePlacesRepository) GetByCategory(ctx context.Context, category model.Category) ([]model.Place, error) {
	// DBにはカテゴリが韓国語表記で入っている
	var rows []placeRow
	data, count, err := r.client.GetClient().From("places").
		Select("*", "exact", false).
		Eq("category", model.GetCategoryKoreanName(category)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("カテゴリ別場所データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("場所データのJSONアンマーシャル失敗: %w", err)
	}

	return rowsToPlaces(rows), nil
}

func (r *SupabasePlacesRepository) GetAll(ctx context.Context) ([]model.Place, error) {
	var rows []placeRow
	data, count, err := r.client.GetClient().From("places").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("場所データの全件取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("場所データのJSONアンマーシャル失敗: %w", err)
	}

	return rowsToPlaces(rows), nil
}
