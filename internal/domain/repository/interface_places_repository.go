package repository

import (
	"context"

	"JejuTrip-App/internal/domain/model"
)

// PlacesRepository 場所プールへの読み取り専用アクセス
// 推薦・自動補完のロジック自体は外部サービスの責務で、ここでは取得だけを扱う
type PlacesRepository interface {
	GetByID(ctx context.Context, id string) (*model.Place, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Place, error)
	GetByCategory(ctx context.Context, category model.Category) ([]model.Place, error)
	GetAll(ctx context.Context) ([]model.Place, error)
}
