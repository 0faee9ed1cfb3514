package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"JejuTrip-App/internal/domain/model"
)

func TestCreateSearchBound(t *testing.T) {
	center := model.LatLng{Lat: 33.5, Lng: 126.5}
	bound := CreateSearchBound(center, 5.0)

	t.Run("中心を含む境界ボックスになる", func(t *testing.T) {
		assert.Less(t, bound.Min.Lon(), center.Lng)
		assert.Greater(t, bound.Max.Lon(), center.Lng)
		assert.Less(t, bound.Min.Lat(), center.Lat)
		assert.Greater(t, bound.Max.Lat(), center.Lat)
	})

	t.Run("半径5kmで約0.045度のパディング", func(t *testing.T) {
		assert.InDelta(t, 5.0/111.0, center.Lng-bound.Min.Lon(), 1e-9)
	})
}

func TestPlacesBound(t *testing.T) {
	t.Run("全場所を含む境界ボックスを返す", func(t *testing.T) {
		places := []model.Place{
			{ID: "1", X: 126.49, Y: 33.50},
			{ID: "2", X: 126.94, Y: 33.45},
		}
		bound := PlacesBound(places)
		assert.NotNil(t, bound)
		assert.LessOrEqual(t, bound.Min.Lon(), 126.49)
		assert.GreaterOrEqual(t, bound.Max.Lon(), 126.94)
	})

	t.Run("座標欠損の場所は無視する", func(t *testing.T) {
		places := []model.Place{
			{ID: "1", X: 126.49, Y: 33.50},
			{ID: "2"}, // 座標なし
		}
		bound := PlacesBound(places)
		assert.NotNil(t, bound)
		assert.Greater(t, bound.Min.Lon(), 100.0)
	})

	t.Run("有効な座標が1つもなければnil", func(t *testing.T) {
		assert.Nil(t, PlacesBound([]model.Place{{ID: "1"}}))
		assert.Nil(t, PlacesBound(nil))
	})
}
