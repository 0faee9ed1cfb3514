package repository

import (
	"github.com/paulmach/orb"

	"JejuTrip-App/internal/domain/model"
)

// LatLngToPoint model.LatLng を orb.Point に変換
func LatLngToPoint(l model.LatLng) orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// CreateSearchBound 中心座標と半径(km)から検索用の境界ボックスを作成
// 経度1度≒111km換算の簡易パディング（島内検索用途には十分な精度）
func CreateSearchBound(center model.LatLng, radiusKm float64) orb.Bound {
	point := LatLngToPoint(center)
	bound := orb.Bound{Min: point, Max: point}

	padding := radiusKm / 111.0
	return bound.Pad(padding)
}

// PlacesBound 場所リスト全体を含む境界ボックスを作成（マップのフィット用）
// 少し余裕を持たせる（約100m程度）
func PlacesBound(places []model.Place) *orb.Bound {
	var bound orb.Bound
	first := true
	for i := range places {
		if !places[i].HasCoordinates() {
			continue
		}
		point := orb.Point{places[i].X, places[i].Y}
		if first {
			bound = orb.Bound{Min: point, Max: point}
			first = false
			continue
		}
		bound = bound.Extend(point)
	}
	if first {
		return nil
	}
	bound = bound.Pad(0.001)
	return &bound
}
