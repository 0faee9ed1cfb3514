package helper

import (
	"math"

	"JejuTrip-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の大円距離を計算する (km)
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// DistanceKm は2つの場所の間の距離を計算する (km)
// どちらかの座標が欠損している場合は0を返す（エラーにはしない）
func DistanceKm(a, b *model.Place) float64 {
	if a == nil || b == nil || !a.HasCoordinates() || !b.HasCoordinates() {
		return 0
	}
	if math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsNaN(b.X) || math.IsNaN(b.Y) {
		return 0
	}
	return HaversineDistance(a.ToLatLng(), b.ToLatLng())
}

// EstimateTravelMinutes は距離(km)から移動時間(分)を見積もる
// 平均約40km/hの線形モデル: ceil(distance * 1.5)
func EstimateTravelMinutes(distanceKm float64) int {
	if distanceKm <= 0 {
		return 0
	}
	return int(math.Ceil(distanceKm * model.TravelMinutesPerKm))
}

// RoundDistanceKm は距離を小数点以下2桁に丸める
func RoundDistanceKm(distanceKm float64) float64 {
	return math.Round(distanceKm*100) / 100
}
