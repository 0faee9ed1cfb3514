package service

import (
	"fmt"
	"log"
	"time"

	"JejuTrip-App/internal/domain/helper"
	"JejuTrip-App/internal/domain/model"
)

// ItinerarySequencer はサーバー経路が得られないときのクライアント側フォールバック
// 未整列の場所プールを日数で均等分割し、各日を最近傍貪欲法で並べる
type ItinerarySequencer struct{}

// NewItinerarySequencer は新しいItinerarySequencerインスタンスを作成する
func NewItinerarySequencer() *ItinerarySequencer {
	return &ItinerarySequencer{}
}

// Sequence は場所プールと日付範囲から日程を構築する
// 出力は必ず daysBetween(start, end) + 1 日分になり、日番号は1始まりの連番
// 不正な個別レコードがあっても決して失敗せず、スキップしてログに残す
func (s *ItinerarySequencer) Sequence(places []model.SelectedPlace, startDate, endDate time.Time, startTime, endTime string) []model.ItineraryDay {
	totalDays := helper.DaysBetween(startDate, endDate) + 1
	if totalDays <= 0 {
		log.Printf("⚠️ 日付範囲が不正です (start=%s, end=%s)", startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
		return []model.ItineraryDay{}
	}

	startHour, startMinute, err := helper.ParseHHMM(startTime)
	if err != nil {
		startHour, startMinute = 9, 0
	}

	// 座標欠損の場所は距離0として扱われ並び順が崩れるため、件数を記録しておく
	missingCoords := 0
	for i := range places {
		if !places[i].HasCoordinates() {
			missingCoords++
		}
	}
	if missingCoords > 0 {
		log.Printf("⚠️ 座標のない場所が%d件あります。距離0として扱います", missingCoords)
	}

	// 入力順のまま均等分割（1日あたり ceil(総数/日数) 件）
	perDay := (len(places) + totalDays - 1) / totalDays
	days := make([]model.ItineraryDay, 0, totalDays)

	for d := 0; d < totalDays; d++ {
		from := d * perDay
		to := from + perDay
		if from > len(places) {
			from = len(places)
		}
		if to > len(places) {
			to = len(places)
		}
		pool := places[from:to]

		ordered, totalDistance := s.orderByNearestNeighbor(pool)
		dayPlaces := s.assignTimes(ordered, startHour, startMinute)

		days = append(days, model.ItineraryDay{
			Day:             d + 1,
			Places:          dayPlaces,
			TotalDistanceKm: helper.RoundDistanceKm(totalDistance),
		})
	}

	return days
}

// orderByNearestNeighbor はプール先頭を起点に最近傍貪欲法で並べる
// 同距離の場合は先に現れた場所が勝つ（決定的な並び）
func (s *ItinerarySequencer) orderByNearestNeighbor(pool []model.SelectedPlace) ([]model.SelectedPlace, float64) {
	if len(pool) == 0 {
		return nil, 0
	}

	remaining := make([]model.SelectedPlace, len(pool))
	copy(remaining, pool)

	ordered := make([]model.SelectedPlace, 0, len(pool))
	ordered = append(ordered, remaining[0])
	remaining = remaining[1:]

	totalDistance := 0.0
	current := &ordered[0].Place

	for len(remaining) > 0 {
		bestIdx := 0
		bestDist := helper.DistanceKm(current, &remaining[0].Place)
		for i := 1; i < len(remaining); i++ {
			dist := helper.DistanceKm(current, &remaining[i].Place)
			if dist < bestDist {
				bestDist = dist
				bestIdx = i
			}
		}

		ordered = append(ordered, remaining[bestIdx])
		totalDistance += bestDist
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		current = &ordered[len(ordered)-1].Place
	}

	return ordered, totalDistance
}

// assignTimes は並べた場所に到着・出発時刻を割り当てる
// フォールバック日程では滞在時間をモデル化しないため depart = arrive とする
func (s *ItinerarySequencer) assignTimes(ordered []model.SelectedPlace, startHour, startMinute int) []model.ItineraryPlaceWithTime {
	result := make([]model.ItineraryPlaceWithTime, 0, len(ordered))

	hour, minute := startHour, startMinute
	for i := range ordered {
		if i > 0 {
			travelMinutes := helper.EstimateTravelMinutes(helper.DistanceKm(&ordered[i-1].Place, &ordered[i].Place))
			hour, minute = helper.AddMinutesWrapped(hour, minute, travelMinutes)
			result[i-1].TravelTimeToNext = fmt.Sprintf("%d분", travelMinutes)
		}

		arrive := helper.FormatHHMM(hour, minute)
		result = append(result, model.ItineraryPlaceWithTime{
			Place:      ordered[i].Place,
			ArriveTime: arrive,
			DepartTime: arrive,
			GeoNodeID:  ordered[i].ID,
		})
	}

	return result
}
