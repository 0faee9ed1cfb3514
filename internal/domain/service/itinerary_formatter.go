package service

import (
	"fmt"
	"time"

	"JejuTrip-App/internal/domain/model"
)

// ItineraryFormatter は日程にカレンダー日付と曜日ラベルを刻印する
type ItineraryFormatter struct{}

// NewItineraryFormatter は新しいItineraryFormatterインスタンスを作成する
func NewItineraryFormatter() *ItineraryFormatter {
	return &ItineraryFormatter{}
}

// StampDates はリストの並び順を保ったまま各日に日付情報を付与する
// i番目の日の日付は startDate + i 日。経路データがない日には空の既定値を入れる
// 入力は変更せず、新しいスライスを返す純粋変換
func (f *ItineraryFormatter) StampDates(days []model.ItineraryDay, startDate time.Time) []model.ItineraryDay {
	result := make([]model.ItineraryDay, len(days))
	for i, day := range days {
		date := startDate.AddDate(0, 0, i)
		day.Date = fmt.Sprintf("%02d/%02d", int(date.Month()), date.Day())
		day.DayOfWeek = model.WeekdayKoreanLabels[int(date.Weekday())]

		if day.RouteData == nil {
			day.RouteData = &model.RouteData{
				Day:     day.Day,
				NodeIDs: []string{},
				LinkIDs: []string{},
			}
		}
		if day.InterleavedRoute == nil {
			day.InterleavedRoute = []string{}
		}

		result[i] = day
	}
	return result
}
