package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"JejuTrip-App/internal/domain/model"
)

func TestStampDates(t *testing.T) {
	formatter := NewItineraryFormatter()
	// 2026-09-01 は火曜日
	startDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	days := []model.ItineraryDay{
		{Day: 1},
		{Day: 2, RouteData: &model.RouteData{RouteID: "route_2_test", Day: 2, NodeIDs: []string{"n1"}, LinkIDs: []string{}}, InterleavedRoute: []string{"n1"}},
	}

	result := formatter.StampDates(days, startDate)

	t.Run("開始日からの連番で日付を刻印する", func(t *testing.T) {
		assert.Equal(t, "09/01", result[0].Date)
		assert.Equal(t, "화", result[0].DayOfWeek)
		assert.Equal(t, "09/02", result[1].Date)
		assert.Equal(t, "수", result[1].DayOfWeek)
	})

	t.Run("経路データがない日には空の既定値が入る", func(t *testing.T) {
		assert.NotNil(t, result[0].RouteData)
		assert.Empty(t, result[0].RouteData.NodeIDs)
		assert.NotNil(t, result[0].InterleavedRoute)
		assert.Empty(t, result[0].InterleavedRoute)
	})

	t.Run("既存の経路データは変更しない", func(t *testing.T) {
		assert.Equal(t, "route_2_test", result[1].RouteData.RouteID)
		assert.Equal(t, []string{"n1"}, result[1].InterleavedRoute)
	})

	t.Run("入力スライスは変更されない", func(t *testing.T) {
		assert.Nil(t, days[0].RouteData)
		assert.Empty(t, days[0].Date)
	})

	t.Run("月をまたぐ日付", func(t *testing.T) {
		endOfMonth := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
		stamped := formatter.StampDates([]model.ItineraryDay{{Day: 1}, {Day: 2}}, endOfMonth)
		assert.Equal(t, "08/31", stamped[0].Date)
		assert.Equal(t, "09/01", stamped[1].Date)
	})

	t.Run("空の日程は空のまま", func(t *testing.T) {
		assert.Empty(t, formatter.StampDates(nil, startDate))
	})
}
