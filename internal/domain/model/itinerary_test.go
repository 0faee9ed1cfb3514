package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexIDUnmarshalJSON(t *testing.T) {
	t.Run("文字列のIDを受け付ける", func(t *testing.T) {
		var item ScheduleItem
		err := json.Unmarshal([]byte(`{"id": "100", "place_name": "성산일출봉"}`), &item)
		assert.NoError(t, err)
		assert.Equal(t, FlexID("100"), item.ID)
	})

	t.Run("数値のIDも文字列として受ける", func(t *testing.T) {
		var item ScheduleItem
		err := json.Unmarshal([]byte(`{"id": 100, "place_name": "성산일출봉"}`), &item)
		assert.NoError(t, err)
		assert.Equal(t, FlexID("100"), item.ID)
	})

	t.Run("nullは空文字列になる", func(t *testing.T) {
		var item ScheduleItem
		err := json.Unmarshal([]byte(`{"id": null, "place_name": "성산일출봉"}`), &item)
		assert.NoError(t, err)
		assert.Equal(t, FlexID(""), item.ID)
	})

	t.Run("idフィールド省略時は空文字列", func(t *testing.T) {
		var item ScheduleItem
		err := json.Unmarshal([]byte(`{"place_name": "성산일출봉"}`), &item)
		assert.NoError(t, err)
		assert.Equal(t, FlexID(""), item.ID)
	})
}

func TestFirestoreItineraryConversion(t *testing.T) {
	response := &ItineraryResponse{
		ItineraryID: "itin_test",
		Days: []ItineraryDay{
			{Day: 1, Date: "09/01", DayOfWeek: "화"},
		},
		TotalReward: 12.5,
		IsFallback:  true,
	}

	t.Run("TTL付きでFirestore形式に変換する", func(t *testing.T) {
		fs := response.ToFirestoreItinerary(24)
		assert.Len(t, fs.Days, 1)
		assert.Equal(t, 12.5, fs.TotalReward)
		assert.True(t, fs.IsFallback)
		assert.False(t, fs.ExpireAt.IsZero())
	})

	t.Run("Firestore形式から往復できる", func(t *testing.T) {
		fs := response.ToFirestoreItinerary(24)
		restored := fs.ToItineraryResponse("itin_test")
		assert.Equal(t, response.ItineraryID, restored.ItineraryID)
		assert.Equal(t, response.Days, restored.Days)
		assert.Equal(t, response.TotalReward, restored.TotalReward)
		assert.Equal(t, response.IsFallback, restored.IsFallback)
	})
}
