package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"JejuTrip-App/internal/domain/model"
)

// fakePlacesRepository テスト用のインメモリ場所リポジトリ
type fakePlacesRepository struct {
	places map[string]model.Place
}

func newFakePlacesRepository() *fakePlacesRepository {
	return &fakePlacesRepository{
		places: map[string]model.Place{
			"1": {ID: "1", Name: "성산일출봉", Category: model.CategoryAttraction, X: 126.9425, Y: 33.4580},
			"2": {ID: "2", Name: "올레국수", Category: model.CategoryRestaurant, X: 126.53, Y: 33.50},
			"3": {ID: "3", Name: "카페델문도", Category: model.CategoryCafe, X: 126.55, Y: 33.54},
		},
	}
}

func (r *fakePlacesRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	if p, ok := r.places[id]; ok {
		return &p, nil
	}
	return nil, fmt.Errorf("場所ID %s が見つかりません", id)
}

func (r *fakePlacesRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Place, error) {
	result := make([]model.Place, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.places[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePlacesRepository) GetByCategory(ctx context.Context, category model.Category) ([]model.Place, error) {
	var result []model.Place
	for _, p := range r.places {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePlacesRepository) GetAll(ctx context.Context) ([]model.Place, error) {
	result := make([]model.Place, 0, len(r.places))
	for _, p := range r.places {
		result = append(result, p)
	}
	return result, nil
}

// fakeItineraryRepository テスト用のインメモリ日程キャッシュ
type fakeItineraryRepository struct {
	saved map[string]*model.ItineraryResponse
}

func newFakeItineraryRepository() *fakeItineraryRepository {
	return &fakeItineraryRepository{saved: make(map[string]*model.ItineraryResponse)}
}

func (r *fakeItineraryRepository) SaveItinerary(ctx context.Context, itinerary *model.ItineraryResponse, ttlHours int) error {
	r.saved[itinerary.ItineraryID] = itinerary
	return nil
}

func (r *fakeItineraryRepository) GetItinerary(ctx context.Context, itineraryID string) (*model.ItineraryResponse, error) {
	if it, ok := r.saved[itineraryID]; ok {
		return it, nil
	}
	return nil, fmt.Errorf("日程が見つかりません（有効期限切れまたは無効なID）: %s", itineraryID)
}

// fakeScheduleRepository スケジュール生成サービスのスタブ
type fakeScheduleRepository struct {
	resp *model.ScheduleResponse
	err  error
}

func (r *fakeScheduleRepository) GenerateSchedule(ctx context.Context, payload *model.SchedulePayload) (*model.ScheduleResponse, error) {
	return r.resp, r.err
}

func testRequest() *model.ItineraryGenerateRequest {
	return &model.ItineraryGenerateRequest{
		SelectedPlaceIDs:  []string{"1", "2"},
		CandidatePlaceIDs: []string{"3"},
		StartDatetime:     "2026-09-01T09:00:00",
		EndDatetime:       "2026-09-02T18:00:00",
	}
}

func TestGenerateItineraryWithServerSchedule(t *testing.T) {
	scheduleRepo := &fakeScheduleRepository{
		resp: &model.ScheduleResponse{
			TotalReward: 42.5,
			Schedule: []model.ScheduleItem{
				{ID: "1", PlaceName: "성산일출봉", TimeBlock: "Tue_0900"},
				{ID: "2", PlaceName: "올레국수", TimeBlock: "Wed_1200"},
			},
			RouteSummary: []model.RouteSummaryEntry{
				{Day: "Tue", TotalDistanceM: 5000, InterleavedRoute: []string{"n1", "l1", "n2"}},
				{Day: "Wed", TotalDistanceM: 3000},
			},
		},
	}
	itineraryRepo := newFakeItineraryRepository()
	uc := NewItineraryUseCase(newFakePlacesRepository(), itineraryRepo, scheduleRepo)

	response, err := uc.GenerateItinerary(context.Background(), testRequest())
	assert.NoError(t, err)
	assert.NotNil(t, response)

	t.Run("サーバースケジュールから日程が作られる", func(t *testing.T) {
		assert.False(t, response.IsFallback)
		assert.Equal(t, 42.5, response.TotalReward)
		assert.Len(t, response.Days, 2)
		assert.Equal(t, "성산일출봉", response.Days[0].Places[0].Name)
	})

	t.Run("日付と曜日が刻印される", func(t *testing.T) {
		assert.Equal(t, "09/01", response.Days[0].Date)
		assert.Equal(t, "화", response.Days[0].DayOfWeek)
	})

	t.Run("生成した日程はキャッシュに保存される", func(t *testing.T) {
		assert.Contains(t, response.ItineraryID, "itin_")
		saved, err := uc.GetItinerary(context.Background(), response.ItineraryID)
		assert.NoError(t, err)
		assert.Equal(t, response.ItineraryID, saved.ItineraryID)
	})
}

func TestGenerateItineraryFallback(t *testing.T) {
	scheduleRepo := &fakeScheduleRepository{err: errors.New("接続失敗")}
	uc := NewItineraryUseCase(newFakePlacesRepository(), newFakeItineraryRepository(), scheduleRepo)

	response, err := uc.GenerateItinerary(context.Background(), testRequest())
	assert.NoError(t, err)

	t.Run("サービス障害時はクライアント側生成にフォールバックする", func(t *testing.T) {
		assert.True(t, response.IsFallback)
		assert.Len(t, response.Days, 2)
	})

	t.Run("選択と候補の全場所が日程に含まれる", func(t *testing.T) {
		total := 0
		for _, day := range response.Days {
			total += len(day.Places)
		}
		assert.Equal(t, 3, total)
	})
}

func TestGenerateItineraryValidation(t *testing.T) {
	scheduleRepo := &fakeScheduleRepository{err: errors.New("接続失敗")}
	uc := NewItineraryUseCase(newFakePlacesRepository(), newFakeItineraryRepository(), scheduleRepo)

	t.Run("不正な日時はエラー", func(t *testing.T) {
		req := testRequest()
		req.StartDatetime = "not-a-date"
		_, err := uc.GenerateItinerary(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("有効な場所が1件もなければエラー", func(t *testing.T) {
		req := testRequest()
		req.SelectedPlaceIDs = []string{"999"}
		req.CandidatePlaceIDs = nil
		_, err := uc.GenerateItinerary(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestGetItineraryNotFound(t *testing.T) {
	uc := NewItineraryUseCase(newFakePlacesRepository(), newFakeItineraryRepository(), &fakeScheduleRepository{})

	_, err := uc.GetItinerary(context.Background(), "itin_missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "見つかりません")
}
