package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"JejuTrip-App/internal/domain/helper"
	"JejuTrip-App/internal/domain/model"
	"JejuTrip-App/internal/domain/repository"
	"JejuTrip-App/internal/domain/service"
)

type ItineraryUseCase interface {
	// GenerateItinerary はリクエストに基づいて日程を生成し、キャッシュに保存してレスポンスを返す
	GenerateItinerary(ctx context.Context, req *model.ItineraryGenerateRequest) (*model.ItineraryResponse, error)

	// GetItinerary は指定されたitinerary_idの日程をキャッシュから取得する
	GetItinerary(ctx context.Context, itineraryID string) (*model.ItineraryResponse, error)
}

// itineraryUseCaseImpl はItineraryUseCaseの実装
type itineraryUseCaseImpl struct {
	placesRepo    repository.PlacesRepository
	itineraryRepo repository.ItineraryRepository
	scheduleRepo  repository.ScheduleGenerationRepository
	adapter       *service.ScheduleAdapter
	sequencer     *service.ItinerarySequencer
	formatter     *service.ItineraryFormatter
}

// NewItineraryUseCase は新しいItineraryUseCaseインスタンスを作成
func NewItineraryUseCase(
	placesRepo repository.PlacesRepository,
	itineraryRepo repository.ItineraryRepository,
	scheduleRepo repository.ScheduleGenerationRepository,
) ItineraryUseCase {
	return &itineraryUseCaseImpl{
		placesRepo:    placesRepo,
		itineraryRepo: itineraryRepo,
		scheduleRepo:  scheduleRepo,
		adapter:       service.NewScheduleAdapter(),
		sequencer:     service.NewItinerarySequencer(),
		formatter:     service.NewItineraryFormatter(),
	}
}

// GenerateItinerary はリクエストに基づいて日程を生成する
// スケジュール生成サービスが使えない場合はクライアント側の最近傍法にフォールバックする
func (u *itineraryUseCaseImpl) GenerateItinerary(ctx context.Context, req *model.ItineraryGenerateRequest) (*model.ItineraryResponse, error) {
	log.Printf("🚀 日程生成開始 (選択 %d件, 候補 %d件)", len(req.SelectedPlaceIDs), len(req.CandidatePlaceIDs))

	startDate, err := helper.ParseLocalDatetime(req.StartDatetime)
	if err != nil {
		return nil, fmt.Errorf("開始日時のパースに失敗: %w", err)
	}
	endDate, err := helper.ParseLocalDatetime(req.EndDatetime)
	if err != nil {
		return nil, fmt.Errorf("終了日時のパースに失敗: %w", err)
	}

	// Step 1: 場所プールを取得して選択/候補フラグを付ける
	pool, err := u.buildPlacePool(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("有効な場所が1件もありません")
	}

	// Step 2: スケジュール生成サービスを呼び出す
	payload := buildSchedulePayload(pool, req)
	var days []model.ItineraryDay
	var totalReward float64
	isFallback := false

	scheduleResp, err := u.scheduleRepo.GenerateSchedule(ctx, payload)
	if err != nil {
		log.Printf("⚠️ スケジュール生成サービスの呼び出しに失敗、クライアント側生成にフォールバック: %v", err)
	} else {
		days = u.adapter.Adapt(scheduleResp, pool)
		totalReward = scheduleResp.TotalReward
	}

	if len(days) == 0 {
		days = u.sequencer.Sequence(pool, startDate, endDate, req.StartTime, req.EndTime)
		isFallback = true
		log.Printf("✅ 最近傍法で%d日分の日程を生成", len(days))
	} else {
		log.Printf("✅ サーバースケジュールから%d日分の日程を生成", len(days))
	}

	// Step 3: 日付と曜日ラベルを刻印
	days = u.formatter.StampDates(days, startDate)

	response := &model.ItineraryResponse{
		ItineraryID: fmt.Sprintf("itin_%s", uuid.New().String()),
		Days:        days,
		TotalReward: totalReward,
		IsFallback:  isFallback,
	}

	// Step 4: キャッシュに保存
	log.Printf("💾 日程をキャッシュに保存中...")
	if err := u.itineraryRepo.SaveItinerary(ctx, response, model.ItineraryTTLHours); err != nil {
		return nil, fmt.Errorf("日程の保存に失敗: %w", err)
	}

	log.Printf("🎉 日程生成完了 (ID: %s, %d日分)", response.ItineraryID, len(response.Days))
	return response, nil
}

// GetItinerary は指定されたitinerary_idの日程をキャッシュから取得する
func (u *itineraryUseCaseImpl) GetItinerary(ctx context.Context, itineraryID string) (*model.ItineraryResponse, error) {
	log.Printf("📖 日程取得開始 (ID: %s)", itineraryID)

	itinerary, err := u.itineraryRepo.GetItinerary(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("日程の取得に失敗: %w", err)
	}

	log.Printf("✅ 日程取得完了 (ID: %s)", itineraryID)
	return itinerary, nil
}

// buildPlacePool は選択ID・候補IDから場所プールを構築する
// 取得できなかったIDはスキップしてログに残す（生成全体は止めない）
func (u *itineraryUseCaseImpl) buildPlacePool(ctx context.Context, req *model.ItineraryGenerateRequest) ([]model.SelectedPlace, error) {
	selected, err := u.placesRepo.GetByIDs(ctx, req.SelectedPlaceIDs)
	if err != nil {
		return nil, fmt.Errorf("選択された場所の取得に失敗: %w", err)
	}
	if len(selected) < len(req.SelectedPlaceIDs) {
		log.Printf("⚠️ 選択された場所のうち%d件が見つかりませんでした", len(req.SelectedPlaceIDs)-len(selected))
	}

	candidates, err := u.placesRepo.GetByIDs(ctx, req.CandidatePlaceIDs)
	if err != nil {
		log.Printf("⚠️ 候補場所の取得に失敗、選択分のみで続行: %v", err)
		candidates = nil
	}

	pool := make([]model.SelectedPlace, 0, len(selected)+len(candidates))
	for _, p := range selected {
		pool = append(pool, model.SelectedPlace{Place: p, IsSelected: true})
	}
	for _, p := range candidates {
		pool = append(pool, model.SelectedPlace{Place: p, IsCandidate: true})
	}

	// 選択と候補の両方に同じ場所が入っていた場合は選択側を優先
	return model.DeduplicateByID(pool), nil
}

// buildSchedulePayload はスケジュール生成サービスへのリクエストを組み立てる
func buildSchedulePayload(pool []model.SelectedPlace, req *model.ItineraryGenerateRequest) *model.SchedulePayload {
	payload := &model.SchedulePayload{
		SelectedPlaces:  []model.PlaceRef{},
		CandidatePlaces: []model.PlaceRef{},
		StartDatetime:   req.StartDatetime,
		EndDatetime:     req.EndDatetime,
	}
	for _, p := range pool {
		ref := model.PlaceRef{ID: p.ID, Name: p.Name}
		if p.IsCandidate {
			payload.CandidatePlaces = append(payload.CandidatePlaces, ref)
		} else {
			payload.SelectedPlaces = append(payload.SelectedPlaces, ref)
		}
	}
	return payload
}
