package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"JejuTrip-App/internal/domain/model"
	"JejuTrip-App/internal/domain/repository"
)

// FirestoreItineraryRepository Firestoreを使用した生成済み日程のキャッシュリポジトリ
// TTL付きで保存し、クライアントはitinerary_idで再取得できる
type FirestoreItineraryRepository struct {
	client *firestore.Client
}

// NewFirestoreItineraryRepository 新しいFirestoreItineraryRepositoryインスタンスを作成
func NewFirestoreItineraryRepository(client *firestore.Client) repository.ItineraryRepository {
	return &FirestoreItineraryRepository{
		client: client,
	}
}

// SaveItinerary は日程をFirestoreに保存する（IDが未設定の場合は生成する）
func (r *FirestoreItineraryRepository) SaveItinerary(ctx context.Context, itinerary *model.ItineraryResponse, ttlHours int) error {
	if itinerary.ItineraryID == "" {
		itinerary.ItineraryID = fmt.Sprintf("itin_%s", uuid.New().String())
	}

	firestoreData := itinerary.ToFirestoreItinerary(ttlHours)

	_, err := r.client.Collection("itineraries").Doc(itinerary.ItineraryID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ 日程の保存に失敗: %s: %v", itinerary.ItineraryID, err)
		return fmt.Errorf("日程の保存に失敗しました: %w", err)
	}

	log.Printf("✅ 日程を保存しました: %s (有効期限 %d時間)", itinerary.ItineraryID, ttlHours)
	return nil
}

// GetItinerary は指定されたitinerary_idの日程をFirestoreから取得する
func (r *FirestoreItineraryRepository) GetItinerary(ctx context.Context, itineraryID string) (*model.ItineraryResponse, error) {
	doc, err := r.client.Collection("itineraries").Doc(itineraryID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("日程が見つかりません（有効期限切れまたは無効なID）: %s", itineraryID)
		}
		return nil, fmt.Errorf("日程の取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreItinerary
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	log.Printf("✅ 日程を取得しました: %s", itineraryID)
	return firestoreData.ToItineraryResponse(itineraryID), nil
}
