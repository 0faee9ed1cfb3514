package repository

import (
	"context"

	"JejuTrip-App/internal/domain/model"
)

// ItineraryRepository 生成済み日程のキャッシュ（TTL付き）
type ItineraryRepository interface {
	SaveItinerary(ctx context.Context, itinerary *model.ItineraryResponse, ttlHours int) error
	GetItinerary(ctx context.Context, itineraryID string) (*model.ItineraryResponse, error)
}
