package repository

import (
	"context"

	"JejuTrip-App/internal/domain/model"
)

// ScheduleGenerationRepository 外部のスケジュール生成サービスへのアクセス
type ScheduleGenerationRepository interface {
	GenerateSchedule(ctx context.Context, payload *model.SchedulePayload) (*model.ScheduleResponse, error)
}
