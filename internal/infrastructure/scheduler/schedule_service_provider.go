package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"JejuTrip-App/internal/domain/model"
	"JejuTrip-App/internal/domain/repository"
)

// ScheduleServiceProvider は外部のスケジュール生成サービスを呼び出す実装
// 選択された場所と旅程の時間枠を送り、日別スケジュールと経路サマリーを受け取る
type ScheduleServiceProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewScheduleServiceProvider は新しいプロバイダを生成する
func NewScheduleServiceProvider(baseURL string) repository.ScheduleGenerationRepository {
	return &ScheduleServiceProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateSchedule はスケジュール生成サービスを呼び出してレスポンスを取得する
func (p *ScheduleServiceProvider) GenerateSchedule(ctx context.Context, payload *model.SchedulePayload) (*model.ScheduleResponse, error) {
	// 1. リクエストボディを構築
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("リクエストボディの構築に失敗: %w", err)
	}

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/schedule/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	// 3. JSONレスポンスをパース
	var apiResp model.ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	if len(apiResp.Schedule) == 0 {
		return nil, errors.New("APIから有効なスケジュールが返されませんでした")
	}

	return &apiResp, nil
}
