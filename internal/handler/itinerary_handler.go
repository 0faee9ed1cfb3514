package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"JejuTrip-App/internal/domain/helper"
	"JejuTrip-App/internal/domain/model"
	"JejuTrip-App/internal/usecase"
)

// ItineraryHandler は日程生成APIのハンドラー
type ItineraryHandler struct {
	itineraryUseCase usecase.ItineraryUseCase
}

// NewItineraryHandler は新しいItineraryHandlerインスタンスを作成
func NewItineraryHandler(itineraryUseCase usecase.ItineraryUseCase) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUseCase: itineraryUseCase,
	}
}

// PostGenerateItinerary は日程を生成するエンドポイント
// POST /itinerary/generate
func (h *ItineraryHandler) PostGenerateItinerary(c *gin.Context) {
	var req model.ItineraryGenerateRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.itineraryUseCase.GenerateItinerary(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "日程の生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, response)
}

// GetItinerary は生成済みの日程を取得するエンドポイント
// GET /itinerary/:id
func (h *ItineraryHandler) GetItinerary(c *gin.Context) {
	itineraryID := c.Param("id")
	if itineraryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "itinerary_idが指定されていません",
		})
		return
	}

	itinerary, err := h.itineraryUseCase.GetItinerary(c.Request.Context(), itineraryID)
	if err != nil {
		// エラーメッセージから404か500かを判定
		if strings.Contains(err.Error(), "見つかりません") || strings.Contains(err.Error(), "有効期限切れ") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "日程が見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "日程の取得に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *ItineraryHandler) validateRequest(req *model.ItineraryGenerateRequest) error {
	if len(req.SelectedPlaceIDs) == 0 {
		return &ValidationError{Field: "selected_place_ids", Message: "場所を1件以上選択してください"}
	}

	if req.StartDatetime == "" {
		return &ValidationError{Field: "start_datetime", Message: "開始日時は必須です"}
	}
	if req.EndDatetime == "" {
		return &ValidationError{Field: "end_datetime", Message: "終了日時は必須です"}
	}

	startDate, err := helper.ParseLocalDatetime(req.StartDatetime)
	if err != nil {
		return &ValidationError{Field: "start_datetime", Message: "開始日時の形式が正しくありません"}
	}
	endDate, err := helper.ParseLocalDatetime(req.EndDatetime)
	if err != nil {
		return &ValidationError{Field: "end_datetime", Message: "終了日時の形式が正しくありません"}
	}
	if endDate.Before(startDate) {
		return &ValidationError{Field: "end_datetime", Message: "終了日時は開始日時以降を指定してください"}
	}

	// 1日の開始・終了時刻は任意だが、指定された場合は "HH:MM" 形式のみ受け付ける
	if req.StartTime != "" {
		if _, _, err := helper.ParseHHMM(req.StartTime); err != nil {
			return &ValidationError{Field: "start_time", Message: "開始時刻はHH:MM形式で指定してください"}
		}
	}
	if req.EndTime != "" {
		if _, _, err := helper.ParseHHMM(req.EndTime); err != nil {
			return &ValidationError{Field: "end_time", Message: "終了時刻はHH:MM形式で指定してください"}
		}
	}

	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
