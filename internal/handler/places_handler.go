package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"JejuTrip-App/internal/domain/model"
	"JejuTrip-App/internal/domain/repository"
)

// PlacesHandler は場所プール取得APIのハンドラー
type PlacesHandler struct {
	placesRepo repository.PlacesRepository
}

// NewPlacesHandler は新しいPlacesHandlerインスタンスを作成
func NewPlacesHandler(placesRepo repository.PlacesRepository) *PlacesHandler {
	return &PlacesHandler{
		placesRepo: placesRepo,
	}
}

// GetPlaces はカテゴリ別に場所一覧を取得するエンドポイント
// GET /places?category=restaurant
func (h *PlacesHandler) GetPlaces(c *gin.Context) {
	category := c.Query("category")

	var places []model.Place
	var err error

	if category == "" {
		places, err = h.placesRepo.GetAll(c.Request.Context())
	} else {
		if !model.IsValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "未知のカテゴリです: " + category,
			})
			return
		}
		places, err = h.placesRepo.GetByCategory(c.Request.Context(), model.NormalizeCategory(category))
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "場所データの取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"places": places,
		"count":  len(places),
	})
}

// GetPlace は単一の場所を取得するエンドポイント
// GET /places/:id
func (h *PlacesHandler) GetPlace(c *gin.Context) {
	placeID := c.Param("id")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "place_idが指定されていません",
		})
		return
	}

	place, err := h.placesRepo.GetByID(c.Request.Context(), placeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "場所が見つかりません",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, place)
}
