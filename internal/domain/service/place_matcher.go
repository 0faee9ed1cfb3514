package service

import (
	"fmt"
	"log"
	"strings"

	"JejuTrip-App/internal/domain/helper"
	"JejuTrip-App/internal/domain/model"
)

// PlaceIndex ローカルの場所プールに対する検索インデックス
// ID・名前・空白除去済み名前の3種類のマップと全件リストを保持する
type PlaceIndex struct {
	byID           map[string]*model.SelectedPlace
	byName         map[string]*model.SelectedPlace
	byStrippedName map[string]*model.SelectedPlace
	all            []*model.SelectedPlace
}

// NewPlaceIndex は場所プールからインデックスを構築する
func NewPlaceIndex(places []model.SelectedPlace) *PlaceIndex {
	idx := &PlaceIndex{
		byID:           make(map[string]*model.SelectedPlace, len(places)),
		byName:         make(map[string]*model.SelectedPlace, len(places)),
		byStrippedName: make(map[string]*model.SelectedPlace, len(places)),
	}
	for i := range places {
		p := &places[i]
		idx.all = append(idx.all, p)
		if id := strings.TrimSpace(p.ID); id != "" {
			idx.byID[id] = p
		}
		if p.Name != "" {
			idx.byName[p.Name] = p
			idx.byStrippedName[helper.StripWhitespace(p.Name)] = p
		}
	}
	return idx
}

// PlaceMatcher サーバーが参照する場所をローカルの場所レコードに解決する
type PlaceMatcher struct{}

// NewPlaceMatcher は新しいPlaceMatcherインスタンスを作成する
func NewPlaceMatcher() *PlaceMatcher {
	return &PlaceMatcher{}
}

// FindPlaceDetails はスケジュール項目をローカルの場所レコードに解決する
// 解決順序: ID完全一致 → 名前完全一致 → 空白除去名一致 → 類似度一致（閾値以上）
// どの段階でも一致しなければnilを返す（呼び出し側がフォールバック値を適用する）
func (m *PlaceMatcher) FindPlaceDetails(item *model.ScheduleItem, idx *PlaceIndex) *model.SelectedPlace {
	if item == nil || idx == nil {
		return nil
	}

	// 1. ID完全一致
	if id := strings.TrimSpace(string(item.ID)); id != "" {
		if p, ok := idx.byID[id]; ok {
			return p
		}
	}

	// 2. 名前完全一致
	if p, ok := idx.byName[item.PlaceName]; ok {
		return p
	}

	// 3. 空白除去名一致（"해해진미" と "해해 진미" のような表記ゆれを吸収）
	if p, ok := idx.byStrippedName[helper.StripWhitespace(item.PlaceName)]; ok {
		return p
	}

	// 4. 類似度一致: 正規化Levenshtein類似度が最大の候補を閾値付きで採用
	var best *model.SelectedPlace
	bestScore := 0.0
	for _, p := range idx.all {
		score := helper.NameSimilarity(item.PlaceName, p.Name)
		if score > bestScore {
			bestScore = score
			best = p
		}
	}
	if best != nil && bestScore >= model.SimilarityThreshold {
		log.Printf("🔎 あいまい一致: '%s' → '%s' (類似度 %.2f)", item.PlaceName, best.Name, bestScore)
		return best
	}

	return nil
}

// SynthesizeFallbackID は一致しなかった項目に一意なIDを生成する
// サーバーがIDを返さなかった場合に使い、生成時に警告ログを出す
func (m *PlaceMatcher) SynthesizeFallbackID(item *model.ScheduleItem, dayIndex, itemIndex int) string {
	if id := strings.TrimSpace(string(item.ID)); id != "" {
		return id
	}
	id := fmt.Sprintf("fallback_%s_%d_%d", strings.ReplaceAll(item.PlaceName, " ", "_"), dayIndex, itemIndex)
	log.Printf("⚠️ スケジュール項目 '%s' にIDがないため '%s' を生成しました", item.PlaceName, id)
	return id
}

// BuildFallbackPlace は解決できなかったスケジュール項目から既定値入りの場所を作る
func (m *PlaceMatcher) BuildFallbackPlace(item *model.ScheduleItem, dayIndex, itemIndex int) model.SelectedPlace {
	log.Printf("⚠️ 場所 '%s' がローカルデータに見つかりません。フォールバック値を使用します", item.PlaceName)
	return model.SelectedPlace{
		Place: model.Place{
			ID:       m.SynthesizeFallbackID(item, dayIndex, itemIndex),
			Name:     item.PlaceName,
			Category: model.NormalizeCategory(item.PlaceType),
			X:        model.FallbackLocation.Lng,
			Y:        model.FallbackLocation.Lat,
			Address:  model.FallbackAddress,
		},
	}
}
