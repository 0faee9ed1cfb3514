package service

import (
	"log"
	"sort"
	"strings"

	"JejuTrip-App/internal/domain/helper"
	"JejuTrip-App/internal/domain/model"
)

// ScheduleAdapter はスケジュール生成サービスのレスポンスを日別の日程に変換する
type ScheduleAdapter struct {
	matcher *PlaceMatcher
	parser  *RouteParser
}

// NewScheduleAdapter は新しいScheduleAdapterインスタンスを作成する
func NewScheduleAdapter() *ScheduleAdapter {
	return &ScheduleAdapter{
		matcher: NewPlaceMatcher(),
		parser:  NewRouteParser(),
	}
}

// scheduleBlock 連続する同一場所のスロットをまとめた滞在ブロック
type scheduleBlock struct {
	item      *model.ScheduleItem // 先頭スロットの項目
	slotCount int                 // 連続スロット数
}

// Adapt はサーバーレスポンスを日番号付きの日程リストに変換する
// 日番号は曜日順序テーブル（Mon=1〜Sun=7、未知は最後）でday-keyを並べた順になる。
// このためday-keyが週の途中から始まると旅程開始日と食い違うことがあるが、
// 上流仕様をそのまま引き継いでいる（カレンダー順への補正はしない）
func (a *ScheduleAdapter) Adapt(resp *model.ScheduleResponse, localPlaces []model.SelectedPlace) []model.ItineraryDay {
	if resp == nil || len(resp.Schedule) == 0 || resp.RouteSummary == nil {
		log.Printf("⚠️ スケジュールレスポンスが不完全です。空の日程を返します")
		return []model.ItineraryDay{}
	}

	idx := NewPlaceIndex(localPlaces)

	// day-keyごとにスケジュール項目をグループ化（time_blockの "_" より前がday-key）
	groups := make(map[string][]model.ScheduleItem)
	dayKeys := make([]string, 0)
	seen := make(map[string]struct{})
	for _, item := range resp.Schedule {
		dayKey, _, _, _ := helper.ParseTimeBlock(item.TimeBlock)
		if _, ok := seen[dayKey]; !ok {
			seen[dayKey] = struct{}{}
			dayKeys = append(dayKeys, dayKey)
		}
		groups[dayKey] = append(groups[dayKey], item)
	}

	// 経路サマリーにしかないday-key（空の日）も日程に含める
	summaryByDay := make(map[string]*model.RouteSummaryEntry, len(resp.RouteSummary))
	for i := range resp.RouteSummary {
		entry := &resp.RouteSummary[i]
		summaryByDay[entry.Day] = entry
		if _, ok := seen[entry.Day]; !ok {
			seen[entry.Day] = struct{}{}
			dayKeys = append(dayKeys, entry.Day)
		}
	}

	sort.SliceStable(dayKeys, func(i, j int) bool {
		return model.GetWeekdayOrder(dayKeys[i]) < model.GetWeekdayOrder(dayKeys[j])
	})

	days := make([]model.ItineraryDay, 0, len(dayKeys))
	for i, dayKey := range dayKeys {
		dayNumber := i + 1
		day := model.ItineraryDay{
			Day:    dayNumber,
			Places: a.buildDayPlaces(groups[dayKey], idx, i),
		}

		if summary, ok := summaryByDay[dayKey]; ok {
			day.TotalDistanceKm = helper.RoundDistanceKm(summary.TotalDistanceM / 1000)
			if len(summary.InterleavedRoute) > 0 {
				day.InterleavedRoute = summary.InterleavedRoute
				day.RouteData = a.parser.ToRouteData(summary.InterleavedRoute, dayNumber)
			}
		} else {
			log.Printf("⚠️ day-key '%s' の経路サマリーがありません", dayKey)
		}

		days = append(days, day)
	}

	return days
}

// Segments は1日分の日程から区間経路リストを作る（区間ハイライト用）
func (a *ScheduleAdapter) Segments(day *model.ItineraryDay) []model.SegmentRoute {
	if day == nil {
		return []model.SegmentRoute{}
	}
	return a.parser.ToSegments(day.RouteData, len(day.Places))
}

// buildDayPlaces は1日分のスケジュール項目を滞在ブロックにまとめ、場所を解決する
func (a *ScheduleAdapter) buildDayPlaces(items []model.ScheduleItem, idx *PlaceIndex, dayIndex int) []model.ItineraryPlaceWithTime {
	blocks := mergeConsecutiveSlots(items)
	places := make([]model.ItineraryPlaceWithTime, 0, len(blocks))

	for blockIndex, block := range blocks {
		_, hour, minute, ok := helper.ParseTimeBlock(block.item.TimeBlock)
		if !ok {
			log.Printf("⚠️ time_block '%s' をパースできません。スキップします", block.item.TimeBlock)
			continue
		}

		stayMinutes := block.slotCount * model.ScheduleSlotMinutes
		departHour, departMinute := helper.AddMinutesWrapped(hour, minute, stayMinutes)

		matched := a.matcher.FindPlaceDetails(block.item, idx)
		var place model.SelectedPlace
		isFallback := false
		if matched != nil {
			place = *matched
		} else {
			place = a.matcher.BuildFallbackPlace(block.item, dayIndex, blockIndex)
			isFallback = true
		}

		places = append(places, model.ItineraryPlaceWithTime{
			Place:           place.Place,
			ArriveTime:      helper.FormatHHMM(hour, minute),
			DepartTime:      helper.FormatHHMM(departHour, departMinute),
			TimeBlock:       block.item.TimeBlock,
			StayDurationMin: stayMinutes,
			IsFallback:      isFallback,
			GeoNodeID:       place.ID,
		})
	}

	return places
}

// mergeConsecutiveSlots は同じ場所を指す連続スロットを1つの滞在ブロックにまとめる
// 項目は上流でtime_block順に整列済みである前提
func mergeConsecutiveSlots(items []model.ScheduleItem) []scheduleBlock {
	var blocks []scheduleBlock
	for i := range items {
		item := &items[i]
		if len(blocks) > 0 && samePlaceRef(blocks[len(blocks)-1].item, item) {
			blocks[len(blocks)-1].slotCount++
			continue
		}
		blocks = append(blocks, scheduleBlock{item: item, slotCount: 1})
	}
	return blocks
}

// samePlaceRef は2つのスケジュール項目が同じ場所を指しているかチェックする
// IDが両方にあればIDで、なければ名前で比較する
func samePlaceRef(a, b *model.ScheduleItem) bool {
	idA := strings.TrimSpace(string(a.ID))
	idB := strings.TrimSpace(string(b.ID))
	if idA != "" && idB != "" {
		return idA == idB
	}
	return a.PlaceName == b.PlaceName
}
