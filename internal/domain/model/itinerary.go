package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// ItineraryPlaceWithTime 日程に組み込まれた場所（到着・出発時刻付き）
type ItineraryPlaceWithTime struct {
	Place
	ArriveTime       string `json:"arrive_time"`           // "HH:MM"
	DepartTime       string `json:"depart_time"`           // "HH:MM"（時は24でラップする）
	TimeBlock        string `json:"time_block,omitempty"`  // サーバーの元time_block（例: "Mon_0900"）
	StayDurationMin  int    `json:"stay_duration_minutes"` // 滞在時間(分)
	TravelTimeToNext string `json:"travel_time_to_next,omitempty"`
	IsFallback       bool   `json:"is_fallback"`  // ローカルデータで解決できなかった場合true
	GeoNodeID        string `json:"geo_node_id"`  // 経路グラフのノードID（不明時は場所ID）
}

// RouteData 1日分の経路データ（ノードID列とリンクID列）
// 同じinterleaved列から分離されるが、長さの関係は保証しない
type RouteData struct {
	RouteID string   `json:"route_id"`
	Day     int      `json:"day"`
	NodeIDs []string `json:"node_ids"`
	LinkIDs []string `json:"link_ids"`
}

// SegmentRoute 1日の中の連続する2地点間の部分経路（区間ハイライト用）
type SegmentRoute struct {
	FromIndex int      `json:"from_index"`
	ToIndex   int      `json:"to_index"`
	NodeIDs   []string `json:"node_ids"`
	LinkIDs   []string `json:"link_ids"`
}

// ItineraryDay 1日分の日程
type ItineraryDay struct {
	Day              int                      `json:"day"` // 1始まりの連番
	DayOfWeek        string                   `json:"day_of_week"`
	Date             string                   `json:"date"` // "MM/DD"
	Places           []ItineraryPlaceWithTime `json:"places"`
	TotalDistanceKm  float64                  `json:"total_distance_km"` // 小数点以下2桁
	InterleavedRoute []string                 `json:"interleaved_route,omitempty"`
	RouteData        *RouteData               `json:"route_data,omitempty"`
}

// PlaceRef スケジュール生成サービスへ渡す場所参照
type PlaceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SchedulePayload スケジュール生成サービスへのリクエストボディ
type SchedulePayload struct {
	SelectedPlaces  []PlaceRef `json:"selected_places"`
	CandidatePlaces []PlaceRef `json:"candidate_places"`
	StartDatetime   string     `json:"start_datetime"` // ローカル時刻のISO風文字列
	EndDatetime     string     `json:"end_datetime"`
}

// FlexID 数値・文字列どちらで来てもstringとして受けるID型
// スケジュールサービスはidを数値で返すことがある
type FlexID string

// UnmarshalJSON string / number / null を受け付ける
func (f *FlexID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// ScheduleItem スケジュールサービスが返す1スロット分の訪問予定
type ScheduleItem struct {
	ID        FlexID `json:"id,omitempty"`
	PlaceName string `json:"place_name"`
	PlaceType string `json:"place_type"`
	TimeBlock string `json:"time_block"` // "<DayKey>_<HHMM>" 形式
}

// RouteSummaryEntry スケジュールサービスが返す1日分の経路サマリー
type RouteSummaryEntry struct {
	Day              string   `json:"day"` // day-key（例: "Mon"）
	Status           string   `json:"status"`
	TotalDistanceM   float64  `json:"total_distance_m"`
	PlacesScheduled  []string `json:"places_scheduled"`
	PlacesRouted     []string `json:"places_routed"`
	InterleavedRoute []string `json:"interleaved_route"` // ノードIDとリンクIDが交互に並ぶ
}

// ScheduleResponse スケジュール生成サービスのレスポンス全体
type ScheduleResponse struct {
	TotalReward  float64             `json:"total_reward"`
	Schedule     []ScheduleItem      `json:"schedule"`
	RouteSummary []RouteSummaryEntry `json:"route_summary"`
}

// ItineraryGenerateRequest 日程生成APIのリクエスト
type ItineraryGenerateRequest struct {
	SelectedPlaceIDs  []string `json:"selected_place_ids" validate:"required"`
	CandidatePlaceIDs []string `json:"candidate_place_ids"`
	StartDatetime     string   `json:"start_datetime" validate:"required"` // "2006-01-02T15:04:05"
	EndDatetime       string   `json:"end_datetime" validate:"required"`
	StartTime         string   `json:"start_time"` // 1日の開始時刻 "HH:MM"
	EndTime           string   `json:"end_time"`   // 1日の終了時刻 "HH:MM"
}

// ItineraryResponse 日程生成APIのレスポンス
type ItineraryResponse struct {
	ItineraryID string         `json:"itinerary_id"`
	Days        []ItineraryDay `json:"days"`
	TotalReward float64        `json:"total_reward,omitempty"`
	IsFallback  bool           `json:"is_fallback"` // サーバー経路なしでクライアント側生成した場合true
}

// FirestoreItinerary Firestoreにキャッシュする日程データ
type FirestoreItinerary struct {
	Days        []ItineraryDay `firestore:"days"`
	TotalReward float64        `firestore:"total_reward"`
	IsFallback  bool           `firestore:"is_fallback"`
	ExpireAt    time.Time      `firestore:"expireAt"`
}

// ToFirestoreItinerary ItineraryResponseをFirestore保存用に変換する
func (ir *ItineraryResponse) ToFirestoreItinerary(ttlHours int) *FirestoreItinerary {
	return &FirestoreItinerary{
		Days:        ir.Days,
		TotalReward: ir.TotalReward,
		IsFallback:  ir.IsFallback,
		ExpireAt:    time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToItineraryResponse Firestoreのデータから ItineraryResponse に戻す
func (fi *FirestoreItinerary) ToItineraryResponse(itineraryID string) *ItineraryResponse {
	return &ItineraryResponse{
		ItineraryID: itineraryID,
		Days:        fi.Days,
		TotalReward: fi.TotalReward,
		IsFallback:  fi.IsFallback,
	}
}
