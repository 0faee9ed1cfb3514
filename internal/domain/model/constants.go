package model

// WeekdayOrderMap サーバーのday-key（曜日略称）を日程番号に並べるための順序テーブル
// Mon=1 〜 Sun=7。未知のキーは WeekdayOrderUnknown として最後に並ぶ
var WeekdayOrderMap = map[string]int{
	"Mon": 1,
	"Tue": 2,
	"Wed": 3,
	"Thu": 4,
	"Fri": 5,
	"Sat": 6,
	"Sun": 7,
}

// WeekdayOrderUnknown 順序テーブルにないday-keyの順位
const WeekdayOrderUnknown = 8

// GetWeekdayOrder day-keyの並び順を取得する
func GetWeekdayOrder(dayKey string) int {
	if order, ok := WeekdayOrderMap[dayKey]; ok {
		return order
	}
	return WeekdayOrderUnknown
}

// WeekdayKoreanLabels time.Weekday（日曜=0始まり）に対応する韓国語の曜日ラベル
var WeekdayKoreanLabels = []string{"일", "월", "화", "수", "목", "금", "토"}

// FallbackLocation ローカルデータで解決できなかった場所に使う既定座標（済州島中心部）
var FallbackLocation = LatLng{Lat: 33.4, Lng: 126.5}

// FallbackAddress フォールバック場所の既定住所
const FallbackAddress = "제주특별자치도"

// SimilarityThreshold 場所名のあいまい一致を受け入れる類似度の下限
const SimilarityThreshold = 0.7

// TravelMinutesPerKm 距離(km)から移動時間(分)を見積もる係数（平均約40km/hを想定）
const TravelMinutesPerKm = 1.5

// ScheduleSlotMinutes サーバースケジュールの1タイムスロットの長さ(分)
const ScheduleSlotMinutes = 60

// ItineraryTTLHours 生成済み日程のキャッシュ保持時間
const ItineraryTTLHours = 24
