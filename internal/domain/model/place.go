package model

import "log"

// LatLng 緯度経度を表す基本的な型（距離計算などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Category 場所のカテゴリを表す内部正規形
// 境界層（DB・外部サービス）では韓国語/英語の文字列が混在するため、
// 入力時に必ず NormalizeCategory を通して正規形に変換する
type Category string

const (
	CategoryAccommodation Category = "accommodation" // 숙소
	CategoryAttraction    Category = "attraction"    // 관광지
	CategoryRestaurant    Category = "restaurant"    // 음식점
	CategoryCafe          Category = "cafe"          // 카페
)

// categoryNameMap 外部表記（韓国語・英語）から正規カテゴリへのマッピング
var categoryNameMap = map[string]Category{
	"숙소":            CategoryAccommodation,
	"관광지":           CategoryAttraction,
	"음식점":           CategoryRestaurant,
	"카페":            CategoryCafe,
	"accommodation": CategoryAccommodation,
	"attraction":    CategoryAttraction,
	"landmark":      CategoryAttraction,
	"restaurant":    CategoryRestaurant,
	"cafe":          CategoryCafe,
}

// categoryKoreanNameMap 正規カテゴリから韓国語表記へのマッピング（DBクエリ用）
var categoryKoreanNameMap = map[Category]string{
	CategoryAccommodation: "숙소",
	CategoryAttraction:    "관광지",
	CategoryRestaurant:    "음식점",
	CategoryCafe:          "카페",
}

// NormalizeCategory 外部表記のカテゴリ文字列を正規形に変換する
// 未知のカテゴリは警告ログを出して関光地(attraction)にフォールバックする
func NormalizeCategory(raw string) Category {
	if c, ok := categoryNameMap[raw]; ok {
		return c
	}
	log.Printf("⚠️ 未知のカテゴリ '%s' を attraction として扱います", raw)
	return CategoryAttraction
}

// GetCategoryKoreanName 正規カテゴリから韓国語表記を取得する
func GetCategoryKoreanName(c Category) string {
	if name, ok := categoryKoreanNameMap[c]; ok {
		return name
	}
	return string(c) // デフォルトはそのまま返す
}

// IsValidCategory 文字列が既知のカテゴリ表記かチェックする
func IsValidCategory(raw string) bool {
	_, ok := categoryNameMap[raw]
	return ok
}

// GetAllCategories 全カテゴリの一覧を取得する
func GetAllCategories() []Category {
	return []Category{
		CategoryAccommodation,
		CategoryAttraction,
		CategoryRestaurant,
		CategoryCafe,
	}
}

// Place 観光スポット・飲食店・宿泊先などの場所を表すモデル
// X が経度、Y が緯度（元データの座標系に合わせている）
type Place struct {
	ID       string   `json:"id" db:"id"`
	Name     string   `json:"name" db:"name"`
	Category Category `json:"category" db:"category"`
	X        float64  `json:"x" db:"x"` // 経度
	Y        float64  `json:"y" db:"y"` // 緯度
	Address  string   `json:"address,omitempty" db:"address"`
	Phone    string   `json:"phone,omitempty" db:"phone"`
	Rating   float64  `json:"rating,omitempty" db:"rating"`
	ImageURL string   `json:"image_url,omitempty" db:"image_url"`
	Homepage string   `json:"homepage,omitempty" db:"homepage"`
	Link     string   `json:"link,omitempty" db:"link"`
}

// ToLatLng Placeの位置情報をLatLng型に変換
func (p *Place) ToLatLng() LatLng {
	return LatLng{Lat: p.Y, Lng: p.X}
}

// HasCoordinates 有効な座標を持っているかチェック
// 座標未設定のレコードはゼロ値のまま入ってくるため、(0, 0) は欠損として扱う
func (p *Place) HasCoordinates() bool {
	return p.X != 0 || p.Y != 0
}

// SelectedPlace ユーザーが選択した場所（自動補完された候補を含む）
type SelectedPlace struct {
	Place
	IsSelected  bool `json:"is_selected"`  // ユーザーが明示的に選択した
	IsCandidate bool `json:"is_candidate"` // 自動補完で追加された（未確定）
}

// DeduplicateByID IDの重複を除去する（先に現れたものを優先）
// 同じ場所が選択済みと候補の両方に現れてはいけない、という不変条件を守る
func DeduplicateByID(places []SelectedPlace) []SelectedPlace {
	seen := make(map[string]struct{}, len(places))
	result := make([]SelectedPlace, 0, len(places))
	for _, p := range places {
		if _, ok := seen[p.ID]; ok {
			log.Printf("⚠️ 重複した場所ID '%s' (%s) をスキップします", p.ID, p.Name)
			continue
		}
		seen[p.ID] = struct{}{}
		result = append(result, p)
	}
	return result
}
