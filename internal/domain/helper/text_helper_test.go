package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripWhitespace(t *testing.T) {
	assert.Equal(t, "해해진미", StripWhitespace("해해 진미"))
	assert.Equal(t, "abc", StripWhitespace(" a b\tc "))
	assert.Equal(t, "", StripWhitespace("   "))
}

func TestNormalizePlaceName(t *testing.T) {
	t.Run("小文字化と空白の畳み込み", func(t *testing.T) {
		assert.Equal(t, "cafe delmoondo", NormalizePlaceName("  Cafe   Delmoondo "))
	})

	t.Run("記号を除去する", func(t *testing.T) {
		assert.Equal(t, "제주카페 2호", NormalizePlaceName("제주카페 (2호)"))
	})

	t.Run("支店表記の末尾語を除去する", func(t *testing.T) {
		assert.Equal(t, "흑돼지거리", NormalizePlaceName("흑돼지거리 지점"))
		assert.Equal(t, "올레국수", NormalizePlaceName("올레국수 본점"))
	})

	t.Run("支店表記のみの名前はそのまま残す", func(t *testing.T) {
		assert.Equal(t, "지점", NormalizePlaceName("지점"))
	})
}

func TestLevenshteinDistance(t *testing.T) {
	t.Run("同一文字列は距離0", func(t *testing.T) {
		assert.Equal(t, 0, LevenshteinDistance("성산일출봉", "성산일출봉"))
	})

	t.Run("片方が空なら相手の長さ", func(t *testing.T) {
		assert.Equal(t, 3, LevenshteinDistance("", "abc"))
		assert.Equal(t, 5, LevenshteinDistance("성산일출봉", ""))
	})

	t.Run("典型的な編集距離", func(t *testing.T) {
		assert.Equal(t, 3, LevenshteinDistance("kitten", "sitting"))
	})

	t.Run("ルーン単位で計算する", func(t *testing.T) {
		assert.Equal(t, 1, LevenshteinDistance("제주도", "제주시"))
	})
}

func TestNameSimilarity(t *testing.T) {
	t.Run("正規化後に等しければ1", func(t *testing.T) {
		assert.Equal(t, 1.0, NameSimilarity("Cafe Delmoondo", "cafe  delmoondo"))
	})

	t.Run("空白の有無だけの違いは閾値を超える", func(t *testing.T) {
		score := NameSimilarity("성산일출봉", "성산 일출봉")
		assert.GreaterOrEqual(t, score, 0.7)
	})

	t.Run("まったく異なる名前は低スコア", func(t *testing.T) {
		score := NameSimilarity("성산일출봉", "한라산국립공원")
		assert.Less(t, score, 0.5)
	})

	t.Run("どちらかが空なら0", func(t *testing.T) {
		assert.Equal(t, 0.0, NameSimilarity("", "성산일출봉"))
		assert.Equal(t, 0.0, NameSimilarity("성산일출봉", "  "))
	})
}
