package helper

import (
	"strings"
	"unicode"
)

// placeNameSuffixes 店舗名の末尾に付く支店表記（類似度比較の前に除去する）
var placeNameSuffixes = []string{"지점", "본점", "branch", "store"}

// StripWhitespace は文字列からすべての空白を除去する
func StripWhitespace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePlaceName は場所名を類似度比較用に正規化する
// 小文字化・前後空白除去・連続空白の畳み込み・記号除去（英数とハングルは残す）・
// 支店表記の末尾語の除去を行う
func NormalizePlaceName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	s = b.String()

	fields := strings.Fields(s)
	for len(fields) > 1 {
		last := fields[len(fields)-1]
		stripped := false
		for _, suffix := range placeNameSuffixes {
			if last == suffix {
				fields = fields[:len(fields)-1]
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}
	return strings.Join(fields, " ")
}

// LevenshteinDistance は2つの文字列の編集距離をルーン単位で計算する
func LevenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// NameSimilarity は正規化済みLevenshtein類似度を計算する（1 - 距離/最大長）
// どちらかが正規化後に空になった場合は0を返す
func NameSimilarity(a, b string) float64 {
	na := NormalizePlaceName(a)
	nb := NormalizePlaceName(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	dist := LevenshteinDistance(na, nb)
	maxLen := len([]rune(na))
	if l := len([]rune(nb)); l > maxLen {
		maxLen = l
	}
	return 1 - float64(dist)/float64(maxLen)
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
