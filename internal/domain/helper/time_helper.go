package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatHHMM は時・分をゼロ埋めの "HH:MM" 形式にする
func FormatHHMM(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// AddMinutesWrapped は時刻に分を加算する
// 時は24でラップし、日付の繰り上がりは呼び出し側に通知しない
// （深夜をまたぐ滞在は departHour < arriveHour で検出する必要がある）
func AddMinutesWrapped(hour, minute, addMinutes int) (int, int) {
	total := minute + addMinutes
	newHour := (hour + total/60) % 24
	newMinute := total % 60
	return newHour, newMinute
}

// ParseHHMM は "HH:MM" 形式の文字列をパースする
func ParseHHMM(s string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("時刻形式が正しくありません: %s", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("時のパースに失敗: %s", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("分のパースに失敗: %s", s)
	}
	return hour, minute, nil
}

// ParseTimeBlock は "<DayKey>_<HHMM>" 形式のtime_blockを分解する
// 例: "Mon_0900" → ("Mon", 9, 0, true)
func ParseTimeBlock(block string) (dayKey string, hour, minute int, ok bool) {
	idx := strings.Index(block, "_")
	if idx < 0 {
		return block, 0, 0, false
	}
	dayKey = block[:idx]
	hhmm := block[idx+1:]
	if len(hhmm) != 4 {
		return dayKey, 0, 0, false
	}
	h, err1 := strconv.Atoi(hhmm[:2])
	m, err2 := strconv.Atoi(hhmm[2:])
	if err1 != nil || err2 != nil {
		return dayKey, 0, 0, false
	}
	return dayKey, h, m, true
}

// DaysBetween は2つの日付の間の日数を返す（時刻部分は無視する）
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	return int(e.Sub(s).Hours() / 24)
}

// ParseLocalDatetime はローカル時刻のISO風文字列をパースする
// "2006-01-02T15:04:05" と "2006-01-02" の両方を受け付ける
func ParseLocalDatetime(s string) (time.Time, error) {
	layouts := []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("日時形式が正しくありません: %s", s)
}
