package clock

import "time"

// 业务日历固定使用东八区，存储层一律 UTC。
var Local = time.FixedZone("CST", 8*3600)

const DayLayout = "2006-01-02"

// Clock 可注入的时钟，测试中可固定时间。
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func NewSystemClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Day 返回 t 所属的本地业务日，格式 2006-01-02
func Day(t time.Time) string {
	return t.In(Local).Format(DayLayout)
}

// DayStart 返回 t 所属本地日的零点（UTC 表示）
func DayStart(t time.Time) time.Time {
	lt := t.In(Local)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Local).UTC()
}

// DayWindow 返回 t 所属本地日的起止区间 [start, end)，均为 UTC
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := DayStart(t)
	return start, start.Add(24 * time.Hour)
}

// AddDays 以本地日为单位偏移
func AddDays(day string, n int) string {
	t, _ := time.ParseInLocation(DayLayout, day, Local)
	return t.AddDate(0, 0, n).Format(DayLayout)
}

// MonthWindow 返回本地某年某月的起止区间 [start, end)，均为 UTC
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, Local)
	return start.UTC(), start.AddDate(0, 1, 0).UTC()
}

// Fixed 固定时钟，测试用
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T.UTC()
}
