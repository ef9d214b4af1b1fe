package calendar

import (
	"time"
)

// Chinese month labels used for the image title.
var monthNames = map[time.Month]string{
	time.January:   "一月",
	time.February:  "二月",
	time.March:     "三月",
	time.April:     "四月",
	time.May:       "五月",
	time.June:      "六月",
	time.July:      "七月",
	time.August:    "八月",
	time.September: "九月",
	time.October:   "十月",
	time.November:  "十一月",
	time.December:  "十二月",
}

func MonthName(month time.Month) string {
	if name, ok := monthNames[month]; ok {
		return name
	}
	return "未知月份"
}

// MonthGrid lays the month out as Monday-first weeks of seven cells.
// Cells outside the month are zero.
func MonthGrid(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Weekday is Sunday-based; shift so Monday lands in column 0.
	offset := (int(first.Weekday()) + 6) % 7

	var weeks [][7]int
	week := [7]int{}
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
