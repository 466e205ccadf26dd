package gamify

import (
	"sort"
	"time"
)

// Серия недель: кол-во ISO-недель подряд с хотя бы одним посещением,
// отсчет назад от последней посещенной недели (не от текущей даты)

// Понедельник ISO-недели даты, 00:00 UTC
func isoMonday(t time.Time) time.Time {
	t = t.UTC()
	wd := (int(t.Weekday()) + 6) % 7 // понедельник = 0
	y, m, d := t.AddDate(0, 0, -wd).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Расчет серии по датам посещенных событий
func StreakWeeks(times []time.Time) int {
	// недели без дублей: несколько посещений в одну неделю считаются одной
	weeks := make(map[time.Time]struct{}, len(times))
	for _, t := range times {
		weeks[isoMonday(t)] = struct{}{}
	}
	if len(weeks) == 0 {
		return 0
	}

	mondays := make([]time.Time, 0, len(weeks))
	for w := range weeks {
		mondays = append(mondays, w)
	}
	sort.Slice(mondays, func(i, j int) bool { return mondays[j].Before(mondays[i]) })

	// идем от последней недели назад, первый разрыв завершает серию
	// переход через год не требует отдельной обработки: неделя 1 идет
	// через 7 дней после недели 52/53
	streak := 1
	anchor := mondays[0]
	for _, m := range mondays[1:] {
		if !m.Equal(anchor.AddDate(0, 0, -7)) {
			break
		}
		streak++
		anchor = m
	}
	return streak
}
