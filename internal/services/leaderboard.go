package gamify

import (
	"context"
	"fmt"
	"time"

	interf "github.com/glkeru/gamify/internal/interfaces"
	model "github.com/glkeru/gamify/internal/models"
	"go.uber.org/zap"
)

type LeaderboardService struct {
	logger *zap.Logger
	db     interf.LedgerStorage
}

func NewLeaderboardService(logger *zap.Logger, db interf.LedgerStorage) (service *LeaderboardService) {
	return &LeaderboardService{logger, db}
}

// Начало недельного окна - последний понедельник 00:00 UTC
func WeekStart(now time.Time) time.Time {
	now = now.UTC()
	wd := (int(now.Weekday()) + 6) % 7 // понедельник = 0
	y, m, d := now.AddDate(0, 0, -wd).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Начало месячного окна - первое число месяца 00:00 UTC
func MonthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func windowStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case model.WEEKLY:
		return WeekStart(now), nil
	case model.MONTHLY:
		return MonthStart(now), nil
	case model.ALLTIME:
		// нулевое начало окна: сумма по всем транзакциям равна балансу,
		// отдельный обход пользователей не нужен
		return time.Time{}, nil
	}
	return time.Time{}, fmt.Errorf("unknown period %s: %w", period, model.ErrValidation)
}

// Рейтинг за период
// user может быть пустым; если задан и не попал в страницу, его позиция
// добавляется в конец с признаком isCurrentUser
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, period string, limit int, user string) (model.LeaderboardResult, error) {
	result := model.LeaderboardResult{Period: period}

	since, err := windowStart(period, time.Now())
	if err != nil {
		return result, err
	}
	if limit <= 0 {
		limit = 10
	}

	entries, err := s.db.TopEarners(ctx, since, limit)
	if err != nil {
		return result, err
	}

	// плотные ранги: равные баллы делят позицию
	rank := 0
	prev := 0
	found := false
	for i := range entries {
		if i == 0 || entries[i].Points != prev {
			rank++
			prev = entries[i].Points
		}
		entries[i].Rank = rank
		if entries[i].User == user {
			entries[i].IsCurrentUser = true
			found = true
		}
	}

	total, err := s.db.CountEarners(ctx, since)
	if err != nil {
		return result, err
	}

	if user != "" && !found {
		entry, ahead, err := s.db.UserWindow(ctx, user, since)
		if err != nil {
			s.logger.Error("Leaderboard",
				zap.String("service", "GetLeaderboard"),
				zap.String("user", user),
				zap.Error(err),
			)
		} else {
			entry.Rank = ahead + 1
			entry.IsCurrentUser = true
			entries = append(entries, entry)
		}
	}

	result.Entries = entries
	result.Total = total
	return result, nil
}
