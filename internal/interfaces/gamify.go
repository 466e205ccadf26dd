package gamify

import (
	"context"
	"time"

	model "github.com/glkeru/gamify/internal/models"
)

//go:generate mockgen -destination=./../services/mock_gamify_test.go -package=gamify . LedgerStorage,AttendanceStorage,BadgeStorage,CatalogStorage,CacheStorage

type LedgerStorage interface {
	TnxCreate(ctx context.Context, tnx model.PointsTransaction) (model.PointsTransaction, error)
	GetBalance(ctx context.Context, user string) (points int, err error)
	GetTnx(ctx context.Context, user string, from time.Time, to time.Time) (tnxs []model.PointsTransaction, err error)
	TopEarners(ctx context.Context, since time.Time, limit int) ([]model.LeaderboardEntry, error)
	UserWindow(ctx context.Context, user string, since time.Time) (entry model.LeaderboardEntry, ahead int, err error)
	CountEarners(ctx context.Context, since time.Time) (int, error)
}

type AttendanceStorage interface {
	AttendedCount(ctx context.Context, user string) (int, error)
	AttendedCountByType(ctx context.Context, user string) (map[string]int, error)
	AttendedStartTimes(ctx context.Context, user string) ([]time.Time, error)
}

type BadgeStorage interface {
	HeldBadges(ctx context.Context, user string) ([]string, error)
	AwardCreate(ctx context.Context, award model.AwardedBadge) (created bool, err error)
	GetUserBadges(ctx context.Context, user string) ([]model.AwardedBadge, error)
}

type CatalogStorage interface {
	GetCatalog(ctx context.Context) ([]model.BadgeCatalogEntry, error)
	SaveEntry(ctx context.Context, entry model.BadgeCatalogEntry) error
}

type CacheStorage interface {
	GetBalance(ctx context.Context, user string) (points int, err error)
	SetBalance(ctx context.Context, user string, points int) (err error)
	InvalidateBalance(ctx context.Context, user string) error
}
