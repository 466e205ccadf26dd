package gamify

import (
	"context"
	"fmt"
	"time"

	interf "github.com/glkeru/gamify/internal/interfaces"
	model "github.com/glkeru/gamify/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type BadgeService struct {
	Catalog    []model.BadgeCatalogEntry
	ledger     interf.LedgerStorage
	attendance interf.AttendanceStorage
	db         interf.BadgeStorage
	logger     *zap.Logger
}

// Каталог загружается при старте, при недоступном хранилище или пустой
// коллекции используются правила по умолчанию
func NewBadgeService(catalogdb interf.CatalogStorage, ledger interf.LedgerStorage, attendance interf.AttendanceStorage, db interf.BadgeStorage, logger *zap.Logger) (service *BadgeService, err error) {
	var catalog []model.BadgeCatalogEntry
	if catalogdb != nil {
		catalog, err = catalogdb.GetCatalog(context.Background())
		if err != nil {
			return nil, err
		}
	}
	if len(catalog) == 0 {
		catalog = model.DefaultCatalog()
	}
	return &BadgeService{catalog, ledger, attendance, db, logger}, nil
}

// log
func (s *BadgeService) Log(err error) {
	s.logger.Error("Badge Engine",
		zap.String("service", "CheckAndAwardBadges"),
		zap.Error(err),
	)
}

// метрики пользователя для сравнения с порогами каталога
type badgeMetrics struct {
	attendance int
	balance    int
	streak     int
	byType     map[string]int
}

func (s *BadgeService) metrics(ctx context.Context, user string) (m badgeMetrics, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		m.attendance, err = s.attendance.AttendedCount(gctx, user)
		return err
	})
	g.Go(func() (err error) {
		m.balance, err = s.ledger.GetBalance(gctx, user)
		return err
	})
	g.Go(func() (err error) {
		times, err := s.attendance.AttendedStartTimes(gctx, user)
		if err != nil {
			return err
		}
		m.streak = StreakWeeks(times)
		return nil
	})
	g.Go(func() (err error) {
		m.byType, err = s.attendance.AttendedCountByType(gctx, user)
		return err
	})
	err = g.Wait()
	return m, err
}

// значение метрики для правила каталога
func (m badgeMetrics) metric(entry model.BadgeCatalogEntry) (int, bool) {
	switch entry.Category {
	case model.CATATTENDANCE:
		return m.attendance, true
	case model.CATPOINTS:
		return m.balance, true
	case model.CATSTREAK:
		return m.streak, true
	case model.CATEVENTTYPE:
		return m.byType[entry.EventType], true
	}
	return 0, false
}

// Проверка порогов и выдача новых бейджей
// тиры независимы: один вызов может выдать бронзу, серебро и золото сразу;
// повторный вызов без новой активности возвращает пустой список
func (s *BadgeService) CheckAndAwardBadges(ctx context.Context, user string) (awarded []model.AwardedBadge, err error) {
	m, err := s.metrics(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("badge metrics: %w", err)
	}

	held, err := s.db.HeldBadges(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("held badges: %w", err)
	}
	heldset := make(map[string]struct{}, len(held))
	for _, h := range held {
		heldset[h] = struct{}{}
	}

	for _, entry := range s.Catalog {
		if _, ok := heldset[entry.BadgeType]; ok {
			continue
		}
		value, ok := m.metric(entry)
		if !ok {
			s.logger.Warn("unknown badge category",
				zap.String("badgetype", entry.BadgeType),
				zap.String("category", entry.Category),
			)
			continue
		}
		if value < entry.Threshold {
			continue
		}
		award := model.AwardedBadge{
			UUID:       uuid.New(),
			User:       user,
			BadgeType:  entry.BadgeType,
			EarnedDate: time.Now().UTC(),
		}
		created, err := s.db.AwardCreate(ctx, award)
		if err != nil {
			return awarded, fmt.Errorf("award %s: %w", entry.BadgeType, err)
		}
		// параллельная проверка могла успеть вставить первой - не дублируем
		if created {
			awarded = append(awarded, award)
		}
	}
	return awarded, nil
}

// Бейджи пользователя с данными каталога
func (s *BadgeService) GetUserBadges(ctx context.Context, user string) (badges []model.UserBadge, err error) {
	awards, err := s.db.GetUserBadges(ctx, user)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]model.BadgeCatalogEntry, len(s.Catalog))
	for _, entry := range s.Catalog {
		catalog[entry.BadgeType] = entry
	}

	for _, award := range awards {
		badge := model.UserBadge{AwardedBadge: award}
		if entry, ok := catalog[award.BadgeType]; ok {
			badge.Category = entry.Category
			badge.EventType = entry.EventType
			badge.Tier = entry.Tier
			badge.Name = entry.Name
			badge.Description = entry.Description
		}
		badges = append(badges, badge)
	}
	return badges, nil
}

// Серия недель пользователя
func (s *BadgeService) GetStreakWeeks(ctx context.Context, user string) (int, error) {
	times, err := s.attendance.AttendedStartTimes(ctx, user)
	if err != nil {
		return 0, err
	}
	return StreakWeeks(times), nil
}
