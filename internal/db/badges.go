package gamify

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	model "github.com/glkeru/gamify/internal/models"
	"go.uber.org/zap"
)

// Выданные бейджи пользователя
func (p *StorageDB) HeldBadges(ctx context.Context, user string) (types []string, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, "SELECT badgetype FROM badges WHERE userid = $1", user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var badgeType string
		err = rows.Scan(&badgeType)
		if err != nil {
			return nil, err
		}
		types = append(types, badgeType)
	}
	return types, nil
}

// Создание бейджа
// уникальный индекс (userid, badgetype) закрывает гонку двух параллельных проверок:
// повторная вставка отбрасывается, created = false
func (p *StorageDB) AwardCreate(ctx context.Context, award model.AwardedBadge) (created bool, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	sql, args, err := sq.Insert("badges").
		Columns("id", "userid", "badgetype", "earneddate").
		Values(award.UUID, award.User, award.BadgeType, award.EarnedDate).
		Suffix("ON CONFLICT (userid, badgetype) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return false, err
	}

	tag, err := conn.Exec(ctx, sql, args...)
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Бейджи пользователя
func (p *StorageDB) GetUserBadges(ctx context.Context, user string) (badges []model.AwardedBadge, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		"SELECT id, userid, badgetype, earneddate FROM badges WHERE userid = $1 ORDER BY earneddate", user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badge model.AwardedBadge
	for rows.Next() {
		err = rows.Scan(&badge.UUID, &badge.User, &badge.BadgeType, &badge.EarnedDate)
		if err != nil {
			return nil, err
		}
		badges = append(badges, badge)
	}
	return badges, nil
}
