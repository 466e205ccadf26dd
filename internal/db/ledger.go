package gamify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	model "github.com/glkeru/gamify/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type StorageDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewStorageDB(logger *zap.Logger) (db *StorageDB, err error) {
	// config
	purl := os.Getenv("GAMIFY_DB")
	if purl == "" {
		return nil, fmt.Errorf("env GAMIFY_DB is not set")
	}
	port := os.Getenv("GAMIFY_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env GAMIFY_DB_PORT is not set")
	}
	user := os.Getenv("GAMIFY_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env GAMIFY_DB_USER is not set")
	}
	password := os.Getenv("GAMIFY_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env GAMIFY_DB_PASSWORD is not set")
	}
	database := os.Getenv("GAMIFY_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env GAMIFY_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	return &StorageDB{pool, logger}, err
}

// Проверка пользователя - существует и активен
func (p *StorageDB) userCheck(ctx context.Context, conn *pgxpool.Conn, user string) error {
	var active bool
	row := conn.QueryRow(ctx, "SELECT active FROM users WHERE id = $1", user)
	err := row.Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user %s: %w", user, model.ErrNotFound)
		}
		return err
	}
	if !active {
		return fmt.Errorf("user %s: %w", user, model.ErrNotFound)
	}
	return nil
}

// Создание транзакции начисления/списания
// строка неизменяемая, баланс нигде не хранится - только сумма транзакций
func (p *StorageDB) TnxCreate(ctx context.Context, tnx model.PointsTransaction) (model.PointsTransaction, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return tnx, err
	}
	defer conn.Release()

	// пользователь должен существовать до записи в журнал
	err = p.userCheck(ctx, conn, tnx.User)
	if err != nil {
		return tnx, err
	}

	tnx.UUID = uuid.New()
	if tnx.CreatedAt.IsZero() {
		tnx.CreatedAt = time.Now().UTC()
	}

	sql, args, err := sq.Insert("tnx").
		Columns("id", "userid", "points", "typetnx", "description", "eventid", "createdat").
		Values(tnx.UUID, tnx.User, tnx.Points, tnx.TypeTnx, tnx.Description, tnx.EventID, tnx.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return tnx, err
	}

	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return tnx, err
	}
	return tnx, nil
}

// Баланс - сумма транзакций пользователя
func (p *StorageDB) GetBalance(ctx context.Context, user string) (points int, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	err = p.userCheck(ctx, conn, user)
	if err != nil {
		return 0, err
	}

	row := conn.QueryRow(ctx, "SELECT COALESCE(SUM(points), 0) FROM tnx WHERE userid = $1", user)
	err = row.Scan(&points)
	if err != nil {
		return 0, err
	}
	return points, nil
}

// Получить транзакции за период
func (p *StorageDB) GetTnx(ctx context.Context, user string, from time.Time, to time.Time) (tnxs []model.PointsTransaction, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	err = p.userCheck(ctx, conn, user)
	if err != nil {
		return nil, err
	}

	sql, args, err := sq.Select("id", "userid", "points", "typetnx", "description", "eventid", "createdat").
		From("tnx").
		Where(sq.Eq{"userid": user}).
		Where(sq.GtOrEq{"createdat": from}).
		Where(sq.LtOrEq{"createdat": to}).
		OrderBy("createdat").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tnx model.PointsTransaction
	var eventId pgtype.Text
	for rows.Next() {
		err = rows.Scan(&tnx.UUID, &tnx.User, &tnx.Points, &tnx.TypeTnx, &tnx.Description, &eventId, &tnx.CreatedAt)
		if err != nil {
			return nil, err
		}
		tnx.EventID = eventId.String
		tnxs = append(tnxs, tnx)
	}
	return tnxs, nil
}

// Топ пользователей по баллам за период
// детерминированный порядок: баллы по убыванию, при равенстве userid по возрастанию
func (p *StorageDB) TopEarners(ctx context.Context, since time.Time, limit int) ([]model.LeaderboardEntry, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("t.userid", "u.displayname", "SUM(t.points) AS points").
		From("tnx t").
		Join("users u ON u.id = t.userid").
		Where(sq.Eq{"u.active": true}).
		Where(sq.GtOrEq{"t.createdat": since}).
		GroupBy("t.userid", "u.displayname").
		OrderBy("points DESC", "t.userid ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var entry model.LeaderboardEntry
		err = rows.Scan(&entry.User, &entry.DisplayName, &entry.Points)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Позиция пользователя за период и кол-во пользователей строго впереди
func (p *StorageDB) UserWindow(ctx context.Context, user string, since time.Time) (entry model.LeaderboardEntry, ahead int, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return entry, 0, err
	}
	defer conn.Release()

	entry.User = user
	row := conn.QueryRow(ctx, "SELECT displayname FROM users WHERE id = $1 AND active = true", user)
	err = row.Scan(&entry.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entry, 0, fmt.Errorf("user %s: %w", user, model.ErrNotFound)
		}
		return entry, 0, err
	}

	row = conn.QueryRow(ctx,
		"SELECT COALESCE(SUM(points), 0) FROM tnx WHERE userid = $1 AND createdat >= $2", user, since)
	err = row.Scan(&entry.Points)
	if err != nil {
		return entry, 0, err
	}

	row = conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM (
			SELECT t.userid FROM tnx t
			JOIN users u ON u.id = t.userid
			WHERE u.active = true AND t.createdat >= $1
			GROUP BY t.userid
			HAVING SUM(t.points) > $2
		) ranked`, since, entry.Points)
	err = row.Scan(&ahead)
	if err != nil {
		return entry, 0, err
	}
	return entry, ahead, nil
}

// Кол-во пользователей с транзакциями за период
func (p *StorageDB) CountEarners(ctx context.Context, since time.Time) (count int, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		`SELECT COUNT(DISTINCT t.userid) FROM tnx t
		JOIN users u ON u.id = t.userid
		WHERE u.active = true AND t.createdat >= $1`, since)
	err = row.Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
