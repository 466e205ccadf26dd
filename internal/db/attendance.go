package gamify

import (
	"context"
	"time"

	model "github.com/glkeru/gamify/internal/models"
)

// Чтение регистраций - данные событий принадлежат сервису событий,
// здесь только выборки для метрик бейджей

// Кол-во посещенных событий
func (p *StorageDB) AttendedCount(ctx context.Context, user string) (count int, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM registrations WHERE userid = $1 AND status = $2", user, model.ATTENDED)
	err = row.Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Кол-во посещений по типам событий
func (p *StorageDB) AttendedCountByType(ctx context.Context, user string) (map[string]int, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		`SELECT e.eventtype, COUNT(*) FROM registrations r
		JOIN events e ON e.id = r.eventid
		WHERE r.userid = $1 AND r.status = $2
		GROUP BY e.eventtype`, user, model.ATTENDED)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var eventType string
		var count int
		err = rows.Scan(&eventType, &count)
		if err != nil {
			return nil, err
		}
		counts[eventType] = count
	}
	return counts, nil
}

// Даты начала посещенных событий - для расчета серии недель
func (p *StorageDB) AttendedStartTimes(ctx context.Context, user string) (times []time.Time, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx,
		`SELECT e.starttime FROM registrations r
		JOIN events e ON e.id = r.eventid
		WHERE r.userid = $1 AND r.status = $2`, user, model.ATTENDED)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t time.Time
		err = rows.Scan(&t)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}
