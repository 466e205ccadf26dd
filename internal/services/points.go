package gamify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	interf "github.com/glkeru/gamify/internal/interfaces"
	model "github.com/glkeru/gamify/internal/models"
	"go.uber.org/zap"
)

type PointsService struct {
	logger *zap.Logger
	db     interf.LedgerStorage
	cache  interf.CacheStorage
	badges *BadgeService
}

func NewPointsService(logger *zap.Logger, db interf.LedgerStorage, cache interf.CacheStorage, badges *BadgeService) (service *PointsService) {
	return &PointsService{logger, db, cache, badges}
}

// Начисление/списание баллов
// запись в журнал, затем проверка бейджей по новому состоянию;
// ошибка проверки бейджей не откатывает транзакцию - журнал уже зафиксирован
func (p *PointsService) AwardPoints(ctx context.Context, user string, points int, typeTnx string, description string, eventId string) (model.PointsTransaction, error) {
	tnx := model.PointsTransaction{
		User:        user,
		Points:      points,
		TypeTnx:     typeTnx,
		Description: description,
		EventID:     eventId,
	}
	tnx, err := p.db.TnxCreate(ctx, tnx)
	if err != nil {
		return tnx, err
	}

	if p.cache != nil {
		err = p.cache.InvalidateBalance(ctx, user)
		if err != nil {
			p.logger.Error(err.Error())
		}
	}

	// бейджи
	if p.badges != nil {
		_, err = p.badges.CheckAndAwardBadges(ctx, user)
		if err != nil {
			p.badges.Log(fmt.Errorf("%w: %w", model.ErrEvaluation, err))
		}
	}
	return tnx, nil
}

// Сообщение чекина из Kafka
type CheckinStruct struct {
	UserId    string `json:"userId"`
	EventId   string `json:"eventId"`
	EventType string `json:"eventType"`
	Points    int    `json:"points"`
}

// Обработка чекина - начисление баллов за посещение
func (p *PointsService) ProcessCheckin(ctx context.Context, checkinJson string) error {
	checkin := &CheckinStruct{}
	err := json.Unmarshal([]byte(checkinJson), checkin)
	if err != nil {
		return err
	}
	if checkin.UserId == "" {
		return fmt.Errorf("invalid checkin: userId field is required: %w", model.ErrValidation)
	}
	if checkin.EventId == "" {
		return fmt.Errorf("invalid checkin: eventId field is required: %w", model.ErrValidation)
	}

	points := checkin.Points
	if points <= 0 {
		// TODO DEFAULT
		pointsenv := os.Getenv("GAMIFY_CHECKIN_POINTS")
		points, err = strconv.Atoi(pointsenv)
		if err != nil || points <= 0 {
			points = 10
		}
	}

	_, err = p.AwardPoints(ctx, checkin.UserId, points, model.EARNED,
		"Event check-in: "+checkin.EventId, checkin.EventId)
	return err
}

// Сообщение списания из RabbitMQ
type RedeemStruct struct {
	UserId   string `json:"userId"`
	Points   int    `json:"points"`
	RedeemId string `json:"redeemId"`
}

// Списание из очереди
func (p *PointsService) RedeemMessage(ctx context.Context, redeemJson string) (redeemId string, err error) {
	redeem := &RedeemStruct{}
	err = json.Unmarshal([]byte(redeemJson), redeem)
	if err != nil {
		return "", err
	}
	err = p.Redeem(ctx, redeem.UserId, redeem.Points, redeem.RedeemId)
	if err != nil {
		return redeem.RedeemId, err
	}
	return redeem.RedeemId, nil
}

// Списание баллов
// проверки на стороне вызывающего: сумма положительная, баланса хватает;
// сам журнал отрицательный баланс не запрещает
func (p *PointsService) Redeem(ctx context.Context, user string, points int, redeemId string) error {
	if points <= 0 {
		return fmt.Errorf("redeem amount must be positive: %w", model.ErrValidation)
	}
	balance, err := p.GetBalance(ctx, user)
	if err != nil {
		return err
	}
	if balance < points {
		return fmt.Errorf("not enough points: %w", model.ErrValidation)
	}
	_, err = p.AwardPoints(ctx, user, -points, model.REDEEMED, "Redeem "+redeemId, "")
	return err
}

// Баланс - сумма транзакций, кэш только ускоряет чтение
func (p *PointsService) GetBalance(ctx context.Context, user string) (points int, err error) {
	// cache
	if p.cache != nil {
		points, err = p.cache.GetBalance(ctx, user)
		if err != nil {
			// database
			points, err = p.db.GetBalance(ctx, user)
			if err != nil {
				return 0, err
			}
			_ = p.cache.SetBalance(ctx, user, points)
		}
	} else {
		points, err = p.db.GetBalance(ctx, user)
		if err != nil {
			return 0, err
		}
	}
	return
}

// транзакции
func (p *PointsService) GetTnx(ctx context.Context, user string, from time.Time, to time.Time) (tnxs []model.PointsTransaction, err error) {
	tnxs, err = p.db.GetTnx(ctx, user, from, to)
	if err != nil {
		return nil, err
	}
	return tnxs, nil
}

func (p *PointsService) Log(err error) {
	p.logger.Error(err.Error())
}
