package gamify

import (
	"time"

	"github.com/google/uuid"
)

// Типы транзакций
const (
	EARNED   = "earned"
	REDEEMED = "redeemed"
	EXPIRED  = "expired"
)

// Статусы регистрации на событие
const (
	REGISTERED = "registered"
	CHECKEDIN  = "checked_in"
	ATTENDED   = "attended"
	CANCELLED  = "cancelled"
)

// Периоды лидерборда
const (
	ALLTIME = "all_time"
	WEEKLY  = "weekly"
	MONTHLY = "monthly"
)

// Транзакция баллов - append-only, не изменяется и не удаляется
type PointsTransaction struct {
	UUID        uuid.UUID `json:"id"`
	User        string    `json:"userId"`
	Points      int       `json:"points"` // знаковая дельта: начисление плюс, списание минус
	TypeTnx     string    `json:"transactionType"`
	Description string    `json:"description"`
	EventID     string    `json:"eventId,omitempty"`
	CreatedAt   time.Time `json:"timestamp"`
}

// Посещение события (данные регистраций, только чтение)
type AttendanceRecord struct {
	User      string    `json:"userId"`
	EventID   string    `json:"eventId"`
	Status    string    `json:"status"`
	EventType string    `json:"eventType"`
	StartTime time.Time `json:"startTime"`
}

// Выданный бейдж
// пара (User, BadgeType) уникальна, тиры одной категории накапливаются
type AwardedBadge struct {
	UUID       uuid.UUID `json:"id"`
	User       string    `json:"userId"`
	BadgeType  string    `json:"badgeType"`
	EarnedDate time.Time `json:"earnedDate"`
}

// Бейдж пользователя с данными каталога
type UserBadge struct {
	AwardedBadge
	Category    string `json:"category"`
	EventType   string `json:"eventType,omitempty"`
	Tier        string `json:"tier"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Позиция лидерборда
type LeaderboardEntry struct {
	User          string `json:"userId"`
	DisplayName   string `json:"displayName"`
	Points        int    `json:"points"`
	Rank          int    `json:"rank"`
	IsCurrentUser bool   `json:"isCurrentUser,omitempty"`
}

// Результат лидерборда - единый формат для всех периодов
type LeaderboardResult struct {
	Period  string             `json:"period"`
	Entries []LeaderboardEntry `json:"items"`
	Total   int                `json:"total"`
}
