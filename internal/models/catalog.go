package gamify

// Категории бейджей
const (
	CATATTENDANCE = "attendance"
	CATPOINTS     = "points"
	CATSTREAK     = "streak"
	CATEVENTTYPE  = "event_type"
)

// Тиры
const (
	BRONZE = "bronze"
	SILVER = "silver"
	GOLD   = "gold"
)

// Правило каталога бейджей
// EventType заполняется только для категории event_type
type BadgeCatalogEntry struct {
	BadgeType   string `bson:"badgetype" json:"badgeType"`
	Category    string `bson:"category" json:"category"`
	EventType   string `bson:"eventtype" json:"eventType,omitempty"`
	Tier        string `bson:"tier" json:"tier"`
	Threshold   int    `bson:"threshold" json:"threshold"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

// Каталог по умолчанию - используется, если в базе каталог не настроен
func DefaultCatalog() []BadgeCatalogEntry {
	return []BadgeCatalogEntry{
		// посещения
		{BadgeType: "event_master_bronze", Category: CATATTENDANCE, Tier: BRONZE, Threshold: 5,
			Name: "Event Master Bronze", Description: "Attend 5 events"},
		{BadgeType: "event_master_silver", Category: CATATTENDANCE, Tier: SILVER, Threshold: 15,
			Name: "Event Master Silver", Description: "Attend 15 events"},
		{BadgeType: "event_master_gold", Category: CATATTENDANCE, Tier: GOLD, Threshold: 30,
			Name: "Event Master Gold", Description: "Attend 30 events"},
		// баланс баллов
		{BadgeType: "points_collector_bronze", Category: CATPOINTS, Tier: BRONZE, Threshold: 500,
			Name: "Points Collector Bronze", Description: "Collect 500 points"},
		{BadgeType: "points_collector_silver", Category: CATPOINTS, Tier: SILVER, Threshold: 2000,
			Name: "Points Collector Silver", Description: "Collect 2000 points"},
		{BadgeType: "points_collector_gold", Category: CATPOINTS, Tier: GOLD, Threshold: 5000,
			Name: "Points Collector Gold", Description: "Collect 5000 points"},
		// серия недель
		{BadgeType: "streak_champion_bronze", Category: CATSTREAK, Tier: BRONZE, Threshold: 3,
			Name: "Streak Champion Bronze", Description: "Attend events 3 weeks in a row"},
		{BadgeType: "streak_champion_silver", Category: CATSTREAK, Tier: SILVER, Threshold: 8,
			Name: "Streak Champion Silver", Description: "Attend events 8 weeks in a row"},
		{BadgeType: "streak_champion_gold", Category: CATSTREAK, Tier: GOLD, Threshold: 12,
			Name: "Streak Champion Gold", Description: "Attend events 12 weeks in a row"},
		// посещения по типам событий
		{BadgeType: "trivia_expert_bronze", Category: CATEVENTTYPE, EventType: "trivia", Tier: BRONZE, Threshold: 3,
			Name: "Trivia Expert Bronze", Description: "Attend 3 trivia events"},
		{BadgeType: "trivia_expert_silver", Category: CATEVENTTYPE, EventType: "trivia", Tier: SILVER, Threshold: 8,
			Name: "Trivia Expert Silver", Description: "Attend 8 trivia events"},
		{BadgeType: "trivia_expert_gold", Category: CATEVENTTYPE, EventType: "trivia", Tier: GOLD, Threshold: 15,
			Name: "Trivia Expert Gold", Description: "Attend 15 trivia events"},
		{BadgeType: "game_night_hero_bronze", Category: CATEVENTTYPE, EventType: "game_night", Tier: BRONZE, Threshold: 3,
			Name: "Game Night Hero Bronze", Description: "Attend 3 game nights"},
		{BadgeType: "game_night_hero_silver", Category: CATEVENTTYPE, EventType: "game_night", Tier: SILVER, Threshold: 8,
			Name: "Game Night Hero Silver", Description: "Attend 8 game nights"},
		{BadgeType: "game_night_hero_gold", Category: CATEVENTTYPE, EventType: "game_night", Tier: GOLD, Threshold: 15,
			Name: "Game Night Hero Gold", Description: "Attend 15 game nights"},
	}
}
