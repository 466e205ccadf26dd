package gamify

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	interf "github.com/glkeru/gamify/internal/interfaces"
	model "github.com/glkeru/gamify/internal/models"
	service "github.com/glkeru/gamify/internal/services"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type GamifyHandler struct {
	router    *mux.Router
	points    *service.PointsService
	badges    *service.BadgeService
	board     *service.LeaderboardService
	catalogdb interf.CatalogStorage
	logger    *zap.Logger
}

func NewHandler(points *service.PointsService, badges *service.BadgeService, board *service.LeaderboardService, catalogdb interf.CatalogStorage, logger *zap.Logger) *GamifyHandler {
	router := mux.NewRouter()
	handler := &GamifyHandler{router, points, badges, board, catalogdb, logger}
	router.Use(MiddlewareLog())
	router.HandleFunc("/points", handler.AwardPointsHandler).Methods(http.MethodPost)
	router.HandleFunc("/redeem", handler.RedeemHandler).Methods(http.MethodPost)
	router.HandleFunc("/balance/{user}", handler.BalanceHandler).Methods(http.MethodGet)
	router.HandleFunc("/transactions/{user}", handler.TnxHandler).Methods(http.MethodGet)
	router.HandleFunc("/streak/{user}", handler.StreakHandler).Methods(http.MethodGet)
	router.HandleFunc("/badges/{user}", handler.BadgesHandler).Methods(http.MethodGet)
	router.HandleFunc("/badges/check/{user}", handler.CheckBadgesHandler).Methods(http.MethodPost)
	router.HandleFunc("/leaderboard", handler.LeaderboardHandler).Methods(http.MethodGet)
	router.HandleFunc("/catalog", handler.CatalogHandler).Methods(http.MethodGet)
	router.HandleFunc("/catalog", handler.SaveCatalogHandler).Methods(http.MethodPost)

	return handler
}

func (g *GamifyHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	g.router.ServeHTTP(w, req)
}

func (g *GamifyHandler) Log(msg string, service string, err error) {
	g.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// код ответа по виду ошибки
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (g *GamifyHandler) respond(w http.ResponseWriter, service string, data any) {
	j, err := json.Marshal(data)
	if err != nil {
		g.Log("Marshal", service, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(j)
}

type AwardPointsRequest struct {
	UserId      string `json:"userId"`
	Points      int    `json:"points"`
	TypeTnx     string `json:"transactionType"`
	Description string `json:"description"`
	EventId     string `json:"eventId"`
}

// Начисление баллов
func (g *GamifyHandler) AwardPointsHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		g.Log("Get request body", "AwardPointsHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	award := &AwardPointsRequest{}
	err = json.Unmarshal(body, award)
	if err != nil {
		g.Log("Unmarshal", "AwardPointsHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	if award.UserId == "" || award.Points == 0 {
		http.Error(w, "userId and points are required", http.StatusBadRequest)
		return
	}
	switch award.TypeTnx {
	case model.EARNED, model.REDEEMED, model.EXPIRED:
	default:
		http.Error(w, "unknown transactionType", http.StatusBadRequest)
		return
	}

	tnx, err := g.points.AwardPoints(req.Context(), award.UserId, award.Points, award.TypeTnx, award.Description, award.EventId)
	if err != nil {
		g.Log("AwardPoints", "AwardPointsHandler", err)
		httpError(w, err)
		return
	}
	g.respond(w, "AwardPointsHandler", tnx)
}

type RedeemRequest struct {
	UserId   string `json:"userId"`
	Points   int    `json:"points"`
	RedeemId string `json:"redeemId"`
}

// Списание баллов
func (g *GamifyHandler) RedeemHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		g.Log("Get request body", "RedeemHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	redeem := &RedeemRequest{}
	err = json.Unmarshal(body, redeem)
	if err != nil {
		g.Log("Unmarshal", "RedeemHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}

	err = g.points.Redeem(req.Context(), redeem.UserId, redeem.Points, redeem.RedeemId)
	if err != nil {
		g.Log("Redeem", "RedeemHandler", err)
		httpError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type BalanceResponse struct {
	User   string `json:"userId"`
	Points int    `json:"points"`
}

// Баланс
func (g *GamifyHandler) BalanceHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	user := vars["user"]

	points, err := g.points.GetBalance(req.Context(), user)
	if err != nil {
		g.Log("GetBalance", "BalanceHandler", err)
		httpError(w, err)
		return
	}
	g.respond(w, "BalanceHandler", &BalanceResponse{user, points})
}

// История транзакций
func (g *GamifyHandler) TnxHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	user := vars["user"]

	from, err := time.Parse("2006-01-02 15:04:05", req.URL.Query().Get("from")+" 00:00:00")
	if err != nil {
		http.Error(w, "from date is not correct", http.StatusBadRequest)
		return
	}
	to, err := time.Parse("2006-01-02 15:04:05", req.URL.Query().Get("to")+" 23:59:59")
	if err != nil {
		http.Error(w, "to date is not correct", http.StatusBadRequest)
		return
	}

	tnxs, err := g.points.GetTnx(req.Context(), user, from, to)
	if err != nil {
		g.Log("GetTnx", "TnxHandler", err)
		httpError(w, err)
		return
	}
	g.respond(w, "TnxHandler", tnxs)
}

type StreakResponse struct {
	User  string `json:"userId"`
	Weeks int    `json:"streakWeeks"`
}

// Серия недель
func (g *GamifyHandler) StreakHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	user := vars["user"]

	weeks, err := g.badges.GetStreakWeeks(req.Context(), user)
	if err != nil {
		g.Log("GetStreakWeeks", "StreakHandler", err)
		httpError(w, err)
		return
	}
	g.respond(w, "StreakHandler", &StreakResponse{user, weeks})
}

// Бейджи пользователя
func (g *GamifyHandler) BadgesHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	user := vars["user"]

	badges, err := g.badges.GetUserBadges(req.Context(), user)
	if err != nil {
		g.Log("GetUserBadges", "BadgesHandler", err)
		httpError(w, err)
		return
	}
	g.respond(w, "BadgesHandler", badges)
}

// Проверка порогов и выдача новых бейджей
func (g *GamifyHandler) CheckBadgesHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	user := vars["user"]

	awarded, err := g.badges.CheckAndAwardBadges(req.Context(), user)
	if err != nil {
		g.Log("CheckAndAwardBadges", "CheckBadgesHandler", err)
		httpError(w, err)
		return
	}
	if awarded == nil {
		awarded = []model.AwardedBadge{}
	}
	g.respond(w, "CheckBadgesHandler", awarded)
}

// Лидерборд за период
func (g *GamifyHandler) LeaderboardHandler(w http.ResponseWriter, req *http.Request) {
	period := req.URL.Query().Get("period")
	if period == "" {
		period = model.ALLTIME
	}
	limit := 0
	if l := req.URL.Query().Get("limit"); l != "" {
		var err error
		limit, err = strconv.Atoi(l)
		if err != nil {
			http.Error(w, "limit is not correct", http.StatusBadRequest)
			return
		}
	}
	user := req.URL.Query().Get("user")

	result, err := g.board.GetLeaderboard(req.Context(), period, limit, user)
	if err != nil {
		g.Log("GetLeaderboard", "LeaderboardHandler", err)
		httpError(w, err)
		return
	}
	g.respond(w, "LeaderboardHandler", result)
}

// Каталог бейджей
func (g *GamifyHandler) CatalogHandler(w http.ResponseWriter, req *http.Request) {
	g.respond(w, "CatalogHandler", g.badges.Catalog)
}

// Создать/обновить правило каталога
// применяется после перезапуска - каталог читается при старте
func (g *GamifyHandler) SaveCatalogHandler(w http.ResponseWriter, req *http.Request) {
	if g.catalogdb == nil {
		http.Error(w, "Catalog storage is not available", http.StatusServiceUnavailable)
		return
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		g.Log("Get request body", "SaveCatalogHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	entry := &model.BadgeCatalogEntry{}
	err = json.Unmarshal(body, entry)
	if err != nil {
		g.Log("Unmarshal", "SaveCatalogHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = g.catalogdb.SaveEntry(req.Context(), *entry)
	if err != nil {
		g.Log("SaveEntry", "SaveCatalogHandler", err)
		httpError(w, err)
		return
	}
}
