// Job - обработка чекинов
// Опрос Kafka -> начисление баллов за посещение -> проверка бейджей
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	db "github.com/glkeru/gamify/internal/db"
	kafka "github.com/glkeru/gamify/internal/external/kafka"
	interf "github.com/glkeru/gamify/internal/interfaces"
	services "github.com/glkeru/gamify/internal/services"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// kafka
	reader, err := kafka.GetNewReader("checkins")
	if err != nil {
		panic(err)
	}
	defer reader.CloseReader()

	// database
	storage, err := db.NewStorageDB(logger)
	if err != nil {
		panic(err)
	}

	// cache
	var cache interf.CacheStorage
	cache, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		cache = nil
	}

	// каталог бейджей
	var catalogdb interf.CatalogStorage
	catalogdb, err = db.NewCatalogDB()
	if err != nil {
		logger.Error(err.Error())
		catalogdb = nil
	}

	// services
	badges, err := services.NewBadgeService(catalogdb, storage, storage, storage, logger)
	if err != nil {
		panic(err)
	}
	serv := services.NewPointsService(logger, storage, cache, badges)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// TODO: default
	var semcount int
	semenv := os.Getenv("GAMIFY_CHECKINS_COUNT")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, semcount)

loop:
	for {
		select {
		case <-interrupt:
			cancel()
			break loop
		case <-ctx.Done():
			break loop
		default:

			checkin, err := reader.GetNewMessage(ctx)
			if err != nil {
				logger.Error(err.Error())
				return
			}

			semaphore <- struct{}{}
			wg.Add(1)
			go func(checkin string) {
				defer wg.Done()
				defer func() { <-semaphore }()
				err = serv.ProcessCheckin(ctx, checkin)
				if err != nil {
					logger.Error(err.Error())
					return
				}
			}(checkin)
		}
	}
	wg.Wait()
}
