// Job - обработка списаний баллов
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	db "github.com/glkeru/gamify/internal/db"
	rabbit "github.com/glkeru/gamify/internal/external/rabbitmq"
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

	// rabbitmq
	reader, err := rabbit.NewRabbitConsumer()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// database
	storage, err := db.NewStorageDB(logger)
	if err != nil {
		logger.Error(err.Error())
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
	semenv := os.Getenv("GAMIFY_REDEEM_COUNT")
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

	// os signals
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(semcount)
	for i := 0; i < semcount; i++ {
		go worker(ctx, serv, wg, logger, reader)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, serv *services.PointsService, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.RabbitConsumer) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
			msg, ok := <-reader.Msg
			if !ok {
				return
			}
			redeemId, err := serv.RedeemMessage(ctx, string(msg.Body))
			if err != nil {
				logger.Error(err.Error())
				if redeemId != "" {
					_ = reader.Processed(ctx, redeemId, false)
				}
				continue
			}
			err = reader.Processed(ctx, redeemId, true)
			if err != nil {
				logger.Error(err.Error())
				continue
			}
		}
	}
}
