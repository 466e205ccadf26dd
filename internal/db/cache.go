package gamify

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
}

func NewCacheService() (serv *CacheService, err error) {

	// config
	addr := os.Getenv("GAMIFY_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env GAMIFY_CACHE_URL is not set")
	}
	user := os.Getenv("GAMIFY_CACHE_USER")
	pwd := os.Getenv("GAMIFY_CACHE_PWD")

	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db}, nil
}

// кэш живет недолго и сбрасывается на каждой записи в журнал,
// расхождение с суммой транзакций не допускается
func (c *CacheService) GetBalance(ctx context.Context, user string) (points int, err error) {
	val, err := c.client.Get(ctx, "balance:"+user).Result()
	if err == redis.Nil {
		return 0, fmt.Errorf("not found")
	} else if err != nil {
		return 0, err
	}

	points, err = strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return points, nil
}

func (c *CacheService) SetBalance(ctx context.Context, user string, points int) (err error) {
	err = c.client.Set(ctx, "balance:"+user, points, 5*time.Minute).Err()
	if err != nil {
		return err
	}
	return nil
}

func (c *CacheService) InvalidateBalance(ctx context.Context, user string) error {
	err := c.client.Del(ctx, "balance:"+user).Err()
	if err != nil {
		return err
	}
	return nil
}
