package gamify

import (
	"context"
	"fmt"
	"os"
	"time"

	model "github.com/glkeru/gamify/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Каталог бейджей в Mongo - правила это данные, новые тиры и категории
// добавляются записью в коллекцию, без изменения кода

type CatalogDB struct {
	mgo  *mongo.Client
	coll *mongo.Collection
}

func NewCatalogDB() (*CatalogDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("GAMIFY_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env GAMIFY_MONGO is not set")
	}

	options := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database("gamifyDB")
	coll := db.Collection("badgecatalog")

	return &CatalogDB{client, coll}, nil
}

func (c *CatalogDB) GetCatalog(ctx context.Context) ([]model.BadgeCatalogEntry, error) {
	var catalog []model.BadgeCatalogEntry
	result, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	for result.Next(ctx) {
		var entry model.BadgeCatalogEntry
		err := result.Decode(&entry)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, entry)
	}
	return catalog, nil
}

// Создание/обновление правила, ключ - badgetype
func (c *CatalogDB) SaveEntry(ctx context.Context, entry model.BadgeCatalogEntry) error {
	if entry.BadgeType == "" {
		return fmt.Errorf("badgetype is required: %w", model.ErrValidation)
	}
	filter := bson.M{"badgetype": entry.BadgeType}
	opts := options.Replace().SetUpsert(true)
	_, err := c.coll.ReplaceOne(ctx, filter, entry, opts)
	if err != nil {
		return err
	}
	return nil
}
