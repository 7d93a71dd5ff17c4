package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var db *mongo.Database

// ConnectDB establishes the MongoDB connection used by all handlers.
func ConnectDB(cfg *Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	db = client.Database(cfg.Mongo.Database)
	zap.L().Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))
	return nil
}

// GetCollection returns a handle to the named collection.
func GetCollection(name string) *mongo.Collection {
	return db.Collection(name)
}

// EnsureIndexes creates the indexes the query paths rely on: the unique
// email on users, the weighted text index used for keyword search, the
// filter/sort support indexes, and the compound unique (buyer, property)
// key that rejects duplicate favorites.
func EnsureIndexes(ctx context.Context) error {
	_, err := GetCollection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = GetCollection("properties").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "location.city", Value: "text"},
				{Key: "location.locality", Value: "text"},
			},
			Options: options.Index().SetWeights(bson.D{
				{Key: "title", Value: 10},
				{Key: "location.locality", Value: 8},
				{Key: "location.city", Value: 5},
				{Key: "description", Value: 2},
			}),
		},
		{
			Keys: bson.D{
				{Key: "location.city", Value: 1},
				{Key: "location.locality", Value: 1},
				{Key: "status", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "price", Value: 1},
				{Key: "isPremium", Value: -1},
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = GetCollection("favorites").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "buyer", Value: 1},
			{Key: "property", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
