package db

import (
	"context"
	"fmt"
	"time"

	"github.com/gmkornilov/chess-board-backend/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 5 * time.Second

type MoveDbClient struct {
	client         *mongo.Client
	MoveCollection *mongo.Collection
}

func (r *MoveDbClient) Close() error {
	ctx, cancel := context.WithTimeout(context.TODO(), connectTimeout)
	defer cancel()
	return r.client.Disconnect(ctx)
}

func NewDbClient(cfg config.DatabaseConfiguration) (*MoveDbClient, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("mongo address is not configured")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), connectTimeout)
	defer cancel()

	clientOpts := options.Client().ApplyURI(cfg.Address)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, err
	}
	dbClient := &MoveDbClient{client: client}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	dbClient.MoveCollection = client.Database(cfg.DatabaseName).Collection(cfg.Collection)
	if dbClient.MoveCollection == nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("can't resolve collection %s", cfg.DatabaseName+"."+cfg.Collection)
	}

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "session", Value: 1}, {Key: "ply", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err = dbClient.MoveCollection.Indexes().CreateOne(ctx, index); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return dbClient, nil
}
