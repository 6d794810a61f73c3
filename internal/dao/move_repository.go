package dao

import (
	"context"
	"time"

	"github.com/gmkornilov/chess-board-backend/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const requestTimeout = time.Second

// MoveRecord is one accepted move in a session's journal.
type MoveRecord struct {
	Session  string             `bson:"session" json:"session"`
	Ply      int                `bson:"ply" json:"ply"`
	Notation string             `bson:"notation" json:"notation"`
	From     string             `bson:"from" json:"from"`
	To       string             `bson:"to" json:"to"`
	Piece    string             `bson:"piece" json:"piece"`
	Captured string             `bson:"captured,omitempty" json:"captured,omitempty"`
	PlayedAt primitive.DateTime `bson:"played_at" json:"played_at"`
}

type MoveRepository interface {
	InsertMove(ctx context.Context, move MoveRecord) error

	GetSessionMoves(ctx context.Context, session string) ([]MoveRecord, error)

	DeleteSessionMoves(ctx context.Context, session string) error
}

type moveRepository struct {
	dbClient *db.MoveDbClient
}

func NewMoveRepository(dbClient *db.MoveDbClient) MoveRepository {
	return &moveRepository{dbClient}
}

func (m *moveRepository) InsertMove(ctx context.Context, move MoveRecord) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, err := m.dbClient.MoveCollection.InsertOne(ctx, move)
	return err
}

func (m *moveRepository) GetSessionMoves(ctx context.Context, session string) ([]MoveRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	opts := options.Find()
	opts.SetSort(bson.D{{Key: "ply", Value: 1}})

	cur, err := m.dbClient.MoveCollection.Find(ctx, bson.D{{Key: "session", Value: session}}, opts)
	if err != nil {
		return nil, err
	}

	moves := make([]MoveRecord, 0)
	if err = cur.All(ctx, &moves); err != nil {
		return nil, err
	}
	return moves, nil
}

func (m *moveRepository) DeleteSessionMoves(ctx context.Context, session string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, err := m.dbClient.MoveCollection.DeleteMany(ctx, bson.D{{Key: "session", Value: session}})
	return err
}
