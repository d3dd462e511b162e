package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

const whiteboardCollection = "whiteboards"

// WhiteboardRepository is the MongoDB-backed prep board store. Writes go
// to the most recently updated document, matching the latest-wins board
// semantics.
type WhiteboardRepository struct {
	coll *mongo.Collection
}

func NewWhiteboardRepository(db *mongo.Database) *WhiteboardRepository {
	return &WhiteboardRepository{coll: db.Collection(whiteboardCollection)}
}

func (r *WhiteboardRepository) Latest(ctx context.Context) (*domain.Whiteboard, error) {
	var board domain.Whiteboard
	err := r.coll.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})).Decode(&board)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find whiteboard: %w", err)
	}
	return &board, nil
}

func (r *WhiteboardRepository) Upsert(ctx context.Context, board *domain.Whiteboard) (*domain.Whiteboard, error) {
	existing, err := r.Latest(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if existing == nil {
		doc := *board
		doc.ID = primitive.NewObjectID().Hex()
		doc.CreatedAt = now
		doc.UpdatedAt = now
		if _, err := r.coll.InsertOne(ctx, doc); err != nil {
			return nil, fmt.Errorf("insert whiteboard: %w", err)
		}
		return &doc, nil
	}

	existing.TodayPrep = board.TodayPrep
	existing.TomorrowPrep = board.TomorrowPrep
	existing.UpdatedAt = now
	_, err = r.coll.UpdateByID(ctx, existing.ID, bson.M{"$set": bson.M{
		"today_prep":    existing.TodayPrep,
		"tomorrow_prep": existing.TomorrowPrep,
		"updated_at":    existing.UpdatedAt,
	}})
	if err != nil {
		return nil, fmt.Errorf("update whiteboard: %w", err)
	}
	return existing, nil
}
