package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/miseboard/kitchen-api/internal/core/domain"
)

const prepLogsCollection = "prep_logs"

// PrepLogRepository is the MongoDB-backed prep log store.
type PrepLogRepository struct {
	coll *mongo.Collection
}

func NewPrepLogRepository(db *mongo.Database) *PrepLogRepository {
	return &PrepLogRepository{coll: db.Collection(prepLogsCollection)}
}

func (r *PrepLogRepository) Create(ctx context.Context, log *domain.PrepLog) (*domain.PrepLog, error) {
	doc := *log
	doc.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert prep log: %w", err)
	}
	return &doc, nil
}

func (r *PrepLogRepository) ListByUser(ctx context.Context, userID string) ([]domain.PrepLog, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list prep logs: %w", err)
	}
	defer cur.Close(ctx)

	logs := []domain.PrepLog{}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode prep logs: %w", err)
	}
	return logs, nil
}
