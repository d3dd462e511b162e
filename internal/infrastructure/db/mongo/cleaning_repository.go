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

const cleaningCollection = "cleaning_tasks"

// CleaningRepository is the MongoDB-backed cleaning board store.
type CleaningRepository struct {
	coll *mongo.Collection
}

func NewCleaningRepository(db *mongo.Database) *CleaningRepository {
	return &CleaningRepository{coll: db.Collection(cleaningCollection)}
}

func (r *CleaningRepository) Create(ctx context.Context, task *domain.CleaningTask) (*domain.CleaningTask, error) {
	doc := *task
	doc.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert cleaning task: %w", err)
	}
	return &doc, nil
}

func (r *CleaningRepository) List(ctx context.Context) ([]domain.CleaningTask, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list cleaning tasks: %w", err)
	}
	defer cur.Close(ctx)

	tasks := []domain.CleaningTask{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode cleaning tasks: %w", err)
	}
	return tasks, nil
}

func (r *CleaningRepository) Delete(ctx context.Context, id string) (*domain.CleaningTask, error) {
	var deleted domain.CleaningTask
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCleaningTaskNotFound
		}
		return nil, fmt.Errorf("delete cleaning task: %w", err)
	}
	return &deleted, nil
}
