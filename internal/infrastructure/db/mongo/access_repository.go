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

const accessRequestsCollection = "access_requests"

// AccessRequestRepository is the MongoDB-backed access request store.
type AccessRequestRepository struct {
	coll *mongo.Collection
}

func NewAccessRequestRepository(db *mongo.Database) *AccessRequestRepository {
	return &AccessRequestRepository{coll: db.Collection(accessRequestsCollection)}
}

func (r *AccessRequestRepository) Create(ctx context.Context, req *domain.AccessRequest) (*domain.AccessRequest, error) {
	doc := *req
	doc.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert access request: %w", err)
	}
	return &doc, nil
}

func (r *AccessRequestRepository) List(ctx context.Context) ([]domain.AccessRequest, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list access requests: %w", err)
	}
	defer cur.Close(ctx)

	reqs := []domain.AccessRequest{}
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, fmt.Errorf("decode access requests: %w", err)
	}
	return reqs, nil
}
