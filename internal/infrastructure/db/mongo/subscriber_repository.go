package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

const subscriberCollection = "subscribers"

// SubscriberRepository persists newsletter subscriptions. The collection
// carries a unique index on email; duplicate inserts map to
// domain.ErrAlreadySubscribed.
type SubscriberRepository struct {
	coll *mongo.Collection
}

func NewSubscriberRepository(db *mongo.Database) *SubscriberRepository {
	return &SubscriberRepository{coll: db.Collection(subscriberCollection)}
}

type mongoSubscriber struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *SubscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, error) {
	doc := mongoSubscriber{
		Name:      sub.Name,
		Email:     sub.Email,
		CreatedAt: sub.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("insert subscriber: %w", err)
	}

	created := *sub
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *SubscriberRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}
