package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventbook/internal/domain"
)

const eventCollection = "events"

type eventRepository struct {
	client *Client
}

func NewEventRepository(client *Client) domain.EventRepository {
	return &eventRepository{client: client}
}

// EnsureEventIndexes creates the unique slug index. Call once at startup.
func EnsureEventIndexes(ctx context.Context, client *Client) error {
	db, err := client.Database(ctx)
	if err != nil {
		return err
	}
	_, err = db.Collection(eventCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *eventRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.client.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(eventCollection), nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	col, err := r.collection(ctx)
	if err != nil {
		return err
	}
	result, err := col.InsertOne(ctx, event)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		event.ID = id
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Event, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	event := &domain.Event{}
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	event := &domain.Event{}
	if err := col.FindOne(ctx, bson.M{"slug": slug}).Decode(event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return r.find(ctx, bson.M{})
}

func (r *eventRepository) ListSimilar(ctx context.Context, event *domain.Event) ([]*domain.Event, error) {
	filter := bson.M{
		"_id":  bson.M{"$ne": event.ID},
		"tags": bson.M{"$in": event.Tags},
	}
	return r.find(ctx, filter)
}

func (r *eventRepository) find(ctx context.Context, filter bson.M) ([]*domain.Event, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	events := make([]*domain.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	col, err := r.collection(ctx)
	if err != nil {
		return err
	}
	result, err := col.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return false, err
	}
	count, err := col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
