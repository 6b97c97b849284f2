package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventbook/internal/domain"
)

const bookingCollection = "bookings"

type bookingRepository struct {
	client *Client
}

func NewBookingRepository(client *Client) domain.BookingRepository {
	return &bookingRepository{client: client}
}

// EnsureBookingIndexes creates the event_id lookup index. Call once at startup.
func EnsureBookingIndexes(ctx context.Context, client *Client) error {
	db, err := client.Database(ctx)
	if err != nil {
		return err
	}
	_, err = db.Collection(bookingCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "event_id", Value: 1}},
	})
	return err
}

func (r *bookingRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.client.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(bookingCollection), nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	col, err := r.collection(ctx)
	if err != nil {
		return err
	}
	result, err := col.InsertOne(ctx, booking)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = id
	}
	return nil
}

func (r *bookingRepository) ListByEventID(ctx context.Context, eventID primitive.ObjectID) ([]*domain.Booking, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	bookings := make([]*domain.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
