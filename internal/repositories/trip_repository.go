package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dbm "tourmuse/internal/models/db_models"
	req "tourmuse/internal/models/request_models"
)

const tripsCollection = "trips"

// TripRepository is the gateway to the trips document store. Every operation
// is scoped to a single user or a single document; there is no retry policy
// and no optimistic concurrency, failures surface as wrapped errors.
type TripRepository interface {
	Create(ctx context.Context, trip *dbm.Trip) (string, error)
	List(ctx context.Context, userID string, status dbm.TripStatus) ([]dbm.Trip, error)
	Recent(ctx context.Context, userID string, limit int) ([]dbm.Trip, error)
	Get(ctx context.Context, tripID string) (*dbm.Trip, error)
	Update(ctx context.Context, tripID string, update *req.UpdateTripRequest) error
	SetStatus(ctx context.Context, tripID string, status dbm.TripStatus) error
	Delete(ctx context.Context, tripID string) error
}

type tripRepository struct {
	coll *mongo.Collection
}

func NewTripRepository(db *mongo.Database) TripRepository {
	return &tripRepository{coll: db.Collection(tripsCollection)}
}

const opTimeout = 5 * time.Second

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now().UTC()
	trip.ID = uuid.New().String()
	trip.Status = dbm.TripStatusPlanned
	trip.CreatedAt = now
	trip.LastUpdated = now

	if _, err := r.coll.InsertOne(ctx, trip); err != nil {
		return "", fmt.Errorf("failed to add trip: %w", err)
	}
	return trip.ID, nil
}

func (r *tripRepository) List(ctx context.Context, userID string, status dbm.TripStatus) ([]dbm.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"userId": userID}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to get trips: %w", err)
	}
	defer cursor.Close(ctx)

	trips := []dbm.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to get trips: %w", err)
	}
	return trips, nil
}

func (r *tripRepository) Recent(ctx context.Context, userID string, limit int) ([]dbm.Trip, error) {
	if limit <= 0 {
		limit = 5
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("failed to get recent trips: %w", err)
	}
	defer cursor.Close(ctx)

	trips := []dbm.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to get recent trips: %w", err)
	}
	return trips, nil
}

func (r *tripRepository) Get(ctx context.Context, tripID string) (*dbm.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var trip dbm.Trip
	err := r.coll.FindOne(ctx, bson.M{"_id": tripID}).Decode(&trip)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// Update writes only the provided fields and always refreshes lastUpdated.
// Dates are normalized to the store's timestamp representation.
func (r *tripRepository) Update(ctx context.Context, tripID string, update *req.UpdateTripRequest) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set := bson.M{"lastUpdated": primitive.NewDateTimeFromTime(time.Now().UTC())}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.StartDate != nil {
		set["startDate"] = primitive.NewDateTimeFromTime(update.StartDate.UTC())
	}
	if update.EndDate != nil {
		set["endDate"] = primitive.NewDateTimeFromTime(update.EndDate.UTC())
	}
	if update.Budget != nil {
		set["budget"] = *update.Budget
	}
	if update.TravelStyle != nil {
		set["travelStyle"] = *update.TravelStyle
	}
	if update.EcoFriendly != nil {
		set["ecoFriendly"] = *update.EcoFriendly
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": tripID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *tripRepository) SetStatus(ctx context.Context, tripID string, status dbm.TripStatus) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": tripID},
		bson.M{"$set": bson.M{
			"status":      status,
			"lastUpdated": primitive.NewDateTimeFromTime(time.Now().UTC()),
		}})
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *tripRepository) Delete(ctx context.Context, tripID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": tripID}); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}
