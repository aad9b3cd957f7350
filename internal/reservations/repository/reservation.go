package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationserrors "ashiyu/internal/reservations/errors"
	"ashiyu/pkg/config"
	mongotx "ashiyu/pkg/db/mongo"
	"ashiyu/pkg/model"
	"ashiyu/pkg/timegrid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Reservations"
)

// reservationDoc is the stored shape. Seats persist as the legacy
// comma-joined string and the window as minutes from midnight, which
// lets overlap checks run as a single indexed range query.
type reservationDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	StartTime     string             `bson:"start_time"`
	DurationMin   int                `bson:"duration_min"`
	PartySize     int                `bson:"party_size"`
	PaymentMethod string             `bson:"payment_method"`
	Memo          string             `bson:"memo"`
	AssignedSeats string             `bson:"assigned_seats"`
	StartMin      int                `bson:"start_min"`
	EndMin        int                `bson:"end_min"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func toDoc(r *model.Reservation) (*reservationDoc, error) {
	start, err := timegrid.ParseClock(r.StartTime)
	if err != nil {
		return nil, err
	}

	doc := &reservationDoc{
		Name:          r.Name,
		StartTime:     r.StartTime,
		DurationMin:   r.DurationMin,
		PartySize:     r.PartySize,
		PaymentMethod: r.PaymentMethod,
		Memo:          r.Memo,
		AssignedSeats: model.EncodeSeats(r.Seats),
		StartMin:      int(start),
		EndMin:        int(start) + r.DurationMin,
		CreatedAt:     r.CreatedAt,
	}

	if r.ID != "" {
		oid, err := primitive.ObjectIDFromHex(r.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", reservationserrors.ErrInvalidID, r.ID)
		}
		doc.ID = oid
	}

	return doc, nil
}

func fromDoc(doc *reservationDoc) (*model.Reservation, error) {
	seats, err := model.DecodeSeats(doc.AssignedSeats)
	if err != nil {
		return nil, fmt.Errorf("corrupt seat assignment on reservation %s: %w", doc.ID.Hex(), err)
	}

	return &model.Reservation{
		ID:            doc.ID.Hex(),
		Name:          doc.Name,
		StartTime:     doc.StartTime,
		DurationMin:   doc.DurationMin,
		PartySize:     doc.PartySize,
		PaymentMethod: doc.PaymentMethod,
		Memo:          doc.Memo,
		Seats:         seats,
		CreatedAt:     doc.CreatedAt,
	}, nil
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	FindByID(ctx context.Context, id string) (*model.Reservation, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Reservation, error)
	FindOverlapping(ctx context.Context, startMin, endMin int) ([]*model.Reservation, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoReservationRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoReservationRepository(cfg *config.Config) ReservationRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoReservationRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// withTimeout wraps the context with a timeout unless already inside a
// transaction; a SessionContext cannot be wrapped without breaking
// transaction semantics.
func (r *mongoReservationRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	reservation.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	doc, err := toDoc(reservation)
	if err != nil {
		return err
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		reservation.ID = oid.Hex()
	}
	return nil
}

func (r *mongoReservationRepository) FindByID(ctx context.Context, id string) (*model.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", reservationserrors.ErrInvalidID, id)
	}

	var doc reservationDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, reservationserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}

	return fromDoc(&doc)
}

func (r *mongoReservationRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "start_min", Value: 1}, {Key: "created_at", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservations: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAll(ctx, cursor)
}

// FindOverlapping returns every reservation whose window intersects
// [startMin, endMin). Back-to-back windows do not overlap.
func (r *mongoReservationRepository) FindOverlapping(ctx context.Context, startMin, endMin int) ([]*model.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"start_min": bson.M{"$lt": endMin},
		"end_min":   bson.M{"$gt": startMin},
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_min", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping reservations: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAll(ctx, cursor)
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]*model.Reservation, error) {
	var docs []*reservationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}

	reservations := make([]*model.Reservation, 0, len(docs))
	for _, doc := range docs {
		reservation, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

func (r *mongoReservationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", reservationserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	if result.DeletedCount == 0 {
		return reservationserrors.ErrNotFound
	}

	return nil
}

func (r *mongoReservationRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	return count, nil
}

func (r *mongoReservationRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
