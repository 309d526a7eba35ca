package credits

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore implements UsageStore on a MongoDB collection. Counter
// updates use $inc and the throttle markers use filtered $set updates, so
// all mutations are single atomic document operations.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a MongoDB-backed usage store on the given
// collection (conventionally "usage_records"). Panics if collection is
// nil to fail fast during initialization.
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	if collection == nil {
		panic("credits: mongo collection is required")
	}
	return &MongoStore{collection: collection}
}

// usageDoc is the BSON shape of a usage record. Subject IDs are stored as
// their canonical string form to keep documents readable in the shell.
type usageDoc struct {
	SubjectID            string     `bson:"_id"`
	PeriodStart          time.Time  `bson:"period_start"`
	Consumed             int64      `bson:"consumed"`
	TopUp                int64      `bson:"top_up"`
	LastRechargeAttempt  *time.Time `bson:"last_recharge_attempt,omitempty"`
	LastExhaustionNotice *time.Time `bson:"last_exhaustion_notice,omitempty"`
}

func (d usageDoc) toRecord() (UsageRecord, error) {
	subjectID, err := uuid.Parse(d.SubjectID)
	if err != nil {
		return UsageRecord{}, errors.Join(ErrFailedToLoadUsage, err)
	}
	return UsageRecord{
		SubjectID:            subjectID,
		PeriodStart:          d.PeriodStart,
		Consumed:             d.Consumed,
		TopUp:                d.TopUp,
		LastRechargeAttempt:  d.LastRechargeAttempt,
		LastExhaustionNotice: d.LastExhaustionNotice,
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, subjectID uuid.UUID) (UsageRecord, error) {
	var doc usageDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": subjectID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UsageRecord{}, ErrUsageRecordNotFound
		}
		return UsageRecord{}, errors.Join(ErrFailedToLoadUsage, err)
	}
	return doc.toRecord()
}

func (s *MongoStore) Put(ctx context.Context, record UsageRecord) error {
	doc := usageDoc{
		SubjectID:            record.SubjectID.String(),
		PeriodStart:          record.PeriodStart,
		Consumed:             record.Consumed,
		TopUp:                record.TopUp,
		LastRechargeAttempt:  record.LastRechargeAttempt,
		LastExhaustionNotice: record.LastExhaustionNotice,
	}

	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": doc.SubjectID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrFailedToSaveUsage, err)
	}
	return nil
}

func (s *MongoStore) IncrementConsumed(ctx context.Context, subjectID uuid.UUID, delta int64) error {
	return s.increment(ctx, subjectID, "consumed", delta)
}

func (s *MongoStore) IncrementTopUp(ctx context.Context, subjectID uuid.UUID, delta int64) error {
	return s.increment(ctx, subjectID, "top_up", delta)
}

func (s *MongoStore) increment(ctx context.Context, subjectID uuid.UUID, field string, delta int64) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": subjectID.String()},
		bson.M{
			"$inc":         bson.M{field: delta},
			"$setOnInsert": bson.M{"period_start": time.Now().UTC()},
		},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrFailedToSaveUsage, err)
	}
	return nil
}

func (s *MongoStore) TryMarkRechargeAttempt(ctx context.Context, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error) {
	return s.tryMark(ctx, "last_recharge_attempt", subjectID, now, window)
}

func (s *MongoStore) TryMarkExhaustionNotice(ctx context.Context, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error) {
	return s.tryMark(ctx, "last_exhaustion_notice", subjectID, now, window)
}

// tryMark writes the throttle marker only when it is absent or older than
// the window; the filter carries the condition, so the update is atomic
// and at most one concurrent caller sees a modified document. The upsert
// covers subjects with no record yet: when the filter misses because the
// marker is still fresh, the insert collides on _id and the caller lost
// the race.
func (s *MongoStore) tryMark(ctx context.Context, field string, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error) {
	filter := bson.M{
		"_id": subjectID.String(),
		"$or": bson.A{
			bson.M{field: bson.M{"$exists": false}},
			bson.M{field: nil},
			bson.M{field: bson.M{"$lt": now.Add(-window)}},
		},
	}
	update := bson.M{
		"$set":         bson.M{field: now},
		"$setOnInsert": bson.M{"period_start": now},
	}

	result, err := s.collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, errors.Join(ErrFailedToSaveUsage, err)
	}
	return result.ModifiedCount > 0 || result.UpsertedCount > 0, nil
}
