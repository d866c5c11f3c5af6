package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

const (
	collSearches = "searches"
	collOwners   = "search_owners"
	collSeen     = "seen_items"
	collCounters = "counters"
)

// MongoStore implements Store on MongoDB. Money fields are stored as
// decimal strings; ordering uses a counter-allocated sequence number.
// Owner documents only order owners; the searches collection is the source
// of truth for which owners exist.
type MongoStore struct {
	client   *mongo.Client
	searches *mongo.Collection
	owners   *mongo.Collection
	seen     *mongo.Collection
	counters *mongo.Collection
	ttl      time.Duration
}

// MongoOption configures a MongoStore.
type MongoOption func(*MongoStore)

// WithSeenTTL makes MongoDB expire seen keys after d via a TTL index.
func WithSeenTTL(d time.Duration) MongoOption {
	return func(m *MongoStore) {
		m.ttl = d
	}
}

type searchDoc struct {
	Seq          int64     `bson:"seq"`
	SearchID     string    `bson:"search_id"`
	OwnerID      string    `bson:"owner_id"`
	Name         string    `bson:"name"`
	Keywords     string    `bson:"keywords"`
	MaxPrice     string    `bson:"max_price"`
	ProfitMargin string    `bson:"profit_margin"`
	MinProfit    string    `bson:"min_profit"`
	CreatedAt    time.Time `bson:"created_at"`
}

type ownerDoc struct {
	OwnerID  string `bson:"_id"`
	FirstSeq int64  `bson:"first_seq"`
}

// NewMongoStore connects to uri, pings the primary and ensures indexes.
func NewMongoStore(ctx context.Context, uri, database string, opts ...MongoOption) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	db := client.Database(database)
	m := &MongoStore{
		client:   client,
		searches: db.Collection(collSearches),
		owners:   db.Collection(collOwners),
		seen:     db.Collection(collSeen),
		counters: db.Collection(collCounters),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return m, nil
}

func (m *MongoStore) ensureIndexes(ctx context.Context) error {
	if _, err := m.searches.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "search_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("creating searches index: %w", err)
	}

	if m.ttl > 0 {
		if _, err := m.seen.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "seen_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(m.ttl.Seconds())),
		}); err != nil {
			return fmt.Errorf("creating seen ttl index: %w", err)
		}
	}
	return nil
}

// Ping checks the primary is reachable.
func (m *MongoStore) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *MongoStore) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = m.client.Disconnect(ctx)
}

func (m *MongoStore) nextSeq(ctx context.Context) (int64, error) {
	var out struct {
		Seq int64 `bson:"seq"`
	}
	err := m.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": collSearches},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return 0, fmt.Errorf("allocating sequence: %w", err)
	}
	return out.Seq, nil
}

// AddSearch inserts spec with the next sequence number.
func (m *MongoStore) AddSearch(ctx context.Context, spec *domain.SearchSpec) error {
	seq, err := m.nextSeq(ctx)
	if err != nil {
		return err
	}

	createdAt := spec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	doc := searchDoc{
		Seq:          seq,
		SearchID:     spec.ID,
		OwnerID:      spec.OwnerID,
		Name:         spec.Name,
		Keywords:     spec.Keywords,
		MaxPrice:     spec.MaxPrice.String(),
		ProfitMargin: spec.ProfitMargin.String(),
		MinProfit:    spec.MinProfit.String(),
		CreatedAt:    createdAt.UTC(),
	}
	if _, err := m.searches.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateSearch, spec.ID)
		}
		return fmt.Errorf("inserting search %s: %w", spec.ID, err)
	}

	return m.registerOwner(ctx, spec.OwnerID, seq)
}

// registerOwner records firstSeq for an owner unless one is already set.
func (m *MongoStore) registerOwner(ctx context.Context, ownerID string, firstSeq int64) error {
	if _, err := m.owners.UpdateOne(ctx,
		bson.M{"_id": ownerID},
		bson.M{"$setOnInsert": bson.M{"first_seq": firstSeq}},
		options.UpdateOne().SetUpsert(true),
	); err != nil {
		return fmt.Errorf("registering owner %s: %w", ownerID, err)
	}
	return nil
}

// ListSearches returns the owner's searches in insertion order.
func (m *MongoStore) ListSearches(ctx context.Context, ownerID string) ([]domain.SearchSpec, error) {
	docs, err := m.findSearches(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	return toSpecs(docs)
}

// SnapshotSearches returns every search ordered by owner first insertion,
// then search insertion. Searches whose owner document is missing are
// appended in sequence order rather than dropped.
func (m *MongoStore) SnapshotSearches(ctx context.Context) ([]domain.SearchSpec, error) {
	cur, err := m.owners.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "first_seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}
	var owners []ownerDoc
	if err := cur.All(ctx, &owners); err != nil {
		return nil, fmt.Errorf("decoding owners: %w", err)
	}

	docs, err := m.findSearches(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	byOwner := make(map[string][]searchDoc, len(owners))
	for _, d := range docs {
		byOwner[d.OwnerID] = append(byOwner[d.OwnerID], d)
	}

	ordered := make([]searchDoc, 0, len(docs))
	for _, o := range owners {
		ordered = append(ordered, byOwner[o.OwnerID]...)
		delete(byOwner, o.OwnerID)
	}
	for _, d := range docs {
		if orphans, ok := byOwner[d.OwnerID]; ok {
			ordered = append(ordered, orphans...)
			delete(byOwner, d.OwnerID)
		}
	}
	return toSpecs(ordered)
}

// RemoveSearchByIndex deletes the owner's search at the 1-based index.
func (m *MongoStore) RemoveSearchByIndex(
	ctx context.Context,
	ownerID string,
	index int,
) (*domain.SearchSpec, error) {
	if index < 1 {
		return nil, fmt.Errorf("%w: index %d", ErrSearchNotFound, index)
	}

	var doc searchDoc
	err := m.searches.FindOne(ctx,
		bson.M{"owner_id": ownerID},
		options.FindOne().SetSort(bson.D{{Key: "seq", Value: 1}}).SetSkip(int64(index-1)),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: owner %s index %d", ErrSearchNotFound, ownerID, index)
	}
	if err != nil {
		return nil, fmt.Errorf("locating search: %w", err)
	}

	res, err := m.searches.DeleteOne(ctx, bson.M{"seq": doc.Seq})
	if err != nil {
		return nil, fmt.Errorf("deleting search: %w", err)
	}
	if res.DeletedCount == 0 {
		return nil, fmt.Errorf("%w: owner %s index %d", ErrSearchNotFound, ownerID, index)
	}

	if err := m.dropOwnerIfEmpty(ctx, ownerID); err != nil {
		return nil, err
	}

	spec, err := doc.toSpec()
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// dropOwnerIfEmpty deletes the owner document once the owner has no
// searches left. An AddSearch racing the delete may have inserted its search
// while its owner upsert hit the old document, so the owner is re-registered
// when searches reappear after the delete.
func (m *MongoStore) dropOwnerIfEmpty(ctx context.Context, ownerID string) error {
	remaining, err := m.searches.CountDocuments(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("counting owner searches: %w", err)
	}
	if remaining > 0 {
		return nil
	}

	if _, err := m.owners.DeleteOne(ctx, bson.M{"_id": ownerID}); err != nil {
		return fmt.Errorf("dropping empty owner: %w", err)
	}

	var first searchDoc
	err = m.searches.FindOne(ctx,
		bson.M{"owner_id": ownerID},
		options.FindOne().SetSort(bson.D{{Key: "seq", Value: 1}}),
	).Decode(&first)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("rechecking owner searches: %w", err)
	}
	return m.registerOwner(ctx, ownerID, first.Seq)
}

// CountSearches returns the number of searches and of distinct owners.
func (m *MongoStore) CountSearches(ctx context.Context) (int, int, error) {
	searches, err := m.searches.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, fmt.Errorf("counting searches: %w", err)
	}
	var owners []string
	if err := m.searches.Distinct(ctx, "owner_id", bson.M{}).Decode(&owners); err != nil {
		return 0, 0, fmt.Errorf("counting owners: %w", err)
	}
	return int(searches), len(owners), nil
}

// IsSeen reports whether key has been recorded.
func (m *MongoStore) IsSeen(ctx context.Context, key string) (bool, error) {
	n, err := m.seen.CountDocuments(ctx, bson.M{"_id": key}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("checking seen key: %w", err)
	}
	return n > 0, nil
}

// MarkSeen records key, keeping the first-seen time on repeats.
func (m *MongoStore) MarkSeen(ctx context.Context, key string) error {
	_, err := m.seen.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$setOnInsert": bson.M{"seen_at": time.Now().UTC()}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("marking seen key: %w", err)
	}
	return nil
}

// CountSeen returns the size of the seen set.
func (m *MongoStore) CountSeen(ctx context.Context) (int64, error) {
	n, err := m.seen.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting seen keys: %w", err)
	}
	return n, nil
}

// PruneSeen deletes keys first seen before olderThan.
func (m *MongoStore) PruneSeen(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := m.seen.DeleteMany(ctx, bson.M{"seen_at": bson.M{"$lt": olderThan.UTC()}})
	if err != nil {
		return 0, fmt.Errorf("pruning seen keys: %w", err)
	}
	return res.DeletedCount, nil
}

func (m *MongoStore) findSearches(ctx context.Context, filter bson.M) ([]searchDoc, error) {
	cur, err := m.searches.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("finding searches: %w", err)
	}
	var docs []searchDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding searches: %w", err)
	}
	return docs, nil
}

func (d *searchDoc) toSpec() (domain.SearchSpec, error) {
	spec := domain.SearchSpec{
		ID:        d.SearchID,
		OwnerID:   d.OwnerID,
		Name:      d.Name,
		Keywords:  d.Keywords,
		CreatedAt: d.CreatedAt,
	}

	var err error
	if spec.MaxPrice, err = decimal.NewFromString(d.MaxPrice); err != nil {
		return spec, fmt.Errorf("parsing max_price of %s: %w", d.SearchID, err)
	}
	if spec.ProfitMargin, err = decimal.NewFromString(d.ProfitMargin); err != nil {
		return spec, fmt.Errorf("parsing profit_margin of %s: %w", d.SearchID, err)
	}
	if spec.MinProfit, err = decimal.NewFromString(d.MinProfit); err != nil {
		return spec, fmt.Errorf("parsing min_profit of %s: %w", d.SearchID, err)
	}
	return spec, nil
}

func toSpecs(docs []searchDoc) ([]domain.SearchSpec, error) {
	out := make([]domain.SearchSpec, 0, len(docs))
	for i := range docs {
		spec, err := docs[i].toSpec()
		if err != nil {
			return nil, err
		}
		out = append(out, spec)
	}
	return out, nil
}
