// Package mongo loads events from a MongoDB collection.
//
// Documents are decoded straight into the engine's event type via its
// bson tags (_id, start, end, group_key). The adapter is read-only: the
// engine never writes layout state back to storage.
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calgrid/calgrid/pkg/errors"
	"github.com/calgrid/calgrid/pkg/event"
)

// Config holds connection settings for the Mongo event source.
type Config struct {
	URI        string
	Database   string
	Collection string

	// From and To optionally bound the loaded window by event start.
	// Zero values load everything.
	From time.Time
	To   time.Time
}

// Source is a MongoDB-backed event source.
type Source struct {
	client *mongo.Client
	coll   *mongo.Collection
	cfg    Config
}

// New connects to MongoDB and verifies the connection with a ping.
// Call Close when done.
func New(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.URI == "" || cfg.Database == "" || cfg.Collection == "" {
		return nil, errors.New(errors.ErrCodeInvalidSource, "mongo source requires uri, database, and collection")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "connect to %s", cfg.URI)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "ping %s", cfg.URI)
	}

	return &Source{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		cfg:    cfg,
	}, nil
}

// Name identifies the source by database and collection.
func (s *Source) Name() string {
	return s.cfg.Database + "." + s.cfg.Collection
}

// Load fetches the event snapshot, sorted by start for stable output.
func (s *Source) Load(ctx context.Context) ([]event.Event, error) {
	filter := bson.M{}
	if !s.cfg.From.IsZero() || !s.cfg.To.IsZero() {
		window := bson.M{}
		if !s.cfg.From.IsZero() {
			window["$gte"] = s.cfg.From
		}
		if !s.cfg.To.IsZero() {
			window["$lt"] = s.cfg.To
		}
		filter["start"] = window
	}

	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "query %s", s.Name())
	}
	defer cursor.Close(ctx)

	var events []event.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "decode events from %s", s.Name())
	}
	return events, nil
}

// Close disconnects the underlying client.
func (s *Source) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
