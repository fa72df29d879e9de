package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var ErrNotFound = errors.New("order not found")

const pingTimeout = 2 * time.Second

// Store is the gateway to the MongoDB document store. A Store whose Connect
// failed stays usable: Connected reports false and the services run in demo
// mode. There is no reconnect loop.
type Store struct {
	uri      string
	database string
	client   *mongo.Client
}

func New(uri, database string) *Store {
	return &Store{uri: uri, database: database}
}

// Connect dials and pings the store. Called once at startup; a failure is
// reported to the caller but leaves the Store in the disconnected state
// rather than poisoning it.
func (s *Store) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return err
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return err
	}
	s.client = client
	return nil
}

// Connected probes the live connection. Mirrors a live readiness check, so a
// dropped connection reads false on the next request.
func (s *Store) Connected(ctx context.Context) bool {
	if s.client == nil {
		return false
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.client.Ping(pingCtx, readpref.Primary()) == nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.client.Database(s.database).Collection(name)
}
