package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout = 10 * time.Second
	pingTimeout    = 5 * time.Second
)

// Store owns the MongoDB client for the lifetime of the process. It is
// created once at startup and handed to the repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to uri and selects database name. It fails unless the
// primary answers a ping, since Connect alone does not reach the server.
func Open(uri, name string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	store := &Store{client: client, db: client.Database(name)}
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return store, nil
}

// clientOptions applies uri with driver-level retries turned off; a failed
// operation is reported to the caller once.
func clientOptions(uri string) *options.ClientOptions {
	return options.Client().
		ApplyURI(uri).
		SetRetryWrites(false).
		SetRetryReads(false)
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Database() *mongo.Database {
	return s.db
}

// Close disconnects the client, waiting at most connectTimeout for
// in-flight operations.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}
