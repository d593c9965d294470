package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/seoatlas/seoatlas/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConnected is returned by Collection and Ping before a successful Connect.
var ErrNotConnected = errors.New("mongodb connection is not established")

const (
	connectAttempts = 5
	connectDelay    = 2 * time.Second
)

// Store owns the single MongoDB connection for the process. It is constructed
// at startup and passed by reference to every repository; there is no
// package-level client.
type Store struct {
	uri     string
	name    string
	timeout time.Duration

	client *mongo.Client
	db     *mongo.Database
}

func New(uri, name string, timeout time.Duration) *Store {
	return &Store{uri: uri, name: name, timeout: timeout}
}

// Connect establishes the connection, retrying up to 5 times with a fixed
// 2-second delay. The caller treats an exhausted retry budget as fatal; the
// service must not take traffic without a store connection.
func (s *Store) Connect(ctx context.Context) error {
	if s.client != nil {
		return nil
	}
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := s.dial(ctx)
		if err == nil {
			s.client = client
			s.db = client.Database(s.name)
			logger.Infof("connected to MongoDB (database %s)", s.name)
			return nil
		}
		lastErr = err
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, connectAttempts, err)
		if attempt < connectAttempts {
			time.Sleep(connectDelay)
		}
	}
	return fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", connectAttempts, lastErr)
}

func (s *Store) dial(ctx context.Context) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// Close releases the connection if one is held. Safe to call repeatedly and
// before Connect.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	if err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	logger.Info("MongoDB connection closed")
	return nil
}

// Collection returns a handle to the named collection.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}
	return s.db.Collection(name), nil
}

// Ping reports whether the store is reachable; used by the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrNotConnected
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Ping(ctx, nil)
}
