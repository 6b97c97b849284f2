package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMissingURI is returned by NewClient when no connection string is given.
var ErrMissingURI = errors.New("mongodb connection string is required")

// Client memoizes a single mongo connection for the lifetime of the process.
// The first caller of Acquire performs the underlying connect; concurrent
// callers block until that attempt finishes and then share its result. A
// failed attempt is not cached, so a later call retries.
type Client struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client

	// connect is replaceable in tests.
	connect func(ctx context.Context) (*mongo.Client, error)
}

// NewClient returns an unconnected Client. It fails fast with ErrMissingURI
// when uri is empty: a missing connection string is a configuration error
// and no connection attempt must be made.
func NewClient(uri, dbName string) (*Client, error) {
	if uri == "" {
		return nil, ErrMissingURI
	}
	c := &Client{uri: uri, dbName: dbName}
	c.connect = c.dial
	return c, nil
}

func (c *Client) dial(ctx context.Context) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// Acquire returns the cached connection handle, establishing it on first
// use. It is idempotent and safe for concurrent use: a successful first
// connect is performed exactly once.
func (c *Client) Acquire(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}
	client, err := c.connect(ctx)
	if err != nil {
		// Leave c.client nil so the next caller retries.
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	c.client = client
	return client, nil
}

// Database returns a handle to the configured database, connecting first if
// needed.
func (c *Client) Database(ctx context.Context) (*mongo.Database, error) {
	client, err := c.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(c.dbName), nil
}

// Disconnect closes the cached connection, if any.
func (c *Client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	return err
}
