// Package db opens and owns the MongoDB client used by the API.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"meetvoice-api/internal/config"
	"meetvoice-api/internal/observability/metrics"
)

// Client wraps a connected mongo.Client bound to one database and collection.
type Client struct {
	client     *mongo.Client
	database   string
	collection string
}

// ClientOptions builds the driver options for cfg.
func ClientOptions(cfg config.MongoConfig) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(uint64(cfg.MaxPoolSize)). // #nosec G115 -- validated >= 1
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetAppName("meetvoice-api")
}

// Open configures the MongoDB client and probes the primary once within
// cfg.ConnectTimeout. An unreachable store is only logged; the driver keeps
// retrying in the background and store calls fail individually until it is up.
func Open(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	opts := ClientOptions(cfg)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mongodb options: %w", err)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	slog.Info("mongodb client configured",
		slog.String("uri", RedactURI(cfg.URI)),
		slog.String("database", cfg.Database),
		slog.String("collection", cfg.Collection),
		slog.Int("max_pool_size", cfg.MaxPoolSize),
		slog.Duration("connect_timeout", cfg.ConnectTimeout))

	c := &Client{
		client:     client,
		database:   cfg.Database,
		collection: cfg.Collection,
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := c.Ping(pingCtx); err != nil {
		slog.Warn("mongodb not reachable at startup, serving anyway",
			slog.String("uri", RedactURI(cfg.URI)),
			slog.String("error", err.Error()))
		return c, nil
	}

	slog.Info("mongodb connection established successfully")
	return c, nil
}

// Collection returns the configured articles collection.
func (c *Client) Collection() *mongo.Collection {
	return c.client.Database(c.database).Collection(c.collection)
}

// Ping checks that the primary answers.
func (c *Client) Ping(ctx context.Context) error {
	start := time.Now()
	err := c.client.Ping(ctx, readpref.Primary())
	metrics.RecordStoreOperation("ping", time.Since(start), err)
	return err
}

// Close disconnects the client, waiting for in-use connections up to ctx's deadline.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// RedactURI masks the password of a connection string for logging.
func RedactURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "<unparseable mongodb uri>"
	}
	return u.Redacted()
}
