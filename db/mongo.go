package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blogging-api/config"
	"blogging-api/logger"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		uri := cfg.Mongo.URI
		if uri == "" {
			uri = "mongodb://localhost:27017"
		}
		dbName := cfg.Mongo.DBName
		if dbName == "" {
			dbName = "blogging"
		}

		cl, err := mongo.NewClient(options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		// Ensure indexes for all collections
		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.Log.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Ping checks the connection, used by the health endpoint.
func Ping(ctx context.Context) error {
	if client == nil {
		return mongo.ErrClientDisconnected
	}
	return client.Ping(ctx, readpref.Primary())
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// blogs: unique index on title
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("uniq_title").SetUnique(true),
		}
		if _, err := d.Collection("blogs").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	// blogs: listing indexes
	{
		// author + state covers the owner-scoped listing
		if _, err := d.Collection("blogs").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "author", Value: 1}, {Key: "state", Value: 1}},
			Options: options.Index().SetName("idx_author_state"),
		}); err != nil {
			return err
		}
		// timestamp desc for the default recency sort
		if _, err := d.Collection("blogs").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_timestamp_desc"),
		}); err != nil {
			return err
		}
		// state for the published-only public listing
		if _, err := d.Collection("blogs").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "state", Value: 1}},
			Options: options.Index().SetName("idx_state"),
		}); err != nil {
			return err
		}
	}

	// users: unique index on email
	{
		if _, err := d.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		}); err != nil {
			return err
		}
	}
	return nil
}
