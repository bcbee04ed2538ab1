// Package mongostore implements the repositories on MongoDB. Integer ids come
// from a counters collection so they match the relational backends.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	hostsCollection       = "hosts"
	propertiesCollection  = "properties"
	roomsCollection       = "rooms"
	bookingsCollection    = "bookings"
	countersCollection    = "counters"
	idempotencyCollection = "app_idempotency"
)

type Client struct {
	DB *mongo.Database
}

func New(ctx context.Context, uri, database string) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Client().ApplyURI(uri).SetRetryWrites(true)
	m, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect: %w", err)
	}
	return &Client{DB: m.Database(database)}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.DB.Client().Ping(ctx, nil)
}

func (c *Client) Close(ctx context.Context) error {
	return c.DB.Client().Disconnect(ctx)
}

// EnsureIndexes creates the unique name indexes. Existing indexes with the
// same definition are left alone, so repeated calls succeed.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	specs := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{hostsCollection, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique}},
		{propertiesCollection, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique}},
		{roomsCollection, mongo.IndexModel{Keys: bson.D{{Key: "property_id", Value: 1}}}},
	}
	for _, spec := range specs {
		if _, err := c.DB.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model); err != nil {
			return fmt.Errorf("mongostore: index %s: %w", spec.collection, err)
		}
	}
	return nil
}

type counterDocument struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// nextID atomically increments the named sequence. The first value is 1.
func nextID(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc counterDocument
	err := db.Collection(countersCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": int64(1)}}, opts).
		Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("mongostore: next %s id: %w", name, err)
	}
	return doc.Seq, nil
}
