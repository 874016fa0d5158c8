package repositories

import (
  "context"
  "errors"
  "log"

  "go.mongodb.org/mongo-driver/bson"
  "go.mongodb.org/mongo-driver/mongo"
  "go.mongodb.org/mongo-driver/mongo/options"

  "loader.local/tweet-loader/config"
  "loader.local/tweet-loader/etl"
)

type DocumentsRepository struct {
  Db *mongo.Database
}

func (r *DocumentsRepository) Collection() *mongo.Collection {
  return r.Db.Collection(config.MONGO_COLLECTION_TWEETS)
}

// Migrate creates the advisory query indexes. They are not
// correctness-critical: the loader never reads the collection.
func (r *DocumentsRepository) Migrate(ctx context.Context) error {
  indexes := []mongo.IndexModel{
    {Keys: bson.D{{Key: "date", Value: 1}}},
    {Keys: bson.D{{Key: "user.user_name", Value: 1}}},
    {Keys: bson.D{{Key: "hashtags", Value: 1}}},
    {Keys: bson.D{{Key: "is_retweet", Value: 1}}},
  }
  _, err := r.Collection().Indexes().CreateMany(ctx, indexes)
  return err
}

// BulkInsert issues one unordered bulk write. Individual document
// failures inside the batch do not block the others and are not
// surfaced as errors; only connection-level failures are.
func (r *DocumentsRepository) BulkInsert(ctx context.Context, documents []etl.TweetDocument) (int64, error) {
  if len(documents) == 0 {
    return 0, nil
  }
  items := make([]interface{}, len(documents))
  for i := range documents {
    items[i] = documents[i]
  }
  result, err := r.Collection().InsertMany(ctx, items, options.InsertMany().SetOrdered(false))
  if err != nil {
    var bulkErr mongo.BulkWriteException
    if errors.As(err, &bulkErr) && result != nil {
      log.Println("bulk insert partially failed", len(bulkErr.WriteErrors), "of", len(documents))
      return int64(len(result.InsertedIDs)), nil
    }
    return 0, err
  }
  return int64(len(result.InsertedIDs)), nil
}

func (r *DocumentsRepository) Count(ctx context.Context) (int64, error) {
  return r.Collection().CountDocuments(ctx, bson.D{})
}
