package loaders

import (
  "encoding/json"
  "errors"

  "github.com/nats-io/nats.go"
  "gorm.io/gorm"

  "loader.local/tweet-loader/config"
  "loader.local/tweet-loader/etl"
  "loader.local/tweet-loader/repositories"
)

// RecordsRepository is the relational executor behind the load pipeline.
// Begin opens one transaction per flush batch and rebinds the entity
// repositories to it; Savepoint/RollbackTo scope one record inside that
// transaction; Commit closes the boundary and announces it over NATS.
type RecordsRepository struct {
  Db   *gorm.DB
  Nats *nats.Conn

  tx                 *gorm.DB
  UsersRepository    *repositories.UsersRepository
  SourcesRepository  *repositories.SourcesRepository
  HashtagsRepository *repositories.HashtagsRepository
  TweetsRepository   *repositories.TweetsRepository
  count              int
}

func (r *RecordsRepository) Begin() error {
  tx := r.Db.Begin()
  if tx.Error != nil {
    return tx.Error
  }
  r.tx = tx
  r.count = 0
  r.UsersRepository = &repositories.UsersRepository{Db: tx}
  r.SourcesRepository = &repositories.SourcesRepository{Db: tx}
  r.HashtagsRepository = &repositories.HashtagsRepository{Db: tx}
  r.TweetsRepository = &repositories.TweetsRepository{Db: tx}
  return nil
}

func (r *RecordsRepository) Savepoint(name string) error {
  return r.tx.SavePoint(name).Error
}

func (r *RecordsRepository) RollbackTo(name string) error {
  return r.tx.RollbackTo(name).Error
}

func (r *RecordsRepository) UpsertUser(record *etl.Record) (string, error) {
  if record.UserCreated == nil {
    return "", errors.New("user_created is empty after cleaning")
  }
  return r.UsersRepository.Upsert(
    record.UserName,
    record.UserLocation,
    record.UserDescription,
    *record.UserCreated,
    record.UserFollowers,
    record.UserFriends,
    record.UserFavourites,
    record.UserVerified,
  )
}

func (r *RecordsRepository) ResolveOrCreateSource(name string) (string, error) {
  return r.SourcesRepository.ResolveOrCreate(name)
}

func (r *RecordsRepository) InsertTweet(record *etl.Record, userID string, sourceID string) (string, error) {
  if record.Date == nil {
    return "", errors.New("date is empty after cleaning")
  }
  id, err := r.TweetsRepository.Create(
    userID,
    sourceID,
    *record.Date,
    record.Text,
    record.IsRetweet,
  )
  if err == nil {
    r.count++
  }
  return id, err
}

func (r *RecordsRepository) ResolveOrCreateHashtag(tag string) (string, error) {
  return r.HashtagsRepository.ResolveOrCreate(tag)
}

func (r *RecordsRepository) LinkTweetHashtag(tweetID string, hashtagID string) error {
  return r.TweetsRepository.Link(tweetID, hashtagID)
}

func (r *RecordsRepository) Commit() error {
  if err := r.tx.Commit().Error; err != nil {
    return err
  }
  if r.Nats != nil {
    data, _ := json.Marshal(map[string]interface{}{
      "tweets": r.count,
    })
    r.Nats.Publish(config.NATS_LOADS_FLUSH, data)
    r.Nats.Flush()
  }
  return nil
}
