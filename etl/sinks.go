package etl

import (
  "context"
  "fmt"
  "time"
)

// RelationalExecutor is the storage capability the relational sink writes
// through. Savepoint/RollbackTo scope one record inside the transaction
// opened by Begin; Commit closes a flush boundary.
type RelationalExecutor interface {
  Begin() error
  Savepoint(name string) error
  RollbackTo(name string) error
  UpsertUser(record *Record) (string, error)
  ResolveOrCreateSource(name string) (string, error)
  InsertTweet(record *Record, userID string, sourceID string) (string, error)
  ResolveOrCreateHashtag(tag string) (string, error)
  LinkTweetHashtag(tweetID string, hashtagID string) error
  Commit() error
}

// RelationalSink replicates one record into the normalized schema. A
// failed record rolls back to its savepoint and leaves the transaction
// usable for the rest of the batch.
type RelationalSink struct {
  Executor RelationalExecutor
  seq      int
}

func (s *RelationalSink) Begin() error {
  return s.Executor.Begin()
}

func (s *RelationalSink) Commit() error {
  return s.Executor.Commit()
}

func (s *RelationalSink) Write(record *Record) (err error) {
  s.seq++
  savepoint := fmt.Sprintf("record_%d", s.seq)
  if err = s.Executor.Savepoint(savepoint); err != nil {
    return
  }
  defer func() {
    if err != nil {
      s.Executor.RollbackTo(savepoint)
    }
  }()

  userID, err := s.Executor.UpsertUser(record)
  if err != nil {
    return
  }
  var sourceID string
  if record.Source != "" {
    sourceID, err = s.Executor.ResolveOrCreateSource(record.Source)
    if err != nil {
      return
    }
  }
  tweetID, err := s.Executor.InsertTweet(record, userID, sourceID)
  if err != nil {
    return
  }
  for _, tag := range record.Hashtags {
    var hashtagID string
    hashtagID, err = s.Executor.ResolveOrCreateHashtag(tag)
    if err != nil {
      return
    }
    if err = s.Executor.LinkTweetHashtag(tweetID, hashtagID); err != nil {
      return
    }
  }
  return
}

type TweetUser struct {
  UserName     string    `bson:"user_name"`
  Location     string    `bson:"user_location"`
  Description  string    `bson:"user_description"`
  RegisteredAt time.Time `bson:"user_created"`
  Followers    int64     `bson:"user_followers"`
  Friends      int64     `bson:"user_friends"`
  Favourites   int64     `bson:"user_favourites"`
  Verified     bool      `bson:"user_verified"`
}

// TweetDocument is the denormalized, self-contained form of one record:
// the user is embedded by value, hashtags flattened to one array.
type TweetDocument struct {
  Date      time.Time `bson:"date"`
  Text      string    `bson:"text"`
  Source    string    `bson:"source"`
  IsRetweet bool      `bson:"is_retweet"`
  Hashtags  []string  `bson:"hashtags"`
  User      TweetUser `bson:"user"`
}

// DocumentExecutor issues one unordered bulk write and reports how many
// documents the store acknowledged. Partial failures inside the bulk are
// not errors; only an unusable connection is.
type DocumentExecutor interface {
  BulkInsert(ctx context.Context, documents []TweetDocument) (int64, error)
}

// DocumentSink accumulates write-once documents between flush boundaries.
// Documents are never updated or deduplicated against the store; a rerun
// over the same input produces duplicates by design.
type DocumentSink struct {
  Executor DocumentExecutor
  pending  []TweetDocument
}

func (s *DocumentSink) Add(record *Record) {
  document := TweetDocument{
    Text:      record.Text,
    Source:    record.Source,
    IsRetweet: record.IsRetweet,
    Hashtags:  dedupeTags(record.Hashtags),
    User: TweetUser{
      UserName:    record.UserName,
      Location:    record.UserLocation,
      Description: record.UserDescription,
      Followers:   record.UserFollowers,
      Friends:     record.UserFriends,
      Favourites:  record.UserFavourites,
      Verified:    record.UserVerified,
    },
  }
  if record.Date != nil {
    document.Date = *record.Date
  }
  if record.UserCreated != nil {
    document.User.RegisteredAt = *record.UserCreated
  }
  s.pending = append(s.pending, document)
}

func (s *DocumentSink) Pending() int {
  return len(s.pending)
}

func (s *DocumentSink) Flush(ctx context.Context) (int64, error) {
  if len(s.pending) == 0 {
    return 0, nil
  }
  acked, err := s.Executor.BulkInsert(ctx, s.pending)
  s.pending = nil
  return acked, err
}

func dedupeTags(tags []string) []string {
  out := make([]string, 0, len(tags))
  seen := make(map[string]bool, len(tags))
  for _, tag := range tags {
    if seen[tag] {
      continue
    }
    seen[tag] = true
    out = append(out, tag)
  }
  return out
}
