package etl

import (
  "fmt"
  "strings"
  "time"
)

// Columns is the full set of fields expected from the tabular source.
// Readers must surface every column, absent ones as empty values.
var Columns = []string{
  "user_name",
  "user_location",
  "user_description",
  "user_created",
  "user_followers",
  "user_friends",
  "user_favourites",
  "user_verified",
  "date",
  "text",
  "hashtags",
  "source",
  "is_retweet",
}

// Raw is one unparsed row keyed by column name.
type Raw map[string]string

// Record is the canonical in-flight representation of one post. It is
// produced once per raw row, repaired by the normalizer and cleaner, and
// consumed exactly once by each sink.
type Record struct {
  UserName        string
  UserLocation    string
  UserDescription string
  UserCreated     *time.Time
  UserFollowers   int64
  UserFriends     int64
  UserFavourites  int64
  UserVerified    bool
  Date            *time.Time
  Text            string
  Hashtags        []string
  Source          string
  IsRetweet       bool
}

// Fingerprint collapses every field into one string, used for
// exact-duplicate detection across a batch.
func (r *Record) Fingerprint() string {
  var userCreated, date int64
  if r.UserCreated != nil {
    userCreated = r.UserCreated.UnixMicro()
  }
  if r.Date != nil {
    date = r.Date.UnixMicro()
  }
  return fmt.Sprintf(
    "%s|%s|%s|%d|%d|%d|%d|%t|%d|%s|%s|%s|%t",
    r.UserName,
    r.UserLocation,
    r.UserDescription,
    userCreated,
    r.UserFollowers,
    r.UserFriends,
    r.UserFavourites,
    r.UserVerified,
    date,
    r.Text,
    strings.Join(r.Hashtags, ","),
    r.Source,
    r.IsRetweet,
  )
}
