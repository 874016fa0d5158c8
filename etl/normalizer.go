package etl

import (
  "strings"

  "github.com/PuerkitoBio/goquery"
)

// Placeholders substituted for absent optional text fields.
const (
  PlaceholderLocation    = "unknown"
  PlaceholderDescription = "No description"
  PlaceholderSource      = "Unknown source"
)

// Normalizer repairs field types one record at a time. It never drops a
// record; mandatory-field enforcement happens in the batch cleaner.
type Normalizer struct{}

func (n *Normalizer) Normalize(raw Raw) *Record {
  record := &Record{
    UserName:        strings.TrimSpace(raw["user_name"]),
    UserLocation:    strings.TrimSpace(raw["user_location"]),
    UserDescription: strings.TrimSpace(raw["user_description"]),
    UserCreated:     ParseTimestamp(raw["user_created"]),
    UserFollowers:   ParseNonNegativeInt(raw["user_followers"]),
    UserFriends:     ParseNonNegativeInt(raw["user_friends"]),
    UserFavourites:  ParseNonNegativeInt(raw["user_favourites"]),
    UserVerified:    ParseBool(raw["user_verified"]),
    Date:            ParseTimestamp(raw["date"]),
    Text:            strings.TrimSpace(raw["text"]),
    Hashtags:        ParseHashtags(raw["hashtags"]),
    Source:          StripMarkup(raw["source"]),
    IsRetweet:       ParseBool(raw["is_retweet"]),
  }
  if record.UserLocation == "" {
    record.UserLocation = PlaceholderLocation
  }
  if record.UserDescription == "" {
    record.UserDescription = PlaceholderDescription
  }
  if record.Source == "" {
    record.Source = PlaceholderSource
  }
  return record
}

// StripMarkup drops HTML-like tags from a field value, keeping the text
// content. The source column commonly arrives as an anchor element.
func StripMarkup(value string) string {
  s := strings.TrimSpace(value)
  if !strings.Contains(s, "<") {
    return s
  }
  doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
  if err != nil {
    return s
  }
  return strings.TrimSpace(doc.Text())
}
