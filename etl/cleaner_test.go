package etl

import (
  "testing"
  "time"
)

func ts(value string) *time.Time {
  parsed, err := time.Parse("2006-01-02 15:04:05", value)
  if err != nil {
    panic(err)
  }
  return &parsed
}

func validRecord(name string, text string) *Record {
  return &Record{
    UserName:        name,
    UserLocation:    PlaceholderLocation,
    UserDescription: PlaceholderDescription,
    UserCreated:     ts("2015-01-01 00:00:00"),
    Date:            ts("2020-07-25 12:00:00"),
    Text:            text,
    Hashtags:        []string{},
    Source:          PlaceholderSource,
  }
}

func TestCleanRemovesExactDuplicates(t *testing.T) {
  a := validRecord("alice", "hello")
  b := validRecord("alice", "hello")
  c := validRecord("alice", "different text")
  out, stats := NewCleaner().Clean([]*Record{a, b, c})
  if len(out) != 2 {
    t.Fatalf("out = %d, want 2", len(out))
  }
  if stats.Duplicates != 1 {
    t.Errorf("Duplicates = %d, want 1", stats.Duplicates)
  }
}

func TestCleanSynthesizesUserNames(t *testing.T) {
  a := validRecord("", "first")
  b := validRecord("carol", "second")
  c := validRecord("", "third")
  out, _ := NewCleaner().Clean([]*Record{a, b, c})
  if len(out) != 3 {
    t.Fatalf("out = %d, want 3", len(out))
  }
  if out[0].UserName != "unknown_user_1" {
    t.Errorf("first synthesized name = %q", out[0].UserName)
  }
  if out[2].UserName != "unknown_user_2" {
    t.Errorf("second synthesized name = %q", out[2].UserName)
  }
}

func TestCleanDropsMandatoryViolations(t *testing.T) {
  a := validRecord("alice", "ok")
  b := validRecord("bob", "")
  c := validRecord("carol", "ok")
  c.Date = nil
  out, stats := NewCleaner().Clean([]*Record{a, b, c})
  if len(out) != 1 {
    t.Fatalf("out = %d, want 1", len(out))
  }
  if stats.QualityRemoved != 2 {
    t.Errorf("QualityRemoved = %d, want 2", stats.QualityRemoved)
  }
}

func TestCleanImputesMedianUserCreated(t *testing.T) {
  a := validRecord("alice", "a")
  a.UserCreated = ts("2010-01-01 00:00:00")
  b := validRecord("bob", "b")
  b.UserCreated = ts("2012-01-01 00:00:00")
  c := validRecord("carol", "c")
  c.UserCreated = ts("2020-01-01 00:00:00")
  d := validRecord("dave", "d")
  d.UserCreated = nil

  out, _ := NewCleaner().Clean([]*Record{a, b, c, d})
  if len(out) != 4 {
    t.Fatalf("out = %d, want 4", len(out))
  }
  if d.UserCreated == nil {
    t.Fatal("UserCreated not imputed")
  }
  if !d.UserCreated.Equal(*ts("2012-01-01 00:00:00")) {
    t.Errorf("imputed UserCreated = %v, want median 2012-01-01", d.UserCreated)
  }
}

func TestCleanImputesNowWhenNoUserCreatedPresent(t *testing.T) {
  now := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
  cleaner := &Cleaner{Now: func() time.Time { return now }}
  a := validRecord("alice", "a")
  a.UserCreated = nil
  out, _ := cleaner.Clean([]*Record{a})
  if out[0].UserCreated == nil || !out[0].UserCreated.Equal(now) {
    t.Errorf("UserCreated = %v, want %v", out[0].UserCreated, now)
  }
}

func TestCleanPostCondition(t *testing.T) {
  records := []*Record{
    validRecord("alice", "a"),
    validRecord("", "b"),
    validRecord("bob", ""),
    validRecord("carol", "c"),
  }
  records[3].UserFollowers = -10
  out, _ := NewCleaner().Clean(records)
  for _, record := range out {
    if record.Date == nil {
      t.Error("survivor with nil date")
    }
    if record.Text == "" {
      t.Error("survivor with empty text")
    }
    if record.UserName == "" {
      t.Error("survivor with empty user_name")
    }
    if record.UserFollowers < 0 || record.UserFriends < 0 || record.UserFavourites < 0 {
      t.Error("survivor with negative counters")
    }
  }
}

func TestCleanEndToEndScenario(t *testing.T) {
  rows := []Raw{
    {"user_name": "alice", "date": "2020-07-25 12:00:00", "text": "first"},
    {"user_name": "", "date": "2020-07-25 13:00:00", "text": "second"},
    {"user_name": "bob", "date": "", "text": "third"},
  }
  n := &Normalizer{}
  records := make([]*Record, 0, len(rows))
  for _, row := range rows {
    records = append(records, n.Normalize(row))
  }
  out, stats := NewCleaner().Clean(records)
  if len(out) != 2 {
    t.Fatalf("out = %d, want 2", len(out))
  }
  if out[1].UserName != "unknown_user_1" {
    t.Errorf("synthesized name = %q, want unknown_user_1", out[1].UserName)
  }
  if stats.QualityRemoved != 1 {
    t.Errorf("QualityRemoved = %d, want 1", stats.QualityRemoved)
  }
}
