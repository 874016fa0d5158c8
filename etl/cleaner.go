package etl

import (
  "fmt"
  "sort"
  "strings"
  "time"
)

type CleanStats struct {
  In             int `json:"in"`
  Duplicates     int `json:"duplicates"`
  QualityRemoved int `json:"quality_removed"`
  Out            int `json:"out"`
}

// Cleaner runs the batch-level pass: repairs that need cross-record
// knowledge (duplicate detection, median imputation, the synthesized
// username counter). The clock is injectable for tests.
type Cleaner struct {
  Now func() time.Time
}

func NewCleaner() *Cleaner {
  return &Cleaner{
    Now: time.Now,
  }
}

func (c *Cleaner) Clean(records []*Record) ([]*Record, *CleanStats) {
  stats := &CleanStats{
    In: len(records),
  }

  seen := make(map[string]bool)
  batch := make([]*Record, 0, len(records))
  for _, record := range records {
    fingerprint := record.Fingerprint()
    if seen[fingerprint] {
      stats.Duplicates++
      continue
    }
    seen[fingerprint] = true
    batch = append(batch, record)
  }

  // The placeholder counter is batch-scoped: uniqueness of synthesized
  // names holds within one cleaning pass only.
  missing := 0
  for _, record := range batch {
    if strings.TrimSpace(record.UserName) == "" {
      missing++
      record.UserName = fmt.Sprintf("unknown_user_%d", missing)
    }
  }

  survivors := make([]*Record, 0, len(batch))
  for _, record := range batch {
    if record.Date == nil || record.Text == "" {
      stats.QualityRemoved++
      continue
    }
    survivors = append(survivors, record)
  }

  fallback := c.medianUserCreated(survivors)
  for _, record := range survivors {
    if record.UserCreated == nil {
      ts := fallback
      record.UserCreated = &ts
    }
    if record.UserFollowers < 0 {
      record.UserFollowers = 0
    }
    if record.UserFriends < 0 {
      record.UserFriends = 0
    }
    if record.UserFavourites < 0 {
      record.UserFavourites = 0
    }
  }

  stats.Out = len(survivors)
  return survivors, stats
}

// medianUserCreated returns the batch median of the present user_created
// values, or the current processing time if none are present.
func (c *Cleaner) medianUserCreated(records []*Record) time.Time {
  present := make([]time.Time, 0, len(records))
  for _, record := range records {
    if record.UserCreated != nil {
      present = append(present, *record.UserCreated)
    }
  }
  if len(present) == 0 {
    return c.Now()
  }
  sort.Slice(present, func(i, j int) bool {
    return present[i].Before(present[j])
  })
  mid := len(present) / 2
  if len(present)%2 == 1 {
    return present[mid]
  }
  lower := present[mid-1]
  upper := present[mid]
  return lower.Add(upper.Sub(lower) / 2)
}
