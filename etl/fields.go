package etl

import (
  "math"
  "strconv"
  "strings"
  "time"
  "unicode"

  "github.com/tidwall/gjson"
)

// Field parsers are total: malformed input maps to a safe default,
// never to an error.

var truthy = map[string]bool{
  "true": true,
  "1":    true,
  "yes":  true,
  "y":    true,
  "t":    true,
}

func ParseBool(value string) bool {
  return truthy[strings.ToLower(strings.TrimSpace(value))]
}

var timestampLayouts = []string{
  "2006-01-02 15:04:05",
  time.RFC3339,
  "2006-01-02T15:04:05",
  "2006-01-02 15:04",
  "2006-01-02",
  "2006/01/02 15:04:05",
  "01/02/2006 15:04",
  "01/02/2006",
}

// ParseTimestamp returns nil for absent or unparseable input. Absence is
// reported as nil, not as a sentinel date, so callers decide the fallback.
func ParseTimestamp(value string) *time.Time {
  s := strings.TrimSpace(value)
  if s == "" {
    return nil
  }
  for _, layout := range timestampLayouts {
    if ts, err := time.Parse(layout, s); err == nil {
      return &ts
    }
  }
  return nil
}

func ParseNonNegativeInt(value string) int64 {
  s := strings.TrimSpace(value)
  if s == "" {
    return 0
  }
  number, err := strconv.ParseFloat(s, 64)
  if err != nil || math.IsNaN(number) {
    return 0
  }
  if number < 0 {
    return 0
  }
  // int64 conversion of an out-of-range float is implementation-defined
  // and comes out negative on amd64.
  if number >= math.MaxInt64 {
    return math.MaxInt64
  }
  return int64(number)
}

// ParseHashtags accepts either list literal syntax ("['AI', '#ml']",
// '["AI"]') or free text split on commas and whitespace. Tags come out
// trimmed, lowercased, without the leading '#', empties dropped, order
// preserved. Total parse failure yields an empty list.
func ParseHashtags(value string) []string {
  tags := []string{}
  s := strings.TrimSpace(value)
  if s == "" {
    return tags
  }
  if strings.HasPrefix(s, "[") {
    result := gjson.Parse(strings.ReplaceAll(s, "'", `"`))
    if result.IsArray() {
      for _, item := range result.Array() {
        if tag := cleanTag(item.String()); tag != "" {
          tags = append(tags, tag)
        }
      }
      return tags
    }
    s = strings.Trim(s, "[]")
  }
  s = strings.ReplaceAll(s, "#", " ")
  tokens := strings.FieldsFunc(s, func(r rune) bool {
    return r == ',' || unicode.IsSpace(r)
  })
  for _, token := range tokens {
    if tag := cleanTag(token); tag != "" {
      tags = append(tags, tag)
    }
  }
  return tags
}

func cleanTag(value string) string {
  tag := strings.TrimSpace(value)
  tag = strings.Trim(tag, `'"`)
  tag = strings.TrimPrefix(tag, "#")
  return strings.ToLower(strings.TrimSpace(tag))
}
