package etl

import (
  "math"
  "reflect"
  "testing"
  "time"
)

func TestParseBool(t *testing.T) {
  for _, value := range []string{"true", "1", "yes", "y", "t", "TRUE", "Yes", "T", " y "} {
    if !ParseBool(value) {
      t.Errorf("ParseBool(%q) = false, want true", value)
    }
  }
  for _, value := range []string{"", "false", "0", "no", "n", "maybe", "yess", "2"} {
    if ParseBool(value) {
      t.Errorf("ParseBool(%q) = true, want false", value)
    }
  }
}

func TestParseHashtagsLiteral(t *testing.T) {
  got := ParseHashtags("['AI', '#ml', '']")
  want := []string{"ai", "ml"}
  if !reflect.DeepEqual(got, want) {
    t.Errorf("ParseHashtags literal = %v, want %v", got, want)
  }
}

func TestParseHashtagsDoubleQuoted(t *testing.T) {
  got := ParseHashtags(`["Covid19", "#Vaccine"]`)
  want := []string{"covid19", "vaccine"}
  if !reflect.DeepEqual(got, want) {
    t.Errorf("ParseHashtags json = %v, want %v", got, want)
  }
}

func TestParseHashtagsFreeText(t *testing.T) {
  got := ParseHashtags("ai, ML, #data")
  want := []string{"ai", "ml", "data"}
  if !reflect.DeepEqual(got, want) {
    t.Errorf("ParseHashtags free text = %v, want %v", got, want)
  }
}

func TestParseHashtagsWhitespaceSeparated(t *testing.T) {
  got := ParseHashtags("#go #golang")
  want := []string{"go", "golang"}
  if !reflect.DeepEqual(got, want) {
    t.Errorf("ParseHashtags whitespace = %v, want %v", got, want)
  }
}

func TestParseHashtagsEmpty(t *testing.T) {
  for _, value := range []string{"", "   ", "[]", ",,,", "# #"} {
    if got := ParseHashtags(value); len(got) != 0 {
      t.Errorf("ParseHashtags(%q) = %v, want empty", value, got)
    }
  }
}

func TestParseHashtagsKeepsDuplicates(t *testing.T) {
  got := ParseHashtags("['go', 'GO']")
  want := []string{"go", "go"}
  if !reflect.DeepEqual(got, want) {
    t.Errorf("ParseHashtags duplicates = %v, want %v", got, want)
  }
}

func TestParseTimestamp(t *testing.T) {
  ts := ParseTimestamp("2020-07-25 12:27:21")
  if ts == nil {
    t.Fatal("ParseTimestamp returned nil for valid input")
  }
  want := time.Date(2020, 7, 25, 12, 27, 21, 0, time.UTC)
  if !ts.Equal(want) {
    t.Errorf("ParseTimestamp = %v, want %v", ts, want)
  }

  if ts := ParseTimestamp("2020-07-25"); ts == nil {
    t.Error("ParseTimestamp date-only returned nil")
  }
  if ts := ParseTimestamp(""); ts != nil {
    t.Errorf("ParseTimestamp empty = %v, want nil", ts)
  }
  if ts := ParseTimestamp("not a date"); ts != nil {
    t.Errorf("ParseTimestamp garbage = %v, want nil", ts)
  }
}

func TestParseNonNegativeInt(t *testing.T) {
  cases := map[string]int64{
    "":                    0,
    "42":                  42,
    "42.9":                42,
    "-17":                 0,
    "abc":                 0,
    " 100 ":               100,
    "1e3":                 1000,
    "1e300":               math.MaxInt64,
    "9223372036854775808": math.MaxInt64,
    "nan":                 0,
    "inf":                 0,
    "-inf":                0,
  }
  for value, want := range cases {
    if got := ParseNonNegativeInt(value); got != want {
      t.Errorf("ParseNonNegativeInt(%q) = %d, want %d", value, got, want)
    }
  }
}
