package etl

import (
  "os"
  "path/filepath"
  "strings"
  "testing"
)

func TestReadRecordsFillsMissingColumns(t *testing.T) {
  input := "user_name,date,text\nalice,2020-07-25 12:00:00,hello\n"
  records, err := ReadRecords(strings.NewReader(input))
  if err != nil {
    t.Fatal(err)
  }
  if len(records) != 1 {
    t.Fatalf("records = %d, want 1", len(records))
  }
  record := records[0]
  for _, column := range Columns {
    if _, ok := record[column]; !ok {
      t.Errorf("column %q missing", column)
    }
  }
  if record["user_name"] != "alice" {
    t.Errorf("user_name = %q", record["user_name"])
  }
  if record["hashtags"] != "" {
    t.Errorf("hashtags = %q, want empty", record["hashtags"])
  }
}

func TestReadRecordsEmptyInput(t *testing.T) {
  records, err := ReadRecords(strings.NewReader(""))
  if err != nil {
    t.Fatal(err)
  }
  if len(records) != 0 {
    t.Errorf("records = %d, want 0", len(records))
  }
}

func TestReadRecordsRaggedRows(t *testing.T) {
  input := "user_name,date,text\nalice,2020-07-25 12:00:00\n"
  records, err := ReadRecords(strings.NewReader(input))
  if err != nil {
    t.Fatal(err)
  }
  if len(records) != 1 {
    t.Fatalf("records = %d, want 1", len(records))
  }
  if records[0]["text"] != "" {
    t.Errorf("text = %q, want empty", records[0]["text"])
  }
}

func TestReadFileRejectsBinary(t *testing.T) {
  path := filepath.Join(t.TempDir(), "input.csv")
  payload := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
  if err := os.WriteFile(path, payload, 0644); err != nil {
    t.Fatal(err)
  }
  if _, err := ReadFile(path); err == nil {
    t.Fatal("expected binary file to be rejected")
  }
}

func TestReadFileRoundTrip(t *testing.T) {
  path := filepath.Join(t.TempDir(), "input.csv")
  input := "user_name,date,text\nalice,2020-07-25 12:00:00,hello\nbob,2020-07-26 09:30:00,world\n"
  if err := os.WriteFile(path, []byte(input), 0644); err != nil {
    t.Fatal(err)
  }
  records, err := ReadFile(path)
  if err != nil {
    t.Fatal(err)
  }
  if len(records) != 2 {
    t.Errorf("records = %d, want 2", len(records))
  }
}
