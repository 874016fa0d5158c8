package etl

import (
  "encoding/csv"
  "errors"
  "fmt"
  "io"
  "os"

  "github.com/h2non/filetype"
)

// ReadFile loads a tabular file into raw records. Every expected column
// is present in each record, absent ones as empty strings. Files that
// match a known binary signature are rejected before parsing.
func ReadFile(path string) ([]Raw, error) {
  f, err := os.Open(path)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  head := make([]byte, 262)
  n, err := f.Read(head)
  if err != nil && !errors.Is(err, io.EOF) {
    return nil, err
  }
  if kind, _ := filetype.Match(head[:n]); kind != filetype.Unknown {
    return nil, fmt.Errorf("%s is a %s file, not tabular text", path, kind.Extension)
  }
  if _, err = f.Seek(0, io.SeekStart); err != nil {
    return nil, err
  }

  return ReadRecords(f)
}

// ReadRecords parses CSV content from an already-open stream.
func ReadRecords(r io.Reader) ([]Raw, error) {
  reader := csv.NewReader(r)
  reader.FieldsPerRecord = -1
  reader.LazyQuotes = true

  header, err := reader.Read()
  if err != nil {
    if errors.Is(err, io.EOF) {
      return []Raw{}, nil
    }
    return nil, err
  }

  records := []Raw{}
  for {
    row, err := reader.Read()
    if errors.Is(err, io.EOF) {
      break
    }
    if err != nil {
      return nil, err
    }
    record := make(Raw, len(Columns))
    for _, column := range Columns {
      record[column] = ""
    }
    for i, value := range row {
      if i < len(header) {
        record[header[i]] = value
      }
    }
    records = append(records, record)
  }
  return records, nil
}
