package etl

import (
  "context"
  "log"
  "time"
)

type Report struct {
  Processed      int           `json:"processed"`
  Flushes        int           `json:"flushes"`
  Failed         int           `json:"failed"`
  DocumentsAcked int64         `json:"documents_acked"`
  Elapsed        time.Duration `json:"elapsed"`
  Clean          *CleanStats   `json:"clean,omitempty"`
}

// Coordinator drives record-by-record submission to both sinks and owns
// the flush boundaries: the relational transaction commits and the
// accumulated documents go out as one bulk write every BatchSize records
// and once more at end-of-stream.
type Coordinator struct {
  Relational *RelationalSink
  Documents  *DocumentSink
  BatchSize  int
}

func (c *Coordinator) batchSize() int {
  if c.BatchSize > 0 {
    return c.BatchSize
  }
  return 1000
}

// Run processes the cleaned batch. Per-record relational failures are
// counted and skipped; flush-level failures abort the run. A cancelled
// context stops the run at the next flush boundary, never mid-record.
func (c *Coordinator) Run(ctx context.Context, records []*Record) (*Report, error) {
  report := &Report{}
  started := time.Now()
  defer func() {
    report.Elapsed = time.Since(started)
  }()

  pending := 0
  begun := false
  for _, record := range records {
    if !begun {
      if err := c.Relational.Begin(); err != nil {
        return report, err
      }
      begun = true
    }
    if err := c.Relational.Write(record); err != nil {
      report.Failed++
      log.Println("relational write failed", record.UserName, err)
    }
    c.Documents.Add(record)
    report.Processed++
    pending++

    if pending >= c.batchSize() {
      if err := c.flush(ctx, report); err != nil {
        return report, err
      }
      begun = false
      pending = 0
      if err := ctx.Err(); err != nil {
        log.Println("stopping at flush boundary", report.Processed)
        return report, err
      }
    }
  }
  if begun {
    if err := c.flush(ctx, report); err != nil {
      return report, err
    }
  }
  return report, nil
}

func (c *Coordinator) flush(ctx context.Context, report *Report) error {
  if err := c.Relational.Commit(); err != nil {
    return err
  }
  acked, err := c.Documents.Flush(ctx)
  if err != nil {
    return err
  }
  report.DocumentsAcked += acked
  report.Flushes++
  log.Println("flush", report.Flushes, "processed", report.Processed, "documents", report.DocumentsAcked)
  return nil
}
