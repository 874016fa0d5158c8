package etl

import (
  "context"
  "log"
)

// Load runs the whole pipeline over one file: read, normalize per
// record, clean the batch, then feed both sinks through the coordinator.
func Load(
  ctx context.Context,
  path string,
  batchSize int,
  relational RelationalExecutor,
  documents DocumentExecutor,
) (*Report, error) {
  raws, err := ReadFile(path)
  if err != nil {
    return nil, err
  }

  normalizer := &Normalizer{}
  records := make([]*Record, 0, len(raws))
  for _, raw := range raws {
    records = append(records, normalizer.Normalize(raw))
  }

  cleaned, stats := NewCleaner().Clean(records)
  log.Println(
    "cleaned batch:",
    stats.In, "in,",
    stats.Duplicates, "duplicates,",
    stats.QualityRemoved, "quality removals,",
    stats.Out, "out",
  )

  coordinator := &Coordinator{
    Relational: &RelationalSink{Executor: relational},
    Documents:  &DocumentSink{Executor: documents},
    BatchSize:  batchSize,
  }
  report, err := coordinator.Run(ctx, cleaned)
  if report != nil {
    report.Clean = stats
  }
  return report, err
}
