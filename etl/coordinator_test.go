package etl

import (
  "context"
  "errors"
  "fmt"
  "testing"
)

type fakeRelational struct {
  begun     bool
  commits   int
  nextID    int
  users     map[string]string
  sources   map[string]string
  hashtags  map[string]string
  tweets    []string
  links     map[string]bool
  failUsers map[string]bool

  snapTweets   int
  snapUsers    map[string]string
  snapSources  map[string]string
  snapHashtags map[string]string
  snapLinks    map[string]bool
}

func newFakeRelational() *fakeRelational {
  return &fakeRelational{
    users:     map[string]string{},
    sources:   map[string]string{},
    hashtags:  map[string]string{},
    links:     map[string]bool{},
    failUsers: map[string]bool{},
  }
}

func copyStrings(in map[string]string) map[string]string {
  out := make(map[string]string, len(in))
  for key, value := range in {
    out[key] = value
  }
  return out
}

func copyBools(in map[string]bool) map[string]bool {
  out := make(map[string]bool, len(in))
  for key, value := range in {
    out[key] = value
  }
  return out
}

func (f *fakeRelational) id() string {
  f.nextID++
  return fmt.Sprintf("id_%d", f.nextID)
}

func (f *fakeRelational) Begin() error {
  if f.begun {
    return errors.New("transaction already open")
  }
  f.begun = true
  return nil
}

func (f *fakeRelational) Savepoint(name string) error {
  f.snapTweets = len(f.tweets)
  f.snapUsers = copyStrings(f.users)
  f.snapSources = copyStrings(f.sources)
  f.snapHashtags = copyStrings(f.hashtags)
  f.snapLinks = copyBools(f.links)
  return nil
}

func (f *fakeRelational) RollbackTo(name string) error {
  f.tweets = f.tweets[:f.snapTweets]
  f.users = f.snapUsers
  f.sources = f.snapSources
  f.hashtags = f.snapHashtags
  f.links = f.snapLinks
  return nil
}

func (f *fakeRelational) UpsertUser(record *Record) (string, error) {
  if f.failUsers[record.UserName] {
    return "", errors.New("forced failure")
  }
  if id, ok := f.users[record.UserName]; ok {
    return id, nil
  }
  id := f.id()
  f.users[record.UserName] = id
  return id, nil
}

func (f *fakeRelational) ResolveOrCreateSource(name string) (string, error) {
  if id, ok := f.sources[name]; ok {
    return id, nil
  }
  id := f.id()
  f.sources[name] = id
  return id, nil
}

func (f *fakeRelational) InsertTweet(record *Record, userID string, sourceID string) (string, error) {
  id := f.id()
  f.tweets = append(f.tweets, id)
  return id, nil
}

func (f *fakeRelational) ResolveOrCreateHashtag(tag string) (string, error) {
  if id, ok := f.hashtags[tag]; ok {
    return id, nil
  }
  id := f.id()
  f.hashtags[tag] = id
  return id, nil
}

func (f *fakeRelational) LinkTweetHashtag(tweetID string, hashtagID string) error {
  f.links[tweetID+"/"+hashtagID] = true
  return nil
}

func (f *fakeRelational) Commit() error {
  if !f.begun {
    return errors.New("commit without transaction")
  }
  f.begun = false
  f.commits++
  return nil
}

type fakeDocuments struct {
  batches [][]TweetDocument
}

func (f *fakeDocuments) BulkInsert(ctx context.Context, documents []TweetDocument) (int64, error) {
  batch := make([]TweetDocument, len(documents))
  copy(batch, documents)
  f.batches = append(f.batches, batch)
  return int64(len(documents)), nil
}

func newCoordinator(relational *fakeRelational, documents *fakeDocuments, batchSize int) *Coordinator {
  return &Coordinator{
    Relational: &RelationalSink{Executor: relational},
    Documents:  &DocumentSink{Executor: documents},
    BatchSize:  batchSize,
  }
}

func TestCoordinatorFlushBoundaries(t *testing.T) {
  relational := newFakeRelational()
  documents := &fakeDocuments{}
  coordinator := newCoordinator(relational, documents, 2)

  records := make([]*Record, 0, 5)
  for i := 0; i < 5; i++ {
    records = append(records, validRecord(fmt.Sprintf("user_%d", i), fmt.Sprintf("text %d", i)))
  }
  report, err := coordinator.Run(context.Background(), records)
  if err != nil {
    t.Fatal(err)
  }
  if report.Flushes != 3 {
    t.Errorf("Flushes = %d, want 3", report.Flushes)
  }
  if relational.commits != 3 {
    t.Errorf("commits = %d, want 3", relational.commits)
  }
  if len(documents.batches) != 3 {
    t.Fatalf("batches = %d, want 3", len(documents.batches))
  }
  for i, want := range []int{2, 2, 1} {
    if len(documents.batches[i]) != want {
      t.Errorf("batch %d size = %d, want %d", i, len(documents.batches[i]), want)
    }
  }
  if report.DocumentsAcked != 5 {
    t.Errorf("DocumentsAcked = %d, want 5", report.DocumentsAcked)
  }
}

func TestCoordinatorRelationalIdempotence(t *testing.T) {
  relational := newFakeRelational()
  records := []*Record{
    validRecord("alice", "first"),
    validRecord("bob", "second"),
  }
  for run := 0; run < 2; run++ {
    documents := &fakeDocuments{}
    coordinator := newCoordinator(relational, documents, 10)
    if _, err := coordinator.Run(context.Background(), records); err != nil {
      t.Fatal(err)
    }
  }
  if len(relational.users) != 2 {
    t.Errorf("users = %d, want 2", len(relational.users))
  }
  if len(relational.sources) != 1 {
    t.Errorf("sources = %d, want 1", len(relational.sources))
  }
  if len(relational.tweets) != 4 {
    t.Errorf("tweets = %d, want 4 (write-once)", len(relational.tweets))
  }
}

func TestCoordinatorHashtagLinks(t *testing.T) {
  relational := newFakeRelational()
  documents := &fakeDocuments{}
  coordinator := newCoordinator(relational, documents, 10)

  record := validRecord("alice", "tagged")
  record.Hashtags = []string{"ai", "ml", "ai"}
  if _, err := coordinator.Run(context.Background(), []*Record{record}); err != nil {
    t.Fatal(err)
  }
  if len(relational.hashtags) != 2 {
    t.Errorf("hashtags = %d, want 2", len(relational.hashtags))
  }
  if len(relational.links) != 2 {
    t.Errorf("links = %d, want 2", len(relational.links))
  }
  if len(documents.batches) != 1 || len(documents.batches[0]) != 1 {
    t.Fatal("expected one flushed document")
  }
  got := documents.batches[0][0].Hashtags
  if len(got) != 2 || got[0] != "ai" || got[1] != "ml" {
    t.Errorf("document hashtags = %v, want [ai ml]", got)
  }
}

func TestCoordinatorPerRecordFailure(t *testing.T) {
  relational := newFakeRelational()
  relational.failUsers["bob"] = true
  documents := &fakeDocuments{}
  coordinator := newCoordinator(relational, documents, 10)

  records := []*Record{
    validRecord("alice", "first"),
    validRecord("bob", "second"),
    validRecord("carol", "third"),
  }
  report, err := coordinator.Run(context.Background(), records)
  if err != nil {
    t.Fatal(err)
  }
  if report.Failed != 1 {
    t.Errorf("Failed = %d, want 1", report.Failed)
  }
  if report.Processed != 3 {
    t.Errorf("Processed = %d, want 3", report.Processed)
  }
  if len(relational.tweets) != 2 {
    t.Errorf("tweets = %d, want 2", len(relational.tweets))
  }
  if _, ok := relational.users["bob"]; ok {
    t.Error("failed record left rows behind")
  }
  // The document store still receives the record that failed
  // relationally; the two sinks are independent.
  if report.DocumentsAcked != 3 {
    t.Errorf("DocumentsAcked = %d, want 3", report.DocumentsAcked)
  }
}

func TestCoordinatorStopsAtFlushBoundary(t *testing.T) {
  relational := newFakeRelational()
  documents := &fakeDocuments{}
  coordinator := newCoordinator(relational, documents, 2)

  ctx, cancel := context.WithCancel(context.Background())
  cancel()

  records := make([]*Record, 0, 5)
  for i := 0; i < 5; i++ {
    records = append(records, validRecord(fmt.Sprintf("user_%d", i), "text"))
  }
  report, err := coordinator.Run(ctx, records)
  if !errors.Is(err, context.Canceled) {
    t.Fatalf("err = %v, want context.Canceled", err)
  }
  if report.Processed != 2 {
    t.Errorf("Processed = %d, want 2", report.Processed)
  }
  if report.Flushes != 1 {
    t.Errorf("Flushes = %d, want 1", report.Flushes)
  }
  if relational.begun {
    t.Error("transaction left open after stop")
  }
}
