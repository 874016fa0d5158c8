package commands

import (
  "context"
  "errors"
  "log"
  "os/signal"
  "syscall"

  "github.com/nats-io/nats.go"
  "github.com/urfave/cli/v2"
  "go.mongodb.org/mongo-driver/mongo"
  "gorm.io/gorm"

  "loader.local/tweet-loader/common"
  "loader.local/tweet-loader/config"
  "loader.local/tweet-loader/etl"
  "loader.local/tweet-loader/repositories"
  loadersRepositories "loader.local/tweet-loader/repositories/loaders"
)

type LoadsHandler struct {
  Db    *gorm.DB
  Mongo *mongo.Database
  Nats  *nats.Conn
  Ctx   context.Context
}

func NewLoadsCommand() *cli.Command {
  var h LoadsHandler
  return &cli.Command{
    Name:  "loads",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = LoadsHandler{
        Db:   common.NewDB(),
        Nats: common.NewNats(),
        Ctx:  context.Background(),
      }
      h.Mongo = common.NewMongo(h.Ctx)
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "run",
        Usage: "",
        Action: func(c *cli.Context) error {
          path := c.Args().Get(0)
          if path == "" {
            log.Fatal("path is empty")
            return nil
          }
          if err := h.Run(path); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *LoadsHandler) Run(path string) error {
  log.Println("loading", path)

  // An interrupt finishes the current batch and stops at the flush
  // boundary.
  ctx, stop := signal.NotifyContext(h.Ctx, syscall.SIGINT, syscall.SIGTERM)
  defer stop()

  batchSize := common.GetEnvInt("LOADER_BATCH_SIZE")
  if batchSize == 0 {
    batchSize = config.LOADS_BATCH_SIZE
  }

  relational := &loadersRepositories.RecordsRepository{
    Db:   h.Db,
    Nats: h.Nats,
  }
  documents := &repositories.DocumentsRepository{
    Db: h.Mongo,
  }

  report, err := etl.Load(ctx, path, batchSize, relational, documents)
  if err != nil && !errors.Is(err, context.Canceled) {
    return err
  }
  log.Println(
    "load finished:",
    report.Processed, "processed,",
    report.Failed, "failed,",
    report.Flushes, "flushes,",
    report.DocumentsAcked, "documents acked, in",
    report.Elapsed,
  )
  return nil
}
