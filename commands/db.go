package commands

import (
  "context"
  "log"

  "github.com/urfave/cli/v2"
  "go.mongodb.org/mongo-driver/mongo"
  "gorm.io/gorm"

  "loader.local/tweet-loader/common"
  "loader.local/tweet-loader/models"
  "loader.local/tweet-loader/repositories"
)

type DbHandler struct {
  Db    *gorm.DB
  Mongo *mongo.Database
  Ctx   context.Context
}

func NewDbCommand() *cli.Command {
  var h DbHandler
  return &cli.Command{
    Name:  "db",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = DbHandler{
        Db:  common.NewDB(),
        Ctx: context.Background(),
      }
      h.Mongo = common.NewMongo(h.Ctx)
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "migrate",
        Usage: "",
        Action: func(c *cli.Context) error {
          if err := h.migrate(); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *DbHandler) migrate() error {
  log.Println("process migrator")
  h.Db.AutoMigrate(
    &models.User{},
    &models.Source{},
    &models.Tweet{},
    &models.Hashtag{},
    &models.TweetHashtag{},
    &models.Task{},
    &models.Admin{},
  )
  documents := &repositories.DocumentsRepository{
    Db: h.Mongo,
  }
  return documents.Migrate(h.Ctx)
}
