package commands

import (
  "log"
  "path/filepath"

  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "loader.local/tweet-loader/common"
  "loader.local/tweet-loader/config"
  "loader.local/tweet-loader/repositories"
)

type TasksHandler struct {
  Db         *gorm.DB
  Repository *repositories.TasksRepository
}

func NewTasksCommand() *cli.Command {
  var h TasksHandler
  return &cli.Command{
    Name:  "tasks",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = TasksHandler{
        Db: common.NewDB(),
      }
      h.Repository = &repositories.TasksRepository{
        Db: h.Db,
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "apply",
        Usage: "",
        Action: func(c *cli.Context) error {
          path := c.Args().Get(0)
          if path == "" {
            log.Fatal("path is empty")
            return nil
          }
          if err := h.Apply(path); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *TasksHandler) Apply(path string) error {
  absolute, err := filepath.Abs(path)
  if err != nil {
    return err
  }
  log.Println("tasks apply", absolute)
  return h.Repository.Apply(
    absolute,
    config.TASK_ACTION_LOADERS_RECORDS,
    map[string]interface{}{
      "path": absolute,
    },
  )
}
