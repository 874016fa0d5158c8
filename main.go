package main

import (
  "log"
  "os"
  "path"
  "path/filepath"

  "loader.local/tweet-loader/commands"
  "github.com/joho/godotenv"
  "github.com/urfave/cli/v2"
)

func main() {
  if err := godotenv.Load(path.Join(filepath.Dir(os.Args[0]), ".env")); err != nil {
    dir, _ := os.Getwd()
    if err = godotenv.Load(path.Join(dir, ".env")); err != nil {
      panic(err)
    }
  }

  app := &cli.App{
    Name:  "tweet loader commands",
    Usage: "",
    Action: func(c *cli.Context) error {
      if c.Command.Action == nil {
        cli.ShowAppHelp(c)
      } else {
        log.Fatalln("error", c.Err())
      }
      return nil
    },
    Commands: []*cli.Command{
      commands.NewDbCommand(),
      commands.NewLoadsCommand(),
      commands.NewTasksCommand(),
      commands.NewQueueCommand(),
      commands.NewCronCommand(),
      commands.NewApiCommand(),
      commands.NewAdminsCommand(),
    },
    Version: "0.0.0",
  }

  err := app.Run(os.Args)
  if err != nil {
    log.Fatalln("error", err)
  }
}
