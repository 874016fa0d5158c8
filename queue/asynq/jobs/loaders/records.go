package loaders

import (
  "encoding/json"

  "github.com/hibiken/asynq"

  "loader.local/tweet-loader/config"
)

type Records struct{}

type ProcessPayload struct {
  TaskID string `json:"task_id"`
}

func (h *Records) Process(taskID string) (*asynq.Task, error) {
  payload, err := json.Marshal(ProcessPayload{taskID})
  if err != nil {
    return nil, err
  }
  return asynq.NewTask(config.ASYNQ_JOBS_LOADERS_RECORDS_PROCESS, payload), nil
}
