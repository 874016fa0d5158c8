package asynq

import (
  "loader.local/tweet-loader/common"
  "loader.local/tweet-loader/queue/asynq/workers"
)

type Workers struct {
  AnsqContext *common.AnsqServerContext
}

func NewWorkers(ansqContext *common.AnsqServerContext) *Workers {
  return &Workers{
    AnsqContext: ansqContext,
  }
}

func (h *Workers) Register() error {
  workers.NewLoaders(h.AnsqContext).Register()
  return nil
}
