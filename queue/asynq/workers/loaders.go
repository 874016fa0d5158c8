package workers

import (
  "loader.local/tweet-loader/common"
  workers "loader.local/tweet-loader/queue/asynq/workers/loaders"
)

type Loaders struct {
  AnsqContext *common.AnsqServerContext
}

func NewLoaders(ansqContext *common.AnsqServerContext) *Loaders {
  return &Loaders{
    AnsqContext: ansqContext,
  }
}

func (h *Loaders) Register() error {
  workers.NewRecords(h.AnsqContext).Register()
  return nil
}
