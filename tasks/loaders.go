package tasks

import (
  "loader.local/tweet-loader/common"
  tasks "loader.local/tweet-loader/tasks/loaders"
)

type LoadersTask struct {
  AnsqContext *common.AnsqClientContext
  RecordsTask *tasks.RecordsTask
}

func NewLoadersTask(ansqContext *common.AnsqClientContext) *LoadersTask {
  return &LoadersTask{
    AnsqContext: ansqContext,
  }
}

func (t *LoadersTask) Records() *tasks.RecordsTask {
  if t.RecordsTask == nil {
    t.RecordsTask = tasks.NewRecordsTask(t.AnsqContext)
  }
  return t.RecordsTask
}
