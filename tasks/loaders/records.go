package loaders

import (
  "log"
  "time"

  "github.com/hibiken/asynq"

  "loader.local/tweet-loader/common"
  "loader.local/tweet-loader/config"
  jobs "loader.local/tweet-loader/queue/asynq/jobs/loaders"
  "loader.local/tweet-loader/repositories"
)

type RecordsTask struct {
  Job             *jobs.Records
  AnsqContext     *common.AnsqClientContext
  TasksRepository *repositories.TasksRepository
}

func NewRecordsTask(ansqContext *common.AnsqClientContext) *RecordsTask {
  return &RecordsTask{
    Job:         &jobs.Records{},
    AnsqContext: ansqContext,
    TasksRepository: &repositories.TasksRepository{
      Db: ansqContext.Db,
    },
  }
}

// Process enqueues pending load tasks, oldest first. Recently touched
// tasks are skipped so an in-flight load is not enqueued twice.
func (t *RecordsTask) Process(limit int) (err error) {
  log.Println("tasks loaders records process")
  tasks := t.TasksRepository.Ranking(
    []string{"id", "params", "timestamp"},
    map[string]interface{}{
      "action": config.TASK_ACTION_LOADERS_RECORDS,
      "status": config.TASK_STATUS_PENDING,
    },
    "timestamp",
    1,
    limit,
  )
  for _, task := range tasks {
    timestamp := time.Now().UnixMicro()
    if timestamp-task.Timestamp < 30000000 {
      continue
    }
    if job, err := t.Job.Process(task.ID); err == nil {
      t.AnsqContext.Conn.Enqueue(
        job,
        asynq.Queue(config.ASYNQ_QUEUE_LOADERS_RECORDS),
        asynq.MaxRetry(0),
        asynq.Timeout(30*time.Minute),
      )
    }
    t.TasksRepository.Update(task, "timestamp", timestamp)
  }
  return
}
