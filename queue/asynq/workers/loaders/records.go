package loaders

import (
  "context"
  "encoding/json"
  "fmt"
  "log"
  "time"

  "github.com/hibiken/asynq"

  "loader.local/tweet-loader/common"
  "loader.local/tweet-loader/config"
  "loader.local/tweet-loader/etl"
  "loader.local/tweet-loader/repositories"
  loadersRepositories "loader.local/tweet-loader/repositories/loaders"
)

type Records struct {
  AnsqContext     *common.AnsqServerContext
  TasksRepository *repositories.TasksRepository
}

type ProcessPayload struct {
  TaskID string `json:"task_id"`
}

func NewRecords(ansqContext *common.AnsqServerContext) *Records {
  h := &Records{
    AnsqContext: ansqContext,
  }
  h.TasksRepository = &repositories.TasksRepository{
    Db: h.AnsqContext.Db,
  }
  return h
}

func (h *Records) Process(ctx context.Context, t *asynq.Task) error {
  var payload ProcessPayload
  json.Unmarshal(t.Payload(), &payload)

  mutex := common.NewMutex(
    h.AnsqContext.Rdb,
    h.AnsqContext.Ctx,
    fmt.Sprintf(config.LOCKS_TASKS_LOADERS_RECORDS_PROCESS, payload.TaskID),
  )
  if !mutex.Lock(30 * time.Minute) {
    return nil
  }
  defer mutex.Unlock()

  task, err := h.TasksRepository.Find(payload.TaskID)
  if err != nil {
    log.Println("load task can not be found", err)
    return nil
  }
  if task.Status != config.TASK_STATUS_PENDING {
    return nil
  }

  path, ok := task.Params["path"].(string)
  if !ok || path == "" {
    h.TasksRepository.Update(task, "status", config.TASK_STATUS_FAILED)
    log.Println("load task path is empty", task.ID)
    return nil
  }

  h.TasksRepository.Updates(task, map[string]interface{}{
    "status":    config.TASK_STATUS_RUNNING,
    "timestamp": time.Now().UnixMicro(),
  })

  batchSize := common.GetEnvInt("LOADER_BATCH_SIZE")
  if batchSize == 0 {
    batchSize = config.LOADS_BATCH_SIZE
  }

  relational := &loadersRepositories.RecordsRepository{
    Db:   h.AnsqContext.Db,
    Nats: h.AnsqContext.Nats,
  }
  documents := &repositories.DocumentsRepository{
    Db: h.AnsqContext.Mongo,
  }

  report, err := etl.Load(ctx, path, batchSize, relational, documents)
  if err != nil {
    h.TasksRepository.Update(task, "status", config.TASK_STATUS_FAILED)
    log.Println("load task failed", task.ID, err)
    return err
  }

  h.TasksRepository.Updates(task, map[string]interface{}{
    "status": config.TASK_STATUS_COMPLETED,
    "stats":  common.JSONMap(report),
  })
  return nil
}

func (h *Records) Register() error {
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_LOADERS_RECORDS_PROCESS, h.Process)
  return nil
}
