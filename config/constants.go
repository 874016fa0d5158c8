package config

const (
  LOADS_BATCH_SIZE        = 1000
  LOADS_TASKS_FLUSH_LIMIT = 5

  TASK_ACTION_LOADERS_RECORDS = 1

  TASK_STATUS_PENDING   = 1
  TASK_STATUS_RUNNING   = 2
  TASK_STATUS_COMPLETED = 3
  TASK_STATUS_FAILED    = 4

  ASYNQ_QUEUE_LOADERS_RECORDS        = "loaders.records"
  ASYNQ_JOBS_LOADERS_RECORDS_PROCESS = "loaders:records:process"

  NATS_LOADS_FLUSH = "loads.flush"

  LOCKS_TASKS_LOADERS_RECORDS_PROCESS = "locks:tasks:loaders:records:process:%v"

  REDIS_KEY_TWEETS_COUNT = "api:tweets:count:%v"

  MONGO_COLLECTION_TWEETS = "tweets"
)
