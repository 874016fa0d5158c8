package v1

import (
  "net/http"
  "strconv"
  "strings"

  "github.com/go-chi/chi/v5"

  "loader.local/tweet-loader/api"
  "loader.local/tweet-loader/common"
  "loader.local/tweet-loader/config"
  "loader.local/tweet-loader/repositories"
  jwtRepositories "loader.local/tweet-loader/repositories/jwt"
)

type LoadsHandler struct {
  ApiContext      *common.ApiContext
  Response        *api.ResponseHandler
  TasksRepository *repositories.TasksRepository
  TokenRepository *jwtRepositories.TokenRepository
}

type LoadInfo struct {
  ID        string                 `json:"id"`
  Name      string                 `json:"name"`
  Status    int                    `json:"status"`
  Stats     map[string]interface{} `json:"stats"`
  CreatedAt int64                  `json:"created_at"`
  UpdatedAt int64                  `json:"updated_at"`
}

func NewLoadsRouter(apiContext *common.ApiContext) http.Handler {
  h := LoadsHandler{
    ApiContext: apiContext,
  }
  h.TasksRepository = &repositories.TasksRepository{
    Db: h.ApiContext.Db,
  }
  h.TokenRepository = &jwtRepositories.TokenRepository{}

  r := chi.NewRouter()
  r.Get("/", h.Listings)
  return r
}

func (h *LoadsHandler) authorize(r *http.Request) bool {
  token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
  if token == "" {
    return false
  }
  _, err := h.TokenRepository.Uid(token)
  return err == nil
}

func (h *LoadsHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  if !h.authorize(r) {
    h.Response.Error(http.StatusUnauthorized, 1002, "token not valid")
    return
  }

  var current int
  if !r.URL.Query().Has("current") {
    current = 1
  } else {
    current, _ = strconv.Atoi(r.URL.Query().Get("current"))
  }
  if current < 1 {
    h.Response.Error(http.StatusForbidden, 1004, "current not valid")
    return
  }

  var pageSize int
  if !r.URL.Query().Has("page_size") {
    pageSize = 50
  } else {
    pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
  }
  if pageSize < 1 || pageSize > 100 {
    h.Response.Error(http.StatusForbidden, 1004, "page size not valid")
    return
  }

  conditions := map[string]interface{}{
    "action": config.TASK_ACTION_LOADERS_RECORDS,
  }
  if r.URL.Query().Get("status") != "" {
    status, _ := strconv.Atoi(r.URL.Query().Get("status"))
    conditions["status"] = status
  }

  total := h.TasksRepository.Count(conditions)
  tasks := h.TasksRepository.Listings(conditions, current, pageSize)

  data := make([]*LoadInfo, 0, len(tasks))
  for _, task := range tasks {
    data = append(data, &LoadInfo{
      ID:        task.ID,
      Name:      task.Name,
      Status:    task.Status,
      Stats:     task.Stats,
      CreatedAt: task.CreatedAt.Unix(),
      UpdatedAt: task.UpdatedAt.Unix(),
    })
  }

  h.Response.Pagenate(data, total, current, pageSize)
}
