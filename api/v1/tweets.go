package v1

import (
  "crypto/md5"
  "encoding/hex"
  "fmt"
  "net/http"
  "strconv"
  "time"

  "github.com/go-chi/chi/v5"

  "loader.local/tweet-loader/api"
  "loader.local/tweet-loader/common"
  "loader.local/tweet-loader/config"
  "loader.local/tweet-loader/repositories"
)

type TweetsHandler struct {
  ApiContext      *common.ApiContext
  Response        *api.ResponseHandler
  Repository      *repositories.TweetsRepository
  UsersRepository *repositories.UsersRepository
}

type TweetInfo struct {
  ID        string `json:"id"`
  UserID    string `json:"user_id"`
  SourceID  string `json:"source_id"`
  Date      int64  `json:"date"`
  Text      string `json:"text"`
  IsRetweet bool   `json:"is_retweet"`
}

func NewTweetsRouter(apiContext *common.ApiContext) http.Handler {
  h := TweetsHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.TweetsRepository{
    Db: h.ApiContext.Db,
  }
  h.UsersRepository = &repositories.UsersRepository{
    Db: h.ApiContext.Db,
  }

  r := chi.NewRouter()
  r.Get("/", h.Listings)
  return r
}

func (h *TweetsHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
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

  conditions := make(map[string]interface{})

  if r.URL.Query().Get("user_name") != "" {
    user, err := h.UsersRepository.Get(r.URL.Query().Get("user_name"))
    if err != nil {
      h.Response.Error(http.StatusNotFound, 1000, "user not exists")
      return
    }
    conditions["user_id"] = user.ID
  }
  if r.URL.Query().Get("is_retweet") != "" {
    conditions["is_retweet"] = r.URL.Query().Get("is_retweet") == "1"
  }

  hash := md5.Sum([]byte(fmt.Sprintf("%v", conditions)))
  redisKey := fmt.Sprintf(
    config.REDIS_KEY_TWEETS_COUNT,
    hex.EncodeToString(hash[:]),
  )
  var total int64
  if cached, err := h.ApiContext.Rdb.Get(h.ApiContext.Ctx, redisKey).Int64(); err == nil {
    total = cached
  } else {
    total = h.Repository.Count(conditions)
    h.ApiContext.Rdb.SetEX(h.ApiContext.Ctx, redisKey, total, time.Minute)
  }

  tweets := h.Repository.Listings(conditions, current, pageSize)
  data := make([]*TweetInfo, 0, len(tweets))
  for _, tweet := range tweets {
    data = append(data, &TweetInfo{
      ID:        tweet.ID,
      UserID:    tweet.UserID,
      SourceID:  tweet.SourceID,
      Date:      tweet.Date.Unix(),
      Text:      tweet.Text,
      IsRetweet: tweet.IsRetweet,
    })
  }

  h.Response.Pagenate(data, total, current, pageSize)
}
