package repositories

import (
  "time"

  "github.com/rs/xid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"

  "loader.local/tweet-loader/models"
)

type TweetsRepository struct {
  Db *gorm.DB
}

func (r *TweetsRepository) Find(id string) (entity *models.Tweet, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *TweetsRepository) Count(conditions map[string]interface{}) int64 {
  var total int64
  query := r.Db.Model(&models.Tweet{})
  if _, ok := conditions["user_id"]; ok {
    query.Where("user_id", conditions["user_id"].(string))
  }
  if _, ok := conditions["is_retweet"]; ok {
    query.Where("is_retweet", conditions["is_retweet"].(bool))
  }
  query.Count(&total)
  return total
}

func (r *TweetsRepository) Listings(conditions map[string]interface{}, current int, pageSize int) []*models.Tweet {
  var tweets []*models.Tweet
  query := r.Db.Select([]string{
    "id",
    "user_id",
    "source_id",
    "date",
    "text",
    "is_retweet",
  })
  if _, ok := conditions["user_id"]; ok {
    query.Where("user_id", conditions["user_id"].(string))
  }
  if _, ok := conditions["is_retweet"]; ok {
    query.Where("is_retweet", conditions["is_retweet"].(bool))
  }
  query.Order("date desc")
  query.Offset((current - 1) * pageSize).Limit(pageSize).Find(&tweets)
  return tweets
}

// Create always inserts a new row; tweets are never deduplicated during
// a load.
func (r *TweetsRepository) Create(
  userID string,
  sourceID string,
  date time.Time,
  text string,
  isRetweet bool,
) (id string, err error) {
  id = xid.New().String()
  entity := &models.Tweet{
    ID:        id,
    UserID:    userID,
    SourceID:  sourceID,
    Date:      date,
    Text:      text,
    IsRetweet: isRetweet,
  }
  err = r.Db.Create(&entity).Error
  return
}

// Link attaches a hashtag to a tweet. An existing link is a silent
// no-op, never an error.
func (r *TweetsRepository) Link(tweetID string, hashtagID string) error {
  entity := &models.TweetHashtag{
    TweetID:   tweetID,
    HashtagID: hashtagID,
  }
  return r.Db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entity).Error
}
