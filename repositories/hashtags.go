package repositories

import (
  "errors"

  "github.com/rs/xid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"

  "loader.local/tweet-loader/models"
)

type HashtagsRepository struct {
  Db *gorm.DB
}

func (r *HashtagsRepository) Get(tag string) (entity *models.Hashtag, err error) {
  err = r.Db.Where("tag", tag).Take(&entity).Error
  return
}

func (r *HashtagsRepository) Count() int64 {
  var total int64
  r.Db.Model(&models.Hashtag{}).Count(&total)
  return total
}

func (r *HashtagsRepository) ResolveOrCreate(tag string) (id string, err error) {
  var entity models.Hashtag
  result := r.Db.Where("tag", tag).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return r.create(tag)
  }
  if result.Error != nil {
    return "", result.Error
  }
  return entity.ID, nil
}

// create inserts with ON CONFLICT DO NOTHING so a racing duplicate does
// not abort the surrounding transaction, then settles the race by
// re-resolving the winner's row.
func (r *HashtagsRepository) create(tag string) (id string, err error) {
  entity := models.Hashtag{
    ID:  xid.New().String(),
    Tag: tag,
  }
  insert := r.Db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entity)
  if insert.Error != nil {
    return "", insert.Error
  }
  if insert.RowsAffected == 0 {
    if err = r.Db.Where("tag", tag).Take(&entity).Error; err != nil {
      return "", err
    }
  }
  return entity.ID, nil
}
