package repositories

import (
  "errors"

  "github.com/rs/xid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"

  "loader.local/tweet-loader/models"
)

type SourcesRepository struct {
  Db *gorm.DB
}

func (r *SourcesRepository) Get(name string) (entity *models.Source, err error) {
  err = r.Db.Where("name", name).Take(&entity).Error
  return
}

func (r *SourcesRepository) Count() int64 {
  var total int64
  r.Db.Model(&models.Source{}).Count(&total)
  return total
}

// ResolveOrCreate returns the id for a source name, creating it on first
// sight. Sources are immutable after creation. A concurrent create is
// tolerated by falling back to lookup.
func (r *SourcesRepository) ResolveOrCreate(name string) (id string, err error) {
  var entity models.Source
  result := r.Db.Where("name", name).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return r.create(name)
  }
  if result.Error != nil {
    return "", result.Error
  }
  return entity.ID, nil
}

// create inserts with ON CONFLICT DO NOTHING so a racing duplicate does
// not abort the surrounding transaction, then settles the race by
// re-resolving the winner's row.
func (r *SourcesRepository) create(name string) (id string, err error) {
  entity := models.Source{
    ID:   xid.New().String(),
    Name: name,
  }
  insert := r.Db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entity)
  if insert.Error != nil {
    return "", insert.Error
  }
  if insert.RowsAffected == 0 {
    if err = r.Db.Where("name", name).Take(&entity).Error; err != nil {
      return "", err
    }
  }
  return entity.ID, nil
}
