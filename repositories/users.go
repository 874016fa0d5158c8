package repositories

import (
  "errors"
  "time"

  "github.com/rs/xid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"

  "loader.local/tweet-loader/models"
)

type UsersRepository struct {
  Db *gorm.DB
}

func (r *UsersRepository) Find(id string) (entity *models.User, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *UsersRepository) Get(userName string) (entity *models.User, err error) {
  err = r.Db.Where("user_name", userName).Take(&entity).Error
  return
}

func (r *UsersRepository) Count() int64 {
  var total int64
  r.Db.Model(&models.User{}).Count(&total)
  return total
}

// Upsert resolves a user by natural key and overwrites every non-key
// attribute with the incoming values. A duplicate-key race on create is
// settled by re-resolving: the uniqueness constraint is the sole arbiter.
func (r *UsersRepository) Upsert(
  userName string,
  location string,
  description string,
  registeredAt time.Time,
  followersCount int64,
  friendsCount int64,
  favouritesCount int64,
  verified bool,
) (id string, err error) {
  var entity models.User
  result := r.Db.Where("user_name", userName).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    var created bool
    entity, created, err = r.create(
      userName,
      location,
      description,
      registeredAt,
      followersCount,
      friendsCount,
      favouritesCount,
      verified,
    )
    if err != nil {
      return "", err
    }
    if created {
      return entity.ID, nil
    }
  } else if result.Error != nil {
    return "", result.Error
  }
  err = r.Db.Model(&entity).Updates(map[string]interface{}{
    "location":         location,
    "description":      description,
    "registered_at":    registeredAt,
    "followers_count":  followersCount,
    "friends_count":    friendsCount,
    "favourites_count": favouritesCount,
    "verified":         verified,
  }).Error
  if err != nil {
    return "", err
  }
  return entity.ID, nil
}

// create inserts with ON CONFLICT DO NOTHING so a racing duplicate does
// not abort the surrounding transaction. When the race is lost the
// winner's row is re-resolved for the caller to update.
func (r *UsersRepository) create(
  userName string,
  location string,
  description string,
  registeredAt time.Time,
  followersCount int64,
  friendsCount int64,
  favouritesCount int64,
  verified bool,
) (entity models.User, created bool, err error) {
  entity = models.User{
    ID:              xid.New().String(),
    UserName:        userName,
    Location:        location,
    Description:     description,
    RegisteredAt:    registeredAt,
    FollowersCount:  followersCount,
    FriendsCount:    friendsCount,
    FavouritesCount: favouritesCount,
    Verified:        verified,
  }
  insert := r.Db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entity)
  if insert.Error != nil {
    err = insert.Error
    return
  }
  if insert.RowsAffected > 0 {
    created = true
    return
  }
  err = r.Db.Where("user_name", userName).Take(&entity).Error
  return
}
