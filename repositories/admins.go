package repositories

import (
  "errors"

  "github.com/rs/xid"
  "gorm.io/gorm"

  "loader.local/tweet-loader/common"
  "loader.local/tweet-loader/models"
)

type AdminsRepository struct {
  Db *gorm.DB
}

func (r *AdminsRepository) Find(id string) (entity *models.Admin, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

// Get resolves an admin by account, nil when the account is unknown.
func (r *AdminsRepository) Get(account string) *models.Admin {
  var entity models.Admin
  result := r.Db.Where("account", account).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return nil
  }
  return &entity
}

// Create provisions an API admin with a fresh salt and a pbkdf2 password
// hash. Accounts are unique; re-creating an existing one is an error.
func (r *AdminsRepository) Create(account string, password string) error {
  var entity models.Admin
  result := r.Db.Where("account", account).Take(&entity)
  if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return errors.New("admin already exists")
  }
  salt := common.GenerateSalt(16)

  entity = models.Admin{
    ID:       xid.New().String(),
    Account:  account,
    Password: common.GeneratePassword(password, salt),
    Salt:     salt,
    Status:   1,
  }
  return r.Db.Create(&entity).Error
}
