package models

import (
  "time"
)

type Hashtag struct {
  ID        string    `gorm:"size:20;primaryKey"`
  Tag       string    `gorm:"size:140;not null;uniqueIndex"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *Hashtag) TableName() string {
  return "hashtags"
}
