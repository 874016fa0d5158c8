package models

import (
  "time"
)

type Source struct {
  ID        string    `gorm:"size:20;primaryKey"`
  Name      string    `gorm:"size:200;not null;uniqueIndex"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *Source) TableName() string {
  return "sources"
}
