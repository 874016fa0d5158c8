package models

import (
  "time"
)

type User struct {
  ID              string    `gorm:"size:20;primaryKey"`
  UserName        string    `gorm:"size:100;not null;uniqueIndex"`
  Location        string    `gorm:"size:200;not null"`
  Description     string    `gorm:"size:500;not null"`
  RegisteredAt    time.Time `gorm:"not null"`
  FollowersCount  int64     `gorm:"not null"`
  FriendsCount    int64     `gorm:"not null"`
  FavouritesCount int64     `gorm:"not null"`
  Verified        bool      `gorm:"not null"`
  CreatedAt       time.Time `gorm:"not null"`
  UpdatedAt       time.Time `gorm:"not null"`
}

func (m *User) TableName() string {
  return "users"
}
