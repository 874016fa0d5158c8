package models

import (
  "time"
)

type Tweet struct {
  ID        string    `gorm:"size:20;primaryKey"`
  UserID    string    `gorm:"size:20;not null;index:idx_tweets_users,priority:1"`
  SourceID  string    `gorm:"size:20;not null"`
  Date      time.Time `gorm:"not null;index:idx_tweets_users,priority:2;index"`
  Text      string    `gorm:"size:5000;not null"`
  IsRetweet bool      `gorm:"not null"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *Tweet) TableName() string {
  return "tweets"
}

type TweetHashtag struct {
  TweetID   string `gorm:"size:20;primaryKey"`
  HashtagID string `gorm:"size:20;primaryKey"`
}

func (m *TweetHashtag) TableName() string {
  return "tweet_hashtags"
}
