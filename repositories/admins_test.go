package repositories

import (
  "testing"

  "loader.local/tweet-loader/common"
)

func TestAdminsCreateAndGet(t *testing.T) {
  db := newTestDB(t)
  repo := &AdminsRepository{Db: db}

  if err := repo.Create("root", "secret"); err != nil {
    t.Fatal(err)
  }
  admin := repo.Get("root")
  if admin == nil {
    t.Fatal("created admin not found")
  }
  if !common.VerifyPassword("secret", admin.Salt, admin.Password) {
    t.Error("stored password does not verify")
  }
  if common.VerifyPassword("wrong", admin.Salt, admin.Password) {
    t.Error("wrong password verified")
  }
}

func TestAdminsCreateDuplicate(t *testing.T) {
  db := newTestDB(t)
  repo := &AdminsRepository{Db: db}

  if err := repo.Create("root", "secret"); err != nil {
    t.Fatal(err)
  }
  if err := repo.Create("root", "other"); err == nil {
    t.Error("duplicate account accepted")
  }
}

func TestAdminsGetUnknown(t *testing.T) {
  db := newTestDB(t)
  repo := &AdminsRepository{Db: db}
  if admin := repo.Get("nobody"); admin != nil {
    t.Errorf("Get unknown = %+v, want nil", admin)
  }
}
