package jwt

import (
  "errors"
  "time"

  "github.com/lestrrat/go-jwx/jwa"
  "github.com/lestrrat/go-jwx/jws"
  "github.com/lestrrat/go-jwx/jwt"

  "loader.local/tweet-loader/common"
)

type TokenRepository struct{}

func (r *TokenRepository) AccessToken(uid string) (string, error) {
  return r.generate(uid, "access", 30*time.Minute)
}

func (r *TokenRepository) RefreshToken(uid string) (string, error) {
  return r.generate(uid, "refresh", 30*24*time.Hour)
}

func (r *TokenRepository) generate(uid string, usage string, ttl time.Duration) (string, error) {
  claims := jwt.New()
  claims.Set("sub", uid)
  claims.Set("use", usage)
  claims.Set("exp", time.Now().Add(ttl).Unix())
  payload, err := claims.MarshalJSON()
  if err != nil {
    return "", err
  }
  signed, err := jws.Sign(payload, jwa.HS256, []byte(common.GetEnvString("API_TOKEN_SECRET")))
  if err != nil {
    return "", err
  }
  return string(signed), nil
}

// Uid verifies an access token and returns the admin id it was issued
// for.
func (r *TokenRepository) Uid(token string) (string, error) {
  payload, err := jws.Verify([]byte(token), jwa.HS256, []byte(common.GetEnvString("API_TOKEN_SECRET")))
  if err != nil {
    return "", err
  }
  claims := jwt.New()
  if err := claims.UnmarshalJSON(payload); err != nil {
    return "", err
  }
  if claims.Expiration().Unix() < time.Now().Unix() {
    return "", errors.New("token expired")
  }
  use, _ := claims.Get("use")
  if usage, ok := use.(string); !ok || usage != "access" {
    return "", errors.New("not an access token")
  }
  if claims.Subject() == "" {
    return "", errors.New("subject is empty")
  }
  return claims.Subject(), nil
}
