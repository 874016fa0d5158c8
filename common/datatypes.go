package common

import (
  "encoding/json"

  "gorm.io/datatypes"
)

// JSONMap converts any serializable value into a gorm JSONMap column
// value via a JSON round trip.
func JSONMap(in interface{}) datatypes.JSONMap {
  buf, _ := json.Marshal(in)
  var out datatypes.JSONMap
  json.Unmarshal(buf, &out)
  return out
}
