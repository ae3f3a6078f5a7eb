package rest

import (
	"net/url"
	"strconv"
)

// getInt reads a positive integer query parameter, falling back to def.
func getInt(q url.Values, key string, def int) int {
	if v := q.Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
