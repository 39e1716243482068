package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so callers never import go-redis directly
// for construction.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key
const Nil = redis.Nil

// TxFailedErr is returned when a watched key changed before EXEC
const TxFailedErr = redis.TxFailedErr
