package ports

import "errors"

var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore persists small JSON payloads under string keys. It stands in
// for the device's local storage; implementations must tolerate concurrent use.
type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
