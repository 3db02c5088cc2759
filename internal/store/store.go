package store

// KV is a persistent mapping from string keys to serialized values. The API
// uses it as the single persistence substrate: absence of a key is reported
// via ok=false, never as an error.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}
