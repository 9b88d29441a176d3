// Package storage defines the durable key-value boundary the persistence
// synchronizer writes through, and a factory over the available backends.
package storage

// KeyValue is a string-keyed, string-valued durable store. Get reports
// presence separately from errors so a missing key is not a failure.
type KeyValue interface {
	Get(key string) (value string, ok bool, err error)
	Put(key, value string) error
	Delete(key string) error
	Close() error
}
