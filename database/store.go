package database

import (
	bolt "go.etcd.io/bbolt"

	"github.com/yeremiapane/restaurant-pos/models"
)

// Logical keys in the store. Each holds a JSON array.
const (
	KeyMenuItems    = "menuItems"
	KeyOrderHistory = "orderHistory"
)

var bucketName = []byte("pos")

// Store is the embedded key-value store backing the POS. It is deliberately
// a dumb get/set surface: all shaping of the data happens in the services.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store file and makes sure the bucket exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, &models.StorageError{Op: "open", Key: path, Err: err}
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, &models.StorageError{Op: "open", Key: path, Err: err}
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value for key, or nil when the key has never been written.
func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if raw != nil {
			// bbolt memory is only valid inside the transaction
			value = append([]byte(nil), raw...)
		}
		return nil
	})
	if err != nil {
		return nil, &models.StorageError{Op: "get", Key: key, Err: err}
	}
	return value, nil
}

// Put writes value under key.
func (s *Store) Put(key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
	if err != nil {
		return &models.StorageError{Op: "put", Key: key, Err: err}
	}
	return nil
}

// Update runs a read-modify-write on one key inside a single write
// transaction. bbolt admits one writer at a time, so two concurrent appends
// to the same key can never lose an update. fn gets nil when the key is
// absent; an error from fn aborts the transaction and is returned as-is.
func (s *Store) Update(key string, fn func(old []byte) ([]byte, error)) error {
	var fnErr error
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		old := bucket.Get([]byte(key))
		next, err := fn(old)
		if err != nil {
			fnErr = err
			return err
		}
		return bucket.Put([]byte(key), next)
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return &models.StorageError{Op: "update", Key: key, Err: err}
	}
	return nil
}
