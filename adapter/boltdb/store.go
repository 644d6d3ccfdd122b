// Package boltdb exposes bolt buckets as bidirectional ranges.
package boltdb

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/boltdb/bolt"

	"go.llib.dev/rangekit/pkg/logging"
)

// Open the bolt database at path, creating it when missing.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

type Store struct {
	DB     *bolt.DB
	Logger *logging.Logger
}

// Close the database and release the file lock
func (s *Store) Close() error {
	return s.DB.Close()
}

// Append stores the values under sequential keys, so the bucket keeps insertion order.
func (s *Store) Append(ctx context.Context, bucket string, values ...[]byte) error {
	return s.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		for _, v := range values {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			if err := b.Put(uintToBytes(seq), v); err != nil {
				return err
			}
		}
		s.logger().Debug(ctx, "values appended",
			logging.Field("bucket", bucket),
			logging.Field("count", len(values)))
		return nil
	})
}

// Put stores a single key value pair.
func (s *Store) Put(ctx context.Context, bucket string, key, value []byte) error {
	return s.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		s.logger().Debug(ctx, "value stored", logging.Field("bucket", bucket))
		return b.Put(key, value)
	})
}

// View calls fn with the range of bucket inside a read only transaction.
func (s *Store) View(ctx context.Context, bucket string, fn func(r *BucketRange) error) error {
	return s.DB.View(func(tx *bolt.Tx) error {
		r, err := Bucket(tx, bucket)
		if err != nil {
			s.logger().Warn(ctx, "bucket lookup failed", logging.ErrField(err))
			return err
		}
		return fn(r)
	})
}

func (s *Store) logger() *logging.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return &logging.Logger{}
}

func uintToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
