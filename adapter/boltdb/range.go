package boltdb

import (
	"bytes"

	"github.com/boltdb/bolt"

	"go.llib.dev/rangekit/pkg/errorkit"
	"go.llib.dev/rangekit/pkg/rangekit"
)

const ErrBucketNotFound errorkit.Error = "bucket not found"

// KV is a key value pair of a bucket.
// Both slices point into the database memory and are only valid while the transaction is open.
type KV struct {
	Key   []byte
	Value []byte
}

// Bucket returns the key ordered range of a bucket.
// The range and its cursors must not be used after tx is closed.
func Bucket(tx *bolt.Tx, name string) (*BucketRange, error) {
	b := tx.Bucket([]byte(name))
	if b == nil {
		return nil, ErrBucketNotFound.F("%q", name)
	}
	return &BucketRange{bucket: b}, nil
}

// BucketRange is a bidirectional range over the key value pairs of a bolt bucket.
// It is not sized, since bolt only counts keys by walking its pages.
type BucketRange struct {
	bucket *bolt.Bucket
}

func (r *BucketRange) Begin() *Cursor {
	c := &Cursor{bucket: r.bucket, cursor: r.bucket.Cursor()}
	c.key, c.value = c.cursor.First()
	return c
}

func (r *BucketRange) End() End { return End{} }

func (r *BucketRange) Traits() rangekit.Traits {
	return rangekit.Traits{Tier: rangekit.BidirectionalTier}
}

// Cursor walks the keys of a bucket in byte order.
type Cursor struct {
	bucket *bolt.Bucket
	cursor *bolt.Cursor

	key   []byte
	value []byte
}

func (c *Cursor) Value() KV { return KV{Key: c.key, Value: c.value} }

func (c *Cursor) Next() { c.key, c.value = c.cursor.Next() }

// Prev steps back to the previous key.
// Stepping back from the end position lands on the last key.
func (c *Cursor) Prev() {
	if c.key == nil {
		c.key, c.value = c.cursor.Last()
		return
	}
	c.key, c.value = c.cursor.Prev()
}

// Clone positions a new bolt cursor on the same key.
func (c *Cursor) Clone() *Cursor {
	cp := &Cursor{bucket: c.bucket, cursor: c.bucket.Cursor()}
	if c.key != nil {
		cp.key, cp.value = cp.cursor.Seek(c.key)
	}
	return cp
}

// Equal compares positions by key, bolt keys are unique within a bucket.
func (c *Cursor) Equal(oth *Cursor) bool { return bytes.Equal(c.key, oth.key) }

func (c *Cursor) Concept() rangekit.Tier { return rangekit.BidirectionalTier }

func (c *Cursor) Category() rangekit.Tier { return rangekit.BidirectionalTier }

// End is reached once the cursor walked past the last key.
type End struct{}

func (End) Reached(c *Cursor) bool { return c.key == nil }
