package main

import (
	"context"
	"io"
	"os"

	"go.llib.dev/rangekit/adapter/boltdb"
	"go.llib.dev/rangekit/pkg/enumerate"
	"go.llib.dev/rangekit/pkg/errorkit"
	"go.llib.dev/rangekit/pkg/logging"
)

const ErrUnknownSource errorkit.Error = "unknown source"

// session is what a source needs to print its pairs.
type session struct {
	Config *Config
	Logger *logging.Logger
	Out    printer
}

func (s session) print(index uint, key *string, value string) error {
	return s.Out.Print(record{Index: s.Config.Start + index, Key: key, Value: value})
}

// runLines prints the lines of the file at path, or of stdin when path is empty.
func runLines(ctx context.Context, s session, stdin io.Reader, path string) (returnErr error) {
	var rd io.Reader = struct{ io.Reader }{stdin} // stdin is not ours to close
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		rd = f
	}

	v, closer := enumerate.Lines(rd)
	defer errorkit.Finish(&returnErr, closer.Close)

	s.Logger.Debug(ctx, "enumerating lines", logging.Field("path", path))
	it, end := v.Begin(), v.End()
	for ; !end.Reached(it); it.Next() {
		index, line := it.Value().Unpack()
		if err := s.print(index, nil, line); err != nil {
			return err
		}
	}
	if err := it.Err(); err != nil {
		s.Logger.Error(ctx, "reading lines failed", logging.ErrField(err))
		return err
	}
	s.Logger.Info(ctx, "lines enumerated", logging.Field("count", it.Index()))
	return nil
}

// runBolt prints the entries of a bucket in key order, or in reverse key order.
// Reversed entries keep the index they have in key order.
func runBolt(ctx context.Context, s session, path, bucket string, reverse bool) (returnErr error) {
	store, err := boltdb.Open(path)
	if err != nil {
		return err
	}
	defer errorkit.Finish(&returnErr, store.Close)
	store.Logger = s.Logger

	ctx = logging.ContextWith(ctx, logging.Field("bucket", bucket))
	return store.View(ctx, bucket, func(r *boltdb.BucketRange) error {
		v := enumerate.Bidirectional[boltdb.KV, *boltdb.Cursor, boltdb.End](r)
		it, end := v.Begin(), v.End()
		if !reverse {
			for ; !end.Reached(it); it.Next() {
				if err := printKV(s, it.Value()); err != nil {
					return err
				}
			}
			s.Logger.Info(ctx, "bucket enumerated", logging.Field("count", it.Index()))
			return nil
		}

		for !end.Reached(it) {
			it.Next()
		}
		count := it.Index()
		for it.Index() > 0 {
			it.Prev()
			if err := printKV(s, it.Value()); err != nil {
				return err
			}
		}
		s.Logger.Info(ctx, "bucket enumerated in reverse", logging.Field("count", count))
		return nil
	})
}

func printKV(s session, p enumerate.Pair[boltdb.KV]) error {
	key := string(p.Value.Key)
	return s.print(p.Index, &key, string(p.Value.Value))
}
