package modelmap

import (
	"context"
	"fmt"
	"log/slog"
)

// MissingKeyPolicy controls what a direct entry writes when its source key
// is absent from the source record.
type MissingKeyPolicy int

const (
	// SkipMissing writes nothing, leaving defaulting to the entity factory.
	SkipMissing MissingKeyPolicy = iota
	// NullMissing writes an explicit nil under the target key.
	NullMissing
)

type options struct {
	missing MissingKeyPolicy
	logger  *slog.Logger
}

// Option configures a mapping call.
type Option func(*options)

// WithMissingKeys sets the policy for direct entries whose source key is absent.
func WithMissingKeys(p MissingKeyPolicy) Option {
	return func(o *options) { o.missing = p }
}

// WithLogger enables debug traces of applied and skipped entries.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Apply builds a new record from src by applying every entry of spec in
// order for the given direction. The source record and the specification are
// not modified. If any entry fails the whole call fails and no record is
// returned.
//
// By default a direct entry whose source key is absent writes nothing
// (SkipMissing); pass WithMissingKeys(NullMissing) to write nil instead.
func Apply(src Record, spec Specification, dir Direction, opts ...Option) (Record, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	if !dir.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}

	o := newOptions(opts)
	target := make(Record, len(spec))

	for i, entry := range spec {
		switch e := Unwrap(entry).(type) {
		case DirectEntry:
			from, to := e.Keys(dir)

			v, ok := src[from]
			if !ok && o.missing == SkipMissing {
				o.trace("skip direct entry, source key absent", i, e.ModelKey, dir)
				continue
			}

			target[to] = v

		case TransformEntry:
			fn := e.Func(dir)
			if fn == nil {
				o.trace("skip transform entry, no function for direction", i, e.ModelKey, dir)
				continue
			}

			frag, err := fn(src)
			if err != nil {
				return nil, &EntryError{Index: i, ModelKey: e.ModelKey, Direction: dir, Err: err}
			}

			target.merge(frag)
			o.trace("merged fragment", i, e.ModelKey, dir, slog.Int("keys", frag.Len()))

		default:
			return nil, &EntryError{
				Index:     i,
				Direction: dir,
				Err:       fmt.Errorf("%w: %T", ErrUnknownEntry, entry),
			}
		}
	}

	return target, nil
}

func (o options) trace(msg string, index int, key string, dir Direction, attrs ...slog.Attr) {
	if o.logger == nil {
		return
	}

	attrs = append(attrs,
		slog.Int("entry", index),
		slog.String("model_key", key),
		slog.String("direction", dir.String()),
	)
	o.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
