// Package envutil reads typed configuration from environment variables and
// env files.
package envutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrNonPositive     = errors.New("value must be positive")
	ErrNegative        = errors.New("value must not be negative")
)

var lookupEnv = os.LookupEnv

// lookup checks context overrides first, then the process environment.
func lookup(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := lookupEnv(key)

	return Reader[string]{key: key, present: ok, value: val}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String reads key as a string.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(lookup(ctx, key), opts)
}

// Bool reads key using strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(lookup(ctx, key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

// Int reads key as a base-10 integer.
func Int(ctx context.Context, key string, opts ...Option[int]) Reader[int] {
	return apply(Map(lookup(ctx, key), func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}), opts)
}

// Duration reads key using time.ParseDuration.
func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(lookup(ctx, key), func(s string) (time.Duration, error) {
		return time.ParseDuration(strings.TrimSpace(s))
	}), opts)
}

// SlogLevel reads key as one of debug, info, warn or error (any case).
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(lookup(ctx, key), parseSlogLevel), opts)
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}

// Positive is a Validate function rejecting zero and negative numbers.
func Positive(v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: %d", ErrNonPositive, v)
	}

	return nil
}

// NonNegative is a Validate function rejecting negative numbers.
func NonNegative(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrNegative, v)
	}

	return nil
}
