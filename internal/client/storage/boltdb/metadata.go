package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyLastOnlineLoad = "last_online_load"
	flagPrefix        = "flag:"
)

// SetFlag сохраняет именованный флаг
func (s *Storage) SetFlag(ctx context.Context, name string, value bool) error {
	return s.update(bucketMetadata, func(bucket *bbolt.Bucket) error {
		v := []byte{0}
		if value {
			v[0] = 1
		}
		if err := bucket.Put([]byte(flagPrefix+name), v); err != nil {
			return fmt.Errorf("failed to save flag %s: %w", name, err)
		}
		return nil
	})
}

// GetFlag возвращает значение флага, false если флаг не установлен
func (s *Storage) GetFlag(ctx context.Context, name string) (bool, error) {
	var value bool

	err := s.view(bucketMetadata, func(bucket *bbolt.Bucket) error {
		v := bucket.Get([]byte(flagPrefix + name))
		value = len(v) == 1 && v[0] == 1
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to get flag %s: %w", name, err)
	}

	return value, nil
}

// SaveLastOnlineLoad saves the time of the last successful remote load
func (s *Storage) SaveLastOnlineLoad(ctx context.Context, timestamp int64) error {
	return s.update(bucketMetadata, func(bucket *bbolt.Bucket) error {
		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		if err := bucket.Put([]byte(keyLastOnlineLoad), timestampBytes); err != nil {
			return fmt.Errorf("failed to save last online load timestamp: %w", err)
		}
		return nil
	})
}

// GetLastOnlineLoad returns 0 if no remote load has succeeded yet
func (s *Storage) GetLastOnlineLoad(ctx context.Context) (int64, error) {
	var timestamp int64

	err := s.view(bucketMetadata, func(bucket *bbolt.Bucket) error {
		timestampBytes := bucket.Get([]byte(keyLastOnlineLoad))
		if len(timestampBytes) != 8 {
			return nil
		}
		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get last online load timestamp: %w", err)
	}

	return timestamp, nil
}
