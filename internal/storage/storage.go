package storage

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

import (
	"context"
	"errors"
)

// Ключи слотов хранилища: каждый слот содержит целиком сериализованную коллекцию
const (
	OrdersKey   = "stitchmate_orders_v2"
	ProfilesKey = "stitchmate_profiles_v2"
)

// IStorage - хранилище именованных слотов. Запись всегда заменяет слот целиком.
type IStorage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Close() error
}

var (
	ErrNotFound   = errors.New("not found")
	ErrInvalidKey = errors.New("invalid storage key")
)

// NewStorage - при заданном DSN данные хранятся в PostgreSQL, иначе в файлах каталога dataDir
func NewStorage(dsn string, dataDir string) (IStorage, error) {
	if dsn == "" {
		return NewFileStorage(dataDir)
	}
	db, err := NewDatabase(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
