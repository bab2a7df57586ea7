package badgerfx

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Entity is a value stored under its own key with secondary index keys
// pointing at that key.
type Entity interface {
	StorageKey() string
	StorageIndexes() []string
	MarshalStorage() ([]byte, error)
	UnmarshalStorage(data []byte) error
}

type EntityFactory[T Entity] func() T

type Repository[T Entity] struct {
	zero    T
	factory EntityFactory[T]
}

func NewRepository[T Entity](factory EntityFactory[T]) *Repository[T] {
	var zero T
	return &Repository[T]{
		zero:    zero,
		factory: factory,
	}
}

func (r *Repository[T]) Read(txn *badger.Txn, key string) (T, error) {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return r.zero, fmt.Errorf("failed to get entity: %w", err)
	}

	return r.decode(item)
}

func (r *Repository[T]) ReadByIndex(txn *badger.Txn, index string) (T, error) {
	item, err := txn.Get([]byte(index))
	if err != nil {
		return r.zero, fmt.Errorf("failed to get entity index: %w", err)
	}

	key, err := item.ValueCopy(nil)
	if err != nil {
		return r.zero, fmt.Errorf("failed to get entity key: %w", err)
	}

	return r.Read(txn, string(key))
}

// ListByIndex resolves every index key under prefix, stopping after limit
// entities when limit is positive.
func (r *Repository[T]) ListByIndex(txn *badger.Txn, prefix string, reverse bool, limit int) ([]T, error) {
	validPrefix := []byte(prefix)
	seekPrefix := []byte(prefix)
	if reverse {
		seekPrefix = append(seekPrefix, SeekEnd)
	}

	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	opts.PrefetchValues = false

	it := txn.NewIterator(opts)
	defer it.Close()

	var entities []T
	for it.Seek(seekPrefix); it.ValidForPrefix(validPrefix); it.Next() {
		if limit > 0 && len(entities) >= limit {
			break
		}

		entity, err := r.ReadByIndex(txn, string(it.Item().KeyCopy(nil)))
		if err != nil {
			return nil, err
		}

		entities = append(entities, entity)
	}

	return entities, nil
}

func (r *Repository[T]) Write(txn *badger.Txn, entity T) error {
	data, err := entity.MarshalStorage()
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	if indexErr := r.CreateIndexes(txn, entity); indexErr != nil {
		return indexErr
	}

	if setErr := txn.Set([]byte(entity.StorageKey()), data); setErr != nil {
		return fmt.Errorf("failed to update entity: %w", setErr)
	}

	return nil
}

func (r *Repository[T]) CreateIndexes(txn *badger.Txn, entity T) error {
	key := []byte(entity.StorageKey())
	for _, index := range entity.StorageIndexes() {
		if err := txn.Set([]byte(index), key); err != nil {
			return fmt.Errorf("failed to set entity index: %w", err)
		}
	}

	return nil
}

func (r *Repository[T]) decode(item *badger.Item) (T, error) {
	entity := r.factory()
	if err := item.Value(func(val []byte) error {
		return entity.UnmarshalStorage(val)
	}); err != nil {
		return r.zero, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	return entity, nil
}
