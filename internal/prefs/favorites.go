package prefs

import (
	"slices"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// FavoritesKey is the storage entry holding the favorite ids.
const FavoritesKey = "favorites"

// FavoriteSet lists favorited product ids in the order they were added. Ids of
// products that no longer exist are kept.
type FavoriteSet []int64

// IsFavorite reports whether id is in the set.
func (s FavoriteSet) IsFavorite(id int64) bool {
	return slices.Contains(s, id)
}

// Favorites is the persisted favorite set.
type Favorites struct {
	storage Storage
	logger  *zap.Logger
	ids     FavoriteSet
	index   map[int64]struct{}
}

// LoadFavorites reads the favorite set from storage. A missing or malformed
// entry yields an empty set.
func LoadFavorites(storage Storage, logger *zap.Logger) *Favorites {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Favorites{storage: storage, logger: logger, index: map[int64]struct{}{}}
	if storage == nil {
		return f
	}
	raw, ok := storage.Get(FavoritesKey)
	if !ok {
		return f
	}
	ids, err := decodeFavorites(raw)
	if err != nil {
		logger.Debug("Ignoring malformed favorites", zap.String("raw", raw), zap.Error(err))
		return f
	}
	for _, id := range ids {
		f.add(id)
	}
	return f
}

// Toggle adds id if absent or removes it if present, then persists the full
// set. A failed write is logged and the in-memory change is kept.
func (f *Favorites) Toggle(id int64) FavoriteSet {
	if _, ok := f.index[id]; ok {
		delete(f.index, id)
		f.ids = slices.DeleteFunc(f.ids, func(v int64) bool { return v == id })
	} else {
		f.add(id)
	}
	f.persist()
	return f.Set()
}

// IsFavorite reports whether id is favorited.
func (f *Favorites) IsFavorite(id int64) bool {
	_, ok := f.index[id]
	return ok
}

// Set returns a copy of the current favorite ids.
func (f *Favorites) Set() FavoriteSet {
	return slices.Clone(f.ids)
}

// Len returns the number of favorites.
func (f *Favorites) Len() int { return len(f.ids) }

func (f *Favorites) add(id int64) {
	if _, ok := f.index[id]; ok {
		return
	}
	f.index[id] = struct{}{}
	f.ids = append(f.ids, id)
}

func (f *Favorites) persist() {
	if f.storage == nil {
		return
	}
	if err := f.storage.Set(FavoritesKey, encodeFavorites(f.ids)); err != nil {
		f.logger.Warn("Failed to persist favorites", zap.Int("count", len(f.ids)), zap.Error(err))
	}
}

func encodeFavorites(ids []int64) string {
	var e jx.Encoder
	e.Arr(func(e *jx.Encoder) {
		for _, id := range ids {
			e.Int64(id)
		}
	})
	return string(e.Bytes())
}

func decodeFavorites(raw string) ([]int64, error) {
	var ids []int64
	if err := jx.DecodeStr(raw).Arr(func(d *jx.Decoder) error {
		id, err := d.Int64()
		if err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode favorites")
	}
	return ids, nil
}
