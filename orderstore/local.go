package orderstore

import (
	"errors"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/localstore"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
)

var ErrNotInLog = errors.New("order not in fallback log")

// Local is the append-only fallback log of orders, kept as one JSON blob in
// the local store. Every operation is a read-modify-write of the whole log.
type Local struct {
	store *localstore.Store
}

func NewLocal(store *localstore.Store) *Local {
	return &Local{store: store}
}

func (l *Local) Append(order models.Order) error {
	log, err := l.All()
	if err != nil {
		return err
	}
	return l.store.Set(localstore.OrdersFallbackKey, append(log, order))
}

func (l *Local) All() ([]models.Order, error) {
	var log []models.Order
	if err := l.store.Get(localstore.OrdersFallbackKey, &log); err != nil {
		return nil, err
	}
	return log, nil
}

// Rewrite replaces the fields of the matching record in place and returns
// the record as written back.
func (l *Local) Rewrite(id string, apply func(*models.Order)) (models.Order, error) {
	log, err := l.All()
	if err != nil {
		return models.Order{}, err
	}
	for i := range log {
		if log[i].ID == id {
			apply(&log[i])
			if err := l.store.Set(localstore.OrdersFallbackKey, log); err != nil {
				return models.Order{}, err
			}
			return log[i], nil
		}
	}
	return models.Order{}, ErrNotInLog
}

func (l *Local) Remove(id string) error {
	log, err := l.All()
	if err != nil {
		return err
	}
	next := make([]models.Order, 0, len(log))
	found := false
	for _, o := range log {
		if o.ID == id {
			found = true
			continue
		}
		next = append(next, o)
	}
	if !found {
		return ErrNotInLog
	}
	return l.store.Set(localstore.OrdersFallbackKey, next)
}
