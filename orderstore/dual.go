// Package orderstore persists orders against the remote table with a local
// fallback log behind it. The fallback policy lives in exactly one place
// (Dual.fallback): try the remote once, and on any error make exactly one
// local attempt. There is no retry, no backoff, and no reconciliation of the
// log back into the remote store once it recovers.
package orderstore

import (
	"fmt"
	"log"
	"time"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
)

// Placement tags which path an operation landed on.
type Placement int

const (
	PlacedRemote Placement = iota
	PlacedLocal
)

func (p Placement) String() string {
	if p == PlacedLocal {
		return "local"
	}
	return "remote"
}

// Outcome reports where a write landed and the order as stored there.
type Outcome struct {
	Placement Placement
	Order     models.Order
}

type Dual struct {
	remote Remote
	local  *Local
	now    func() time.Time
}

func NewDual(remote Remote, local *Local) *Dual {
	return &Dual{remote: remote, local: local, now: time.Now}
}

// fallback is the single dispatch point for the dual-write policy.
func (d *Dual) fallback(op string, remote func() error, local func() error) (Placement, error) {
	if err := remote(); err != nil {
		log.Printf("⚠️ Remote %s failed, falling back to local log: %v", op, err)
		if ferr := local(); ferr != nil {
			return PlacedLocal, ferr
		}
		return PlacedLocal, nil
	}
	return PlacedRemote, nil
}

// Insert writes the order remotely; the remote-assigned id and timestamp are
// canonical on success. On failure the order lands in the fallback log under
// a client-generated id and timestamp.
func (d *Dual) Insert(order models.Order) (Outcome, error) {
	stored := order
	placement, err := d.fallback("insert",
		func() error {
			remote := order
			remote.ID = ""
			remote.CreatedAt = time.Time{}
			if err := d.remote.Insert(&remote); err != nil {
				return err
			}
			stored = remote
			return nil
		},
		func() error {
			now := d.now()
			fallback := order
			fallback.ID = fmt.Sprintf("order_%d", now.UnixMilli())
			fallback.CreatedAt = now
			if err := d.local.Append(fallback); err != nil {
				return err
			}
			stored = fallback
			return nil
		},
	)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Placement: placement, Order: stored}, nil
}

// List returns remote orders newest first; if the remote query fails it
// returns the entire fallback log instead. The two are never merged.
func (d *Dual) List() ([]models.Order, Placement, error) {
	orders, err := d.remote.List()
	if err == nil {
		return orders, PlacedRemote, nil
	}
	log.Printf("⚠️ Remote order query failed, reading fallback log: %v", err)
	orders, ferr := d.local.All()
	if ferr != nil {
		return nil, PlacedLocal, ferr
	}
	return orders, PlacedLocal, nil
}

// Update applies one edit session to an order and returns the record as
// stored after the save, so the console can mirror it into its views. A
// clean session is a no-op on both paths.
func (d *Dual) Update(id string, edits EditSession) (Outcome, error) {
	if !edits.Dirty() {
		return Outcome{Placement: PlacedRemote}, nil
	}
	var updated models.Order
	placement, err := d.fallback("update",
		func() error {
			if err := d.remote.Update(id, edits.Changes()); err != nil {
				return err
			}
			order, err := d.remote.Get(id)
			if err != nil {
				return err
			}
			updated = order
			return nil
		},
		func() error {
			order, err := d.local.Rewrite(id, edits.Apply)
			if err != nil {
				return err
			}
			updated = order
			return nil
		},
	)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Placement: placement, Order: updated}, nil
}

func (d *Dual) Delete(id string) (Placement, error) {
	return d.fallback("delete",
		func() error { return d.remote.Delete(id) },
		func() error { return d.local.Remove(id) },
	)
}
