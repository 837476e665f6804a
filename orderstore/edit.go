package orderstore

import "github.com/MayBaraniKoKo/emperor-gold-catalogue/models"

// EditSession captures one row's pending edits in the admin console. Each
// field carries its own set-flag so a save touches only what was actually
// edited; an untouched session produces an empty change set and the save is
// a no-op.
type EditSession struct {
	status     models.OrderStatus
	remark     string
	debitMoney float64

	statusSet bool
	remarkSet bool
	debitSet  bool
}

func (e *EditSession) SetStatus(s models.OrderStatus) {
	e.status = s
	e.statusSet = true
}

func (e *EditSession) SetRemark(remark string) {
	e.remark = remark
	e.remarkSet = true
}

func (e *EditSession) SetDebitMoney(amount float64) {
	e.debitMoney = amount
	e.debitSet = true
}

func (e *EditSession) Dirty() bool {
	return e.statusSet || e.remarkSet || e.debitSet
}

// Changes builds the partial update map, keyed by remote column name.
func (e *EditSession) Changes() map[string]any {
	changes := make(map[string]any)
	if e.statusSet {
		changes["status"] = e.status
	}
	if e.remarkSet {
		changes["remark"] = e.remark
	}
	if e.debitSet {
		changes["debit_money"] = e.debitMoney
	}
	return changes
}

// Apply mirrors the session into an in-memory order after a successful save.
func (e *EditSession) Apply(o *models.Order) {
	if e.statusSet {
		o.Status = e.status
	}
	if e.remarkSet {
		o.Remark = e.remark
	}
	if e.debitSet {
		o.DebitMoney = e.debitMoney
	}
}
