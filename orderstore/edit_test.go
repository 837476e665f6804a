package orderstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
)

func TestEditSession_UntouchedIsClean(t *testing.T) {
	var session EditSession

	assert.False(t, session.Dirty())
	assert.Empty(t, session.Changes())
}

func TestEditSession_ChangesCarryOnlyEditedFields(t *testing.T) {
	var session EditSession
	session.SetRemark("call before delivery")

	assert.True(t, session.Dirty())
	assert.Equal(t, map[string]any{"remark": "call before delivery"}, session.Changes())
}

func TestEditSession_AllFields(t *testing.T) {
	var session EditSession
	session.SetStatus(models.OrderStatusDebit)
	session.SetRemark("partial payment")
	session.SetDebitMoney(12.5)

	changes := session.Changes()
	assert.Equal(t, models.OrderStatusDebit, changes["status"])
	assert.Equal(t, "partial payment", changes["remark"])
	assert.Equal(t, 12.5, changes["debit_money"])
}

func TestEditSession_ApplyMirrorsOnlyEditedFields(t *testing.T) {
	order := models.Order{
		Status:     models.OrderStatusPending,
		Remark:     "old remark",
		DebitMoney: 3,
	}

	var session EditSession
	session.SetRemark("new remark")
	session.Apply(&order)

	assert.Equal(t, "new remark", order.Remark)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 3.0, order.DebitMoney)
}

func TestEditSession_ZeroValuesStillCountAsEdits(t *testing.T) {
	var session EditSession
	session.SetRemark("")
	session.SetDebitMoney(0)

	changes := session.Changes()
	assert.Equal(t, "", changes["remark"])
	assert.Equal(t, 0.0, changes["debit_money"])
}
