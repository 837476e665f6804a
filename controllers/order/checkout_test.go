package orderControllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/cart"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/localstore"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
	"github.com/MayBaraniKoKo/emperor-gold-catalogue/orderstore"
)

type checkoutRemote struct {
	failing  bool
	inserted []models.Order
	updates  map[string]map[string]any
}

func (r *checkoutRemote) Insert(order *models.Order) error {
	if r.failing {
		return assertRemoteDown
	}
	order.ID = "remote-1"
	order.CreatedAt = time.Now()
	r.inserted = append(r.inserted, *order)
	return nil
}

func (r *checkoutRemote) Get(id string) (models.Order, error) {
	if r.failing {
		return models.Order{}, assertRemoteDown
	}
	for _, o := range r.inserted {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, errOrderMissing
}

func (r *checkoutRemote) List() ([]models.Order, error) {
	if r.failing {
		return nil, assertRemoteDown
	}
	return r.inserted, nil
}

func (r *checkoutRemote) Update(id string, changes map[string]any) error {
	if r.failing {
		return assertRemoteDown
	}
	if r.updates == nil {
		r.updates = map[string]map[string]any{}
	}
	r.updates[id] = changes
	for i := range r.inserted {
		if r.inserted[i].ID == id {
			if v, ok := changes["status"]; ok {
				r.inserted[i].Status = v.(models.OrderStatus)
			}
			if v, ok := changes["remark"]; ok {
				r.inserted[i].Remark = v.(string)
			}
			if v, ok := changes["debit_money"]; ok {
				r.inserted[i].DebitMoney = v.(float64)
			}
			return nil
		}
	}
	return errOrderMissing
}

func (r *checkoutRemote) Delete(string) error { return nil }

var (
	assertRemoteDown = errors.New("connection refused")
	errOrderMissing  = errors.New("record not found")
)

type checkoutEnv struct {
	router *gin.Engine
	carts  *cart.Provider
	local  *orderstore.Local
}

func newCheckoutEnv(t *testing.T, remote orderstore.Remote) checkoutEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	carts := cart.NewProvider(store)
	local := orderstore.NewLocal(store)
	dual := orderstore.NewDual(remote, local)

	router := gin.New()
	router.POST("/checkout", func(c *gin.Context) {
		c.Set("session_id", "sess-1")
		c.Next()
	}, Checkout(dual, carts))

	return checkoutEnv{router: router, carts: carts, local: local}
}

func (env checkoutEnv) post(t *testing.T, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func fillCart(env checkoutEnv) {
	m := env.carts.Manager("sess-1")
	m.Add(models.CartItem{ID: "p1", Name: "Gold Label", Price: 10}, 2)
	m.Add(models.CartItem{ID: "p2", Name: "Silver Label", Price: 5}, 1)
}

func TestCheckout_RemoteSuccess(t *testing.T) {
	remote := &checkoutRemote{}
	env := newCheckoutEnv(t, remote)
	fillCart(env)

	w := env.post(t, map[string]any{"name": "Alice", "phone": "555", "address": "1 Gold St"})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, remote.inserted, 1)
	assert.Equal(t, 25.0, remote.inserted[0].Total)
	assert.Equal(t, models.OrderStatusPending, remote.inserted[0].Status)
	assert.NotEmpty(t, remote.inserted[0].OrderNumber)

	// Cart is cleared after a successful checkout.
	assert.Empty(t, env.carts.Manager("sess-1").Items())

	// Nothing landed in the fallback log.
	log, err := env.local.All()
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestCheckout_RemoteFailureFallsBackAndStillClearsCart(t *testing.T) {
	env := newCheckoutEnv(t, &checkoutRemote{failing: true})
	fillCart(env)

	w := env.post(t, map[string]any{"name": "Alice", "phone": "555", "address": "1 Gold St"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "saved locally")

	log, err := env.local.All()
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Regexp(t, regexp.MustCompile(`^order_\d+$`), log[0].ID)
	assert.Equal(t, "Alice", log[0].Name)

	// The cart is never left non-empty after a checkout attempt that
	// passed validation, success or fallback.
	assert.Empty(t, env.carts.Manager("sess-1").Items())
}

func TestCheckout_ValidationFailureLeavesEverythingUntouched(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]any
		wantMsg string
	}{
		{"missing name", map[string]any{"phone": "555", "address": "x"}, "Full name is required"},
		{"missing phone", map[string]any{"name": "Alice", "address": "x"}, "Phone number is required"},
		{"missing address", map[string]any{"name": "Alice", "phone": "555"}, "Address is required"},
		{"blank name", map[string]any{"name": "   ", "phone": "555", "address": "x"}, "Full name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &checkoutRemote{}
			env := newCheckoutEnv(t, remote)
			fillCart(env)

			w := env.post(t, tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)

			// Nothing persisted, cart untouched.
			assert.Empty(t, remote.inserted)
			assert.Len(t, env.carts.Manager("sess-1").Items(), 2)
		})
	}
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	remote := &checkoutRemote{}
	env := newCheckoutEnv(t, remote)

	w := env.post(t, map[string]any{"name": "Alice", "phone": "555", "address": "1 Gold St"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
	assert.Empty(t, remote.inserted)
}
