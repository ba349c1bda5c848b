package cart_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/kart-checkout/internal/domain/cart"
	"github.com/xenking/kart-checkout/internal/domain/product"
	"github.com/xenking/kart-checkout/internal/storage/memory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newAggregator(t *testing.T) (*cart.Aggregator, *memory.Store) {
	t.Helper()
	st := memory.New()
	st.PutProduct(product.Product{ID: "tea", Name: "Masala Chai", Price: d("120.50")})
	st.PutProduct(product.Product{ID: "mug", Name: "Clay Mug", Price: d("89.99")})
	return cart.NewAggregator(st.Carts(), st.Catalog()), st
}

func TestAggregator_AddItem(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		quantity  int
		wantErr   error
	}{
		{name: "valid", productID: "tea", quantity: 2},
		{name: "zero quantity", productID: "tea", quantity: 0, wantErr: cart.ErrInvalidQuantity},
		{name: "negative quantity", productID: "tea", quantity: -1, wantErr: cart.ErrInvalidQuantity},
		{name: "over line cap", productID: "tea", quantity: cart.MaxQuantity + 1, wantErr: cart.ErrInvalidQuantity},
		{name: "unknown product", productID: "cake", quantity: 1, wantErr: cart.ErrUnknownProduct},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, _ := newAggregator(t)
			ctx := context.Background()

			err := agg.AddItem(ctx, "u1", tt.productID, tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				lines, err := agg.Lines(ctx, "u1")
				require.NoError(t, err)
				assert.Empty(t, lines)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAggregator_AddItemAccumulates(t *testing.T) {
	agg, _ := newAggregator(t)
	ctx := context.Background()

	require.NoError(t, agg.AddItem(ctx, "u1", "tea", 1))
	require.NoError(t, agg.AddItem(ctx, "u1", "tea", 2))

	lines, err := agg.Lines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestAggregator_AddItemCapsAccumulatedQuantity(t *testing.T) {
	agg, _ := newAggregator(t)
	ctx := context.Background()

	require.NoError(t, agg.AddItem(ctx, "u1", "tea", cart.MaxQuantity-1))
	require.NoError(t, agg.AddItem(ctx, "u1", "tea", 1))
	require.ErrorIs(t, agg.AddItem(ctx, "u1", "tea", 1), cart.ErrInvalidQuantity)
	require.ErrorIs(t, agg.AddItem(ctx, "u1", "tea", cart.MaxQuantity), cart.ErrInvalidQuantity)

	lines, err := agg.Lines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, cart.MaxQuantity, lines[0].Quantity, "rejected additions leave the line unchanged")

	require.ErrorIs(t, agg.UpdateQuantity(ctx, "u1", "tea", cart.MaxQuantity+1), cart.ErrInvalidQuantity)
}

func TestAggregator_UpdateAndRemove(t *testing.T) {
	agg, _ := newAggregator(t)
	ctx := context.Background()
	require.NoError(t, agg.AddItem(ctx, "u1", "tea", 1))
	require.NoError(t, agg.AddItem(ctx, "u1", "mug", 1))

	require.NoError(t, agg.UpdateQuantity(ctx, "u1", "tea", 4))
	require.ErrorIs(t, agg.UpdateQuantity(ctx, "u1", "tea", 0), cart.ErrInvalidQuantity)
	require.ErrorIs(t, agg.UpdateQuantity(ctx, "u1", "cake", 1), cart.ErrItemNotFound)

	require.NoError(t, agg.RemoveItem(ctx, "u1", "mug"))
	require.NoError(t, agg.RemoveItem(ctx, "u1", "mug"), "removing twice is a no-op")

	c, err := agg.View(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 4, c.Items[0].Quantity)
	assert.True(t, d("482.00").Equal(c.Value), c.Value)

	require.NoError(t, agg.Clear(ctx, "u1"))
	c, err = agg.View(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, c.Empty())
	assert.True(t, decimal.Zero.Equal(c.Value))
}

func TestAggregator_ValueUsesCurrentPrices(t *testing.T) {
	agg, st := newAggregator(t)
	ctx := context.Background()
	require.NoError(t, agg.AddItem(ctx, "u1", "tea", 2))
	require.NoError(t, agg.AddItem(ctx, "u1", "mug", 1))

	v, err := agg.Value(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, d("330.99").Equal(v), v)

	st.PutProduct(product.Product{ID: "tea", Name: "Masala Chai", Price: d("100")})
	v, err = agg.Value(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, d("289.99").Equal(v), v)
}

func TestAggregator_ViewSkipsStaleProducts(t *testing.T) {
	agg, st := newAggregator(t)
	ctx := context.Background()
	require.NoError(t, agg.AddItem(ctx, "u1", "tea", 1))
	require.NoError(t, agg.AddItem(ctx, "u1", "mug", 2))

	st.DeleteProduct("tea")

	c, err := agg.View(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "mug", c.Items[0].ProductID)
	assert.True(t, d("179.98").Equal(c.Value))

	lines, err := agg.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 2, "stale lines stay stored")
}

func TestAggregator_CartsAreIsolated(t *testing.T) {
	agg, _ := newAggregator(t)
	ctx := context.Background()
	require.NoError(t, agg.AddItem(ctx, "u1", "tea", 1))

	c, err := agg.View(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, c.Empty())
}
