package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepActivatesNearExpiryStockedItems(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	soon := shelfItem("111111111111", "100.00", 20)
	soon.ExpiryDate = now.AddDate(0, 0, 2)
	soon.PromoThreshold = 10

	far := shelfItem("222222222222", "100.00", 20)
	far.ExpiryDate = now.AddDate(0, 1, 0)
	far.PromoThreshold = 10

	lowStock := shelfItem("333333333333", "100.00", 3)
	lowStock.ExpiryDate = now.AddDate(0, 0, 2)
	lowStock.PromoThreshold = 10

	stock := newStubStockRepo(soon, far, lowStock)
	svc := NewPromoService(stock, 3)

	res, err := svc.RunSweep(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Activated)
	assert.Equal(t, 0, res.Deactivated)
	assert.True(t, soon.Promotional)
	assert.True(t, dec("80.00").Equal(soon.Price))
	require.NotNil(t, soon.PromoAppliedAt)
	assert.False(t, far.Promotional)
	assert.False(t, lowStock.Promotional)
}

func TestSweepNeverDiscountsTwice(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	sp := shelfItem("111111111111", "100.00", 20)
	sp.ExpiryDate = now.AddDate(0, 0, 1)
	sp.PromoThreshold = 10

	stock := newStubStockRepo(sp)
	svc := NewPromoService(stock, 3)

	_, err := svc.RunSweep(context.Background(), now)
	require.NoError(t, err)
	assert.True(t, dec("80.00").Equal(sp.Price))

	// Stock drops below the threshold: the flag clears, the price stays.
	sp.Quantity = 5
	res, err := svc.RunSweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Deactivated)
	assert.False(t, sp.Promotional)
	assert.True(t, dec("80.00").Equal(sp.Price))

	// Stock recovers: the row re-qualifies on every other count, but the
	// one-time markdown guard keeps the price at a single 20 % cut.
	sp.Quantity = 20
	res, err = svc.RunSweep(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Activated)
	assert.False(t, sp.Promotional)
	assert.True(t, dec("80.00").Equal(sp.Price))
}

func TestSweepIsIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	sp := shelfItem("111111111111", "50.00", 20)
	sp.ExpiryDate = now
	sp.PromoThreshold = 1

	stock := newStubStockRepo(sp)
	svc := NewPromoService(stock, 3)

	for i := 0; i < 3; i++ {
		_, err := svc.RunSweep(context.Background(), now)
		require.NoError(t, err)
	}
	assert.True(t, dec("40.00").Equal(sp.Price))
	assert.True(t, sp.Promotional)
}
