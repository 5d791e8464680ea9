package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestDealDebt(t *testing.T) {
	tests := []struct {
		name string
		deal Deal
		want string
	}{
		{
			name: "b2b outstanding budget",
			deal: Deal{Kind: KindB2B, Budget: d(1000), Received: d(600)},
			want: "400",
		},
		{
			name: "b2b overpaid clamps to zero",
			deal: Deal{Kind: KindB2B, Budget: d(1000), Received: d(1200)},
			want: "0",
		},
		{
			name: "retail owes worked minus received",
			deal: Deal{Kind: KindRetail, Received: d(100), WorkedOut: d(400)},
			want: "300",
		},
		{
			name: "retail prepaid clamps to zero",
			deal: Deal{Kind: KindRetail, Received: d(800), WorkedOut: d(400)},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.deal.Debt().String())
		})
	}
}

func TestDealOverpayment(t *testing.T) {
	deal := Deal{Kind: KindB2B, Received: d(800), WorkedOut: d(400)}
	assert.Equal(t, "400", deal.Overpayment().String())

	settled := Deal{Kind: KindB2B, Received: d(400), WorkedOut: d(400)}
	assert.Equal(t, "0", settled.Overpayment().String())

	worked := Deal{Kind: KindRetail, Received: d(100), WorkedOut: d(400)}
	assert.Equal(t, "0", worked.Overpayment().String())
}

func TestDealIsActive(t *testing.T) {
	tests := []struct {
		name string
		deal Deal
		want bool
	}{
		{
			name: "open income keeps deal active",
			deal: Deal{Kind: KindB2B, HasOpenOps: true},
			want: true,
		},
		{
			name: "budgeted with outstanding debt",
			deal: Deal{Kind: KindB2B, Budget: d(1000), Received: d(900)},
			want: true,
		},
		{
			name: "budgeted and fully paid",
			deal: Deal{Kind: KindB2B, Budget: d(1000), Received: d(1000)},
			want: false,
		},
		{
			name: "unbudgeted with unearned prepayment",
			deal: Deal{Kind: KindB2B, Received: d(200), WorkedOut: d(0)},
			want: true,
		},
		{
			name: "unbudgeted fully worked out",
			deal: Deal{Kind: KindB2B, Received: d(200), WorkedOut: d(200)},
			want: false,
		},
		{
			name: "retail with open income",
			deal: Deal{Kind: KindRetail, HasOpenOps: true, Received: d(100)},
			want: true,
		},
		{
			name: "retail settled",
			deal: Deal{Kind: KindRetail, Received: d(100), WorkedOut: d(100)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.deal.IsActive())
		})
	}
}

func TestDealEffectivelyClosed(t *testing.T) {
	assert.True(t, (&Deal{Kind: KindB2B, Budget: d(1000), Received: d(1000)}).EffectivelyClosed())
	assert.True(t, (&Deal{Kind: KindB2B, Budget: d(1000), Received: d(1100)}).EffectivelyClosed())
	assert.False(t, (&Deal{Kind: KindB2B, Budget: d(1000), Received: d(999)}).EffectivelyClosed())
	// Unbudgeted deals are never "effectively closed" in the budget sense.
	assert.False(t, (&Deal{Kind: KindB2B, Received: d(500), WorkedOut: d(500)}).EffectivelyClosed())
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "retail_p1_c1", RetailKey("p1", "c1"))
	assert.Equal(t, "deal_p1_c1_x9", B2BKey("p1", "c1", "x9"))
	assert.Equal(t, "deal_deal_p1_c1_x9_2", DealID(B2BKey("p1", "c1", "x9"), 2))
}
