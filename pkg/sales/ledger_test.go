package sales

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vending/pkg/money"
)

func coffeeSale() Sale {
	return Sale{
		Code:   "C1",
		Name:   "Coffee",
		Price:  money.MustParse("1.50"),
		Paid:   money.MustParse("2"),
		Change: money.MustParse("0.50"),
	}
}

func TestRecord_StampsSale(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("GST", 4*3600))
	l := NewLedger(WithClock(func() time.Time { return fixed }))

	stored, err := l.Record(context.Background(), coffeeSale())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, fixed.UTC(), stored.SoldAt)

	listed, err := l.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, stored.ID, listed[0].ID)
}

func TestRecord_UniqueIDs(t *testing.T) {
	l := NewLedger()
	first, err := l.Record(context.Background(), coffeeSale())
	require.NoError(t, err)
	second, err := l.Record(context.Background(), coffeeSale())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRecord_Validation(t *testing.T) {
	cases := map[string]func(*Sale){
		"missing code":   func(s *Sale) { s.Code = "" },
		"missing name":   func(s *Sale) { s.Name = " " },
		"negative price": func(s *Sale) { s.Price = money.MustParse("-1") },
		"underpaid":      func(s *Sale) { s.Paid = money.MustParse("1") },
		"wrong change":   func(s *Sale) { s.Change = money.MustParse("0.40") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			l := NewLedger()
			sale := coffeeSale()
			mutate(&sale)

			_, err := l.Record(context.Background(), sale)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, 0, l.Summary().Count)
		})
	}
}

func TestRecord_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLedger().Record(ctx, coffeeSale())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsValidation(err))
}

func TestSummary(t *testing.T) {
	l := NewLedger()
	assert.Equal(t, 0, l.Summary().Count)
	assert.True(t, l.Summary().Revenue.IsZero())

	_, err := l.Record(context.Background(), coffeeSale())
	require.NoError(t, err)
	_, err = l.Record(context.Background(), Sale{
		Code:   "A1",
		Name:   "Water",
		Price:  money.MustParse("1"),
		Paid:   money.MustParse("1"),
		Change: money.MustParse("0"),
	})
	require.NoError(t, err)

	summary := l.Summary()
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "2.50", summary.Revenue.StringFixed(2))
}
