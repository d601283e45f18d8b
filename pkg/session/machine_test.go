package session

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vending/internal/console"
	"vending/pkg/catalog"
	"vending/pkg/money"
)

func newTestMachine(t *testing.T, input string) (*Machine, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	m, err := New(Config{Console: console.New(strings.NewReader(input), &out)})
	require.NoError(t, err)
	return m, &out
}

func TestNew_RequiresConsole(t *testing.T) {
	m, err := New(Config{})
	assert.ErrorIs(t, err, ErrNoConsole)
	assert.Nil(t, m)
}

func TestStep_WalksThePurchaseStates(t *testing.T) {
	m, out := newTestMachine(t, "c1\n2\nno\n")
	ctx := context.Background()

	want := []State{Selecting, Paying, Dispensing, Suggesting, Continuing, Exited}
	for _, next := range want {
		require.NoError(t, m.Step(ctx))
		assert.Equal(t, next, m.State())
	}

	item, err := m.Catalog().Lookup("C1")
	require.NoError(t, err)
	assert.Equal(t, 3, item.Stock)
	assert.Contains(t, out.String(), "Your change: AED 0.50")
	assert.Contains(t, out.String(), "Suggestion: You may also like **Biscuits**!")
	assert.Contains(t, out.String(), FarewellMessage)
}

func TestStep_InvalidCodeReturnsToBrowsing(t *testing.T) {
	m, out := newTestMachine(t, "B9\n")
	ctx := context.Background()

	require.NoError(t, m.Step(ctx))
	require.NoError(t, m.Step(ctx))
	assert.Equal(t, Browsing, m.State())
	assert.Contains(t, out.String(), InvalidCodeMessage)
}

func TestStep_OutOfStockReturnsToBrowsing(t *testing.T) {
	cat, err := catalog.New(catalog.Item{Code: "A1", Name: "Water", Price: money.MustParse("1"), Category: "Drinks", Stock: 0})
	require.NoError(t, err)

	var out bytes.Buffer
	m, err := New(Config{Console: console.New(strings.NewReader("a1\n"), &out), Catalog: cat})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, m.Step(ctx))
	assert.Contains(t, out.String(), "A1 - Water (AED 1.00) OUT OF STOCK")

	require.NoError(t, m.Step(ctx))
	assert.Equal(t, Browsing, m.State())
	assert.Contains(t, out.String(), OutOfStockMessage)
}

func TestRun_WaterExactPayment(t *testing.T) {
	m, out := newTestMachine(t, "A1\n1.00\nno\n")

	require.NoError(t, m.Run(context.Background()))

	item, err := m.Catalog().Lookup("A1")
	require.NoError(t, err)
	assert.Equal(t, 4, item.Stock)

	output := out.String()
	assert.True(t, strings.HasPrefix(output, WelcomeMessage+"\n"))
	assert.Contains(t, output, "Your change: AED 0.00")
	assert.NotContains(t, output, "Suggestion:")

	summary := m.Ledger().Summary()
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, "1.00", summary.Revenue.StringFixed(2))
}

func TestRun_InputClosed(t *testing.T) {
	m, _ := newTestMachine(t, "")

	err := m.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, Selecting, m.State())
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, out := newTestMachine(t, "A1\n")
	err := m.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "VENDING MENU")
}

func TestWantsAnother(t *testing.T) {
	for _, answer := range []string{"yes", "YES", "Yes", " yes "} {
		assert.True(t, WantsAnother(answer), answer)
	}
	for _, answer := range []string{"Y", "y", "no", "", "yes please", "ye"} {
		assert.False(t, WantsAnother(answer), answer)
	}
}

func TestMenu(t *testing.T) {
	menu := Menu(catalog.Default().GroupedByCategory())

	lines := strings.Split(menu, "\n")
	assert.Contains(t, lines, "[Drinks]")
	assert.Contains(t, lines, "[Hot Drinks]")
	assert.Contains(t, lines, "A1 - Water (AED 1.00) Stock: 5")
	assert.Contains(t, lines, "B2 - Chocolate (AED 2.50) Stock: 3")
	assert.Contains(t, lines, "C3 - Hot Chocolate (AED 2.00) Stock: 4")

	drinks := strings.Index(menu, "[Drinks]")
	snacks := strings.Index(menu, "[Snacks]")
	hot := strings.Index(menu, "[Hot Drinks]")
	assert.Less(t, drinks, snacks)
	assert.Less(t, snacks, hot)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "browsing", Browsing.String())
	assert.Equal(t, "exited", Exited.String())
	assert.Equal(t, "unknown", State(42).String())
}
