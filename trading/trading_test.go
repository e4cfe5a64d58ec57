package trading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/plugkit/core/strategy"
)

func TestAverageDecision(t *testing.T) {
	d := NewAverageDecision(3)
	// Last price below the window mean.
	assert.True(t, d.ShouldBuy([]float64{100, 110, 120, 90}))
	assert.False(t, d.ShouldSell([]float64{100, 110, 120, 90}))
	// Last price above the window mean.
	assert.True(t, d.ShouldSell([]float64{90, 100, 110, 130}))
	assert.False(t, d.ShouldBuy([]float64{90, 100, 110, 130}))
	// No data, no action.
	assert.False(t, d.ShouldBuy(nil))
	assert.False(t, d.ShouldSell(nil))
}

func TestAverageDecision_ShortSeries(t *testing.T) {
	d := NewAverageDecision(5)
	// Window larger than the series shrinks to the series.
	assert.True(t, d.ShouldBuy([]float64{100, 80}))
}

func TestMinMaxDecision(t *testing.T) {
	d := NewMinMaxDecision(30000, 32000)
	assert.True(t, d.ShouldBuy([]float64{29000}))
	assert.False(t, d.ShouldSell([]float64{29000}))
	assert.True(t, d.ShouldSell([]float64{33000}))
	assert.False(t, d.ShouldBuy([]float64{31000}))
	assert.False(t, d.ShouldSell([]float64{31000}))
}

func TestNewRegistry_Decisions(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, []string{DecisionAverage, DecisionMinMax}, reg.Keys())

	d, err := reg.Create(DecisionMinMax, map[string]any{"min_price": 30000.0, "max_price": 32000.0})
	require.NoError(t, err)
	assert.True(t, d.ShouldBuy([]float64{29500}))

	d, err = reg.Create(DecisionMinMax, nil)
	require.NoError(t, err)
	assert.False(t, d.ShouldBuy([]float64{32500}), "defaults apply without conf")

	d, err = reg.Create(DecisionAverage, map[string]any{"window": 2})
	require.NoError(t, err)
	assert.True(t, d.ShouldSell([]float64{100, 90, 120}))
}

func TestBot_Run(t *testing.T) {
	ex := NewSimExchange(map[string][]float64{
		"BTC/USD": {31000, 30500, 29000},
	})
	bot := NewBot(ex, nil, nil)
	bot.Use(NewMinMaxDecision(30000, 32000))

	action, err := bot.Run("BTC/USD")
	require.NoError(t, err)
	assert.Equal(t, ActionBuy, action)
	require.Len(t, ex.Orders, 1)
	assert.Equal(t, Order{Side: ActionBuy, Symbol: "BTC/USD", Amount: 10}, ex.Orders[0])
}

func TestBot_RunHold(t *testing.T) {
	ex := NewSimExchange(map[string][]float64{
		"BTC/USD": {31000},
	})
	bot := NewBot(ex, nil, nil)
	bot.Use(NewMinMaxDecision(30000, 32000))

	action, err := bot.Run("BTC/USD")
	require.NoError(t, err)
	assert.Equal(t, ActionHold, action)
	assert.Empty(t, ex.Orders)
}

func TestBot_SwapDecision(t *testing.T) {
	ex := NewSimExchange(map[string][]float64{
		"BTC/USD": {30000, 31000, 34000},
	})
	bot := NewBot(ex, nil, nil)

	bot.Use(NewMinMaxDecision(30000, 32000))
	action, err := bot.Run("BTC/USD")
	require.NoError(t, err)
	assert.Equal(t, ActionSell, action)

	bot.Use(NewAverageDecision(3))
	action, err = bot.Run("BTC/USD")
	require.NoError(t, err)
	assert.Equal(t, ActionSell, action)
	assert.Len(t, ex.Orders, 2)
}

func TestBot_NoDecisionSelected(t *testing.T) {
	ex := NewSimExchange(map[string][]float64{"BTC/USD": {31000}})
	bot := NewBot(ex, nil, nil)
	_, err := bot.Run("BTC/USD")
	assert.ErrorIs(t, err, strategy.ErrNoStrategy)
}

func TestBot_UnknownSymbol(t *testing.T) {
	bot := NewBot(NewSimExchange(nil), nil, nil)
	bot.Use(NewAverageDecision(3))
	_, err := bot.Run("DOGE/USD")
	assert.Error(t, err)
}
