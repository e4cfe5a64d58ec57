// Package trading implements buy/sell decision strategies and a bot that
// delegates each run to the currently selected one.
package trading

import (
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/plugkit/core/registry"
)

// Decision decides whether to buy or sell given a price series, oldest
// first. Parameters are fixed at construction; swapping parameters means
// building a new Decision.
type Decision interface {
	ShouldBuy(prices []float64) bool
	ShouldSell(prices []float64) bool
}

// Builtin decision keys.
const (
	DecisionAverage = "average"
	DecisionMinMax  = "minmax"
)

// AverageDecision compares the latest price against the mean of a trailing
// window.
type AverageDecision struct {
	window int
}

// NewAverageDecision builds an AverageDecision. Windows below one fall back
// to three.
func NewAverageDecision(window int) AverageDecision {
	if window < 1 {
		window = 3
	}
	return AverageDecision{window: window}
}

func (d AverageDecision) ShouldBuy(prices []float64) bool {
	if len(prices) == 0 {
		return false
	}
	return prices[len(prices)-1] < d.mean(prices)
}

func (d AverageDecision) ShouldSell(prices []float64) bool {
	if len(prices) == 0 {
		return false
	}
	return prices[len(prices)-1] > d.mean(prices)
}

func (d AverageDecision) mean(prices []float64) float64 {
	w := d.window
	if w > len(prices) {
		w = len(prices)
	}
	return stat.Mean(prices[len(prices)-w:], nil)
}

// MinMaxDecision buys below a floor price and sells above a ceiling.
type MinMaxDecision struct {
	minPrice float64
	maxPrice float64
}

func NewMinMaxDecision(minPrice, maxPrice float64) MinMaxDecision {
	return MinMaxDecision{minPrice: minPrice, maxPrice: maxPrice}
}

func (d MinMaxDecision) ShouldBuy(prices []float64) bool {
	return len(prices) > 0 && prices[len(prices)-1] < d.minPrice
}

func (d MinMaxDecision) ShouldSell(prices []float64) bool {
	return len(prices) > 0 && prices[len(prices)-1] > d.maxPrice
}

// NewRegistry returns a registry with the builtin decisions bound. The
// average decision accepts a "window" setting, minmax accepts "min_price"
// and "max_price".
func NewRegistry() *registry.Registry[Decision] {
	r := registry.New[Decision]()
	r.MustRegister(DecisionAverage, func(conf map[string]any) (Decision, error) {
		var c struct {
			Window int `json:"window"`
		}
		if err := registry.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewAverageDecision(c.Window), nil
	})
	r.MustRegister(DecisionMinMax, func(conf map[string]any) (Decision, error) {
		c := struct {
			MinPrice float64 `json:"min_price"`
			MaxPrice float64 `json:"max_price"`
		}{MinPrice: 32000, MaxPrice: 33000}
		if err := registry.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewMinMaxDecision(c.MinPrice, c.MaxPrice), nil
	})
	return r
}
