package trading

import "fmt"

// Exchange abstracts the market the bot trades on.
type Exchange interface {
	MarketData(symbol string) ([]float64, error)
	Buy(symbol string, amount float64) error
	Sell(symbol string, amount float64) error
}

// Order is one buy or sell placed on a SimExchange.
type Order struct {
	Side   Action
	Symbol string
	Amount float64
}

// SimExchange is an in-memory exchange serving fixed price series, useful for
// demos and tests. It records every order placed.
type SimExchange struct {
	prices map[string][]float64
	Orders []Order
}

// NewSimExchange returns a SimExchange serving the given price series per
// symbol.
func NewSimExchange(prices map[string][]float64) *SimExchange {
	return &SimExchange{prices: prices}
}

func (e *SimExchange) MarketData(symbol string) ([]float64, error) {
	p, ok := e.prices[symbol]
	if !ok {
		return nil, fmt.Errorf("unknown symbol %s", symbol)
	}
	return p, nil
}

func (e *SimExchange) Buy(symbol string, amount float64) error {
	e.Orders = append(e.Orders, Order{Side: ActionBuy, Symbol: symbol, Amount: amount})
	return nil
}

func (e *SimExchange) Sell(symbol string, amount float64) error {
	e.Orders = append(e.Orders, Order{Side: ActionSell, Symbol: symbol, Amount: amount})
	return nil
}
