package trading

import (
	"fmt"
	"time"

	"github.com/kilianp07/plugkit/core/logger"
	"github.com/kilianp07/plugkit/core/metrics"
	"github.com/kilianp07/plugkit/core/strategy"
)

// Action is the outcome of one bot run.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionHold Action = "hold"
)

// Amount traded per order.
const orderAmount = 10

// AsStrategy adapts a Decision to the generic strategy contract, mapping a
// price series to the action to take. Buy wins when both sides trigger.
func AsStrategy(d Decision) strategy.Strategy[[]float64, Action] {
	return strategy.Func[[]float64, Action](func(prices []float64) (Action, error) {
		switch {
		case d.ShouldBuy(prices):
			return ActionBuy, nil
		case d.ShouldSell(prices):
			return ActionSell, nil
		default:
			return ActionHold, nil
		}
	})
}

// Bot connects to an exchange and trades according to the currently selected
// decision strategy.
type Bot struct {
	exchange Exchange
	log      logger.Logger
	sink     metrics.Sink
	ctx      *strategy.Context[[]float64, Action]
}

// NewBot returns a Bot with no decision selected. A nil logger or sink falls
// back to the no-op implementation.
func NewBot(exchange Exchange, log logger.Logger, sink metrics.Sink) *Bot {
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Bot{
		exchange: exchange,
		log:      log,
		sink:     sink,
		ctx:      strategy.NewContext[[]float64, Action](),
	}
}

// Use selects the decision applied by the next Run call.
func (b *Bot) Use(d Decision) {
	b.ctx.Use(AsStrategy(d))
}

// Run fetches market data for symbol, consults the selected decision and
// places at most one order. It reports the action taken.
func (b *Bot) Run(symbol string) (Action, error) {
	prices, err := b.exchange.MarketData(symbol)
	if err != nil {
		return "", fmt.Errorf("market data for %s: %w", symbol, err)
	}
	start := time.Now()
	action, err := b.ctx.Execute(prices)
	b.sink.RecordExecution(metrics.ExecutionEvent{
		Component: "trading",
		OK:        err == nil,
		Duration:  time.Since(start),
	})
	if err != nil {
		return "", err
	}
	switch action {
	case ActionBuy:
		if err := b.exchange.Buy(symbol, orderAmount); err != nil {
			return "", fmt.Errorf("buy %s: %w", symbol, err)
		}
		b.log.Infof("bought %v %s", orderAmount, symbol)
	case ActionSell:
		if err := b.exchange.Sell(symbol, orderAmount); err != nil {
			return "", fmt.Errorf("sell %s: %w", symbol, err)
		}
		b.log.Infof("sold %v %s", orderAmount, symbol)
	default:
		b.log.Infof("no action needed for %s", symbol)
	}
	return action, nil
}
