package dividend

import "slices"

// Weighted-average cost accounting. Buys accumulate cost, sells shrink the
// position at the running average cost: the cost per share is unaffected by
// a sell, only the total cost shrinks proportionally. Selling more than the
// recorded position is clamped, so neither quantity nor cost can go negative.

// CostBasis is the weighted-average cost state of one stock.
type CostBasis struct {
	Quantity  Quantity
	TotalCost Money
}

// AverageCost returns the weighted-average cost per share, zero for an empty
// position.
func (c CostBasis) AverageCost() Money {
	if !c.Quantity.IsPositive() {
		return M(0, c.TotalCost.Currency())
	}
	return c.TotalCost.Div(c.Quantity)
}

// applyBuy adds a lot at the given price. A buy without a usable price still
// grows the position, it just contributes no cost.
func (c CostBasis) applyBuy(ev tradeEvent) CostBasis {
	c.Quantity = c.Quantity.Add(ev.quantity)
	if ev.hasPrice {
		c.TotalCost = c.TotalCost.Add(ev.price.Mul(ev.quantity))
	}
	return c
}

// applySell removes at most the held quantity at the average cost.
func (c CostBasis) applySell(ev tradeEvent) CostBasis {
	sold := ev.quantity.Min(c.Quantity)
	if !sold.IsPositive() {
		return c
	}
	avg := c.AverageCost()
	c.Quantity = c.Quantity.Sub(sold)
	c.TotalCost = c.TotalCost.Sub(avg.Mul(sold))
	if c.Quantity.IsZero() || c.TotalCost.IsNegative() {
		// rounding residue must not survive an emptied position
		c.TotalCost = M(0, c.TotalCost.Currency())
	}
	return c
}

func (c CostBasis) apply(ev tradeEvent) CostBasis {
	if ev.sell {
		return c.applySell(ev)
	}
	return c.applyBuy(ev)
}

// CostBasisOn replays a stock's transaction history in chronological order up
// to and including the given date and returns its cost state. The replay
// order (date, then original index) matches the holdings timeline.
func CostBasisOn(history []TransactionRecord, stockID string, on Date) CostBasis {
	var events []tradeEvent
	for i, rec := range history {
		ev, ok := normalizeTrade(rec, i)
		if !ok || ev.stockID != stockID || ev.on.After(on) {
			continue
		}
		events = append(events, ev)
	}
	slices.SortFunc(events, func(a, b tradeEvent) int {
		if c := a.on.Compare(b.on); c != 0 {
			return c
		}
		return a.index - b.index
	})
	state := CostBasis{TotalCost: M(0, DefaultCurrency)}
	for _, ev := range events {
		state = state.apply(ev)
	}
	return state
}
