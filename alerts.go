package dividend

// Alert kinds: an ex-date alert fires the day before a stock trades
// ex-dividend, a payment alert the day before the cash arrives.
const (
	AlertEx  = "ex"
	AlertPay = "pay"
)

// DividendAlert reports an upcoming dividend event for a held stock.
type DividendAlert struct {
	StockID   string
	StockName string
	Kind      string
	PerShare  float64
	Quantity  Quantity
	Total     Money
}

// UpcomingAlerts returns one alert per dividend event falling on the day
// after asOf, for stocks held on that day. Held quantities come from the
// clamped holdings timeline, so an over-sold stock never alerts with a
// negative position. A zero asOf means today.
func UpcomingAlerts(history []TransactionRecord, dividends []DividendRecord, asOf Date) []DividendAlert {
	if len(dividends) == 0 {
		return nil
	}
	if asOf.IsZero() {
		asOf = Today()
	}
	tomorrow := asOf.Add(1)
	timelines := BuildTimelines(history)

	var alerts []DividendAlert
	for _, rec := range dividends {
		quantity := timelines.QuantityOn(rec.StockID, tomorrow)
		if !quantity.IsPositive() {
			continue
		}
		ev, ok := normalizeDividend(rec)
		if !ok {
			continue
		}
		for _, e := range []struct {
			raw  string
			kind string
		}{
			{rec.DividendDate, AlertEx},
			{rec.PaymentDate, AlertPay},
		} {
			on, err := ParseDate(e.raw)
			if err != nil || on.Compare(tomorrow) != 0 {
				continue
			}
			alerts = append(alerts, DividendAlert{
				StockID:   rec.StockID,
				StockName: rec.StockName,
				Kind:      e.kind,
				PerShare:  rec.Dividend,
				Quantity:  quantity,
				Total:     ev.perShare.Mul(quantity),
			})
		}
	}
	return alerts
}
