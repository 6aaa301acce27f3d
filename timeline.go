package dividend

import (
	"slices"
)

// A Timeline is the cumulative holdings of one stock: one point per
// transaction event, chronological, quantity clamped at zero. It is built
// once and then only queried.
type Timeline []TimelinePoint

// TimelinePoint is the position right after one transaction event.
type TimelinePoint struct {
	On       Date
	Quantity Quantity
}

// Timelines indexes the holdings timeline of every stock that has at least
// one usable transaction record.
type Timelines map[string]Timeline

// BuildTimelines replays the transaction history into one holdings timeline
// per stock. Records are grouped by stock id, ordered by (date, original
// index) so that same-day events replay deterministically, and accumulated
// with the running quantity clamped at zero: selling more than the recorded
// position (missing history) yields an empty position, never a negative one.
//
// Unusable records (no stock id, non-finite or zero quantity, unparseable
// date) are skipped. Pure function of its input.
func BuildTimelines(history []TransactionRecord) Timelines {
	events := make(map[string][]tradeEvent)
	for i, rec := range history {
		ev, ok := normalizeTrade(rec, i)
		if !ok {
			continue
		}
		events[ev.stockID] = append(events[ev.stockID], ev)
	}
	if len(events) == 0 {
		return nil
	}

	timelines := make(Timelines, len(events))
	for stockID, evs := range events {
		slices.SortFunc(evs, func(a, b tradeEvent) int {
			if c := a.on.Compare(b.on); c != 0 {
				return c
			}
			return a.index - b.index
		})
		running := Q(0)
		timeline := make(Timeline, 0, len(evs))
		for _, ev := range evs {
			running = running.Add(ev.delta())
			if running.IsNegative() {
				running = Q(0)
			}
			timeline = append(timeline, TimelinePoint{On: ev.on, Quantity: running})
		}
		timelines[stockID] = timeline
	}
	return timelines
}

// QuantityOn returns the quantity held as of a date: the last point at or
// before it, or zero if the timeline is empty or starts later. Binary search,
// the same timeline is queried once per dividend event.
func (t Timeline) QuantityOn(on Date) Quantity {
	// The comparator never reports equality, so the returned index is the
	// first point strictly after the target, even with same-day points.
	i, _ := slices.BinarySearchFunc(t, on, func(p TimelinePoint, target Date) int {
		if p.On.After(target) {
			return 1
		}
		return -1
	})
	if i == 0 {
		return Q(0)
	}
	return t[i-1].Quantity
}

// QuantityOn looks up a stock's position as of a date. Unknown stocks hold zero.
func (ts Timelines) QuantityOn(stockID string, on Date) Quantity {
	return ts[stockID].QuantityOn(on)
}
