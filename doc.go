// Package dividend implements a holdings ledger and dividend attribution
// engine for a personal dividend tracker.
//
// The engine reconstructs, from an append-only log of buy/sell records, the
// quantity of each holding owned as of any date, attributes per-share
// dividend payments to the holding size at the relevant date, maintains a
// weighted-average cost basis, aggregates dividend cash per currency and per
// calendar month, and compares the aggregates against user-defined cash-flow
// goals.
//
// Everything is a pure function over caller-supplied record slices: the
// engine owns no storage and performs no I/O. Persistence (JSONL ledger
// files, goal settings) and the remote dividend feed live next to the engine
// and are consumed by the pdv command line tool.
package dividend
