package entities

// ClientID identifies the client a demand forecast belongs to
type ClientID string

// SupplierID identifies the supplier behind a supply commitment
type SupplierID string

// DemandRow is one persisted demand-forecast row: a client's forecast
// quantities for a route within a planning period. Rows arriving from the
// persistence layer are already filtered to a single tenant.
type DemandRow struct {
	ID         string
	RouteKey   RouteKey
	PeriodID   string
	ClientID   ClientID
	ClientName string
	Slots      SlotVector

	// StoredTotal is the denormalized total carried by storage. It is
	// never trusted: totals are recomputed from Slots on every read.
	StoredTotal Quantity
}

// SupplyRow is one persisted supply-commitment row: a supplier's committed
// quantities for a route within a planning period.
type SupplyRow struct {
	ID           string
	RouteKey     RouteKey
	PeriodID     string
	SupplierID   SupplierID
	SupplierName string
	Slots        SlotVector

	// StoredTotal is the denormalized total carried by storage, ignored
	// in favor of recomputation.
	StoredTotal Quantity
}

// ActualRow is one observed-fulfillment row from the analytics feed,
// already normalized to the planning RouteKey by the importing layer.
type ActualRow struct {
	RouteKey  RouteKey
	PeriodID  string
	Requested Quantity
	Fulfilled Quantity
}
