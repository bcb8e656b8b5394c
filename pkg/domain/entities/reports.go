package entities

// Contribution is one source row's share of an aggregated route:
// per-client for demand, per-supplier for supply.
type Contribution struct {
	ContributorID   string     `json:"contributor_id"`
	ContributorName string     `json:"contributor_name"`
	Slots           SlotVector `json:"slots"`
	Total           Quantity   `json:"total"`
}

// AggregatedRoute is the per-route fold of demand or supply rows within a
// period. It is recomputed on every query and never persisted.
type AggregatedRoute struct {
	RouteKey         RouteKey       `json:"route_key"`
	PeriodID         string         `json:"period_id"`
	Slots            SlotVector     `json:"slots"`
	ContributorCount int            `json:"contributor_count"`
	Breakdown        []Contribution `json:"breakdown"`
}

// GapRecord compares aggregated demand against aggregated supply for one
// route. Gap is target minus committed, element-wise; a positive gap means
// the route is under-supplied.
type GapRecord struct {
	RouteKey        RouteKey       `json:"route_key"`
	Target          SlotVector     `json:"target"`
	Committed       SlotVector     `json:"committed"`
	Gap             SlotVector     `json:"gap"`
	TargetTotal     Quantity       `json:"target_total"`
	CommittedTotal  Quantity       `json:"committed_total"`
	GapTotal        Quantity       `json:"gap_total"`
	GapPercent      int            `json:"gap_percent"`
	DemandBreakdown []Contribution `json:"demand_breakdown"`
	SupplyBreakdown []Contribution `json:"supply_breakdown"`
}

// DispatchRouteLine is one route's committed quantities within a
// supplier's dispatch rows.
type DispatchRouteLine struct {
	RouteKey RouteKey   `json:"route_key"`
	Slots    SlotVector `json:"slots"`
	Total    Quantity   `json:"total"`
}

// SupplierDispatchRow groups a supplier's commitments across routes
type SupplierDispatchRow struct {
	SupplierID   SupplierID          `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`
	Routes       []DispatchRouteLine `json:"routes"`
	Totals       SlotVector          `json:"totals"`
	Total        Quantity            `json:"total"`
}

// DispatchSheet is the supplier-centric view of committed supply for a
// period. GrandTotals equals the element-wise sum of every supplier's
// Totals, which in turn sum their routes' slot vectors.
type DispatchSheet struct {
	PeriodID    string                `json:"period_id"`
	Suppliers   []SupplierDispatchRow `json:"suppliers"`
	GrandTotals SlotVector            `json:"grand_totals"`
	GrandTotal  Quantity              `json:"grand_total"`
}

// AccuracyRecord compares a route's forecasted demand against observed
// actuals. Variance is actual requested minus forecasted.
type AccuracyRecord struct {
	RouteKey        RouteKey `json:"route_key"`
	Forecasted      Quantity `json:"forecasted"`
	ActualRequested Quantity `json:"actual_requested"`
	ActualFulfilled Quantity `json:"actual_fulfilled"`
	Variance        Quantity `json:"variance"`
	AccuracyPercent int      `json:"accuracy_percent"`
	FulfillmentRate int      `json:"fulfillment_rate"`
}

// AccuracySummary aggregates forecast accuracy across all routes in a
// period. Its percentages are computed from the summed totals, not
// averaged from the per-route percentages.
type AccuracySummary struct {
	RouteCount      int      `json:"route_count"`
	Forecasted      Quantity `json:"forecasted"`
	ActualRequested Quantity `json:"actual_requested"`
	ActualFulfilled Quantity `json:"actual_fulfilled"`
	Variance        Quantity `json:"variance"`
	AccuracyPercent int      `json:"accuracy_percent"`
	FulfillmentRate int      `json:"fulfillment_rate"`
}
