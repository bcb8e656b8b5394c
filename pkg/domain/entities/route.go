package entities

import "strings"

// RouteKey is the composite pickup+dropoff lane identifier used as the
// join key between demand and supply, e.g. "RUHJED" for Riyadh to Jeddah.
// Aggregation treats it as opaque: it is grouped and joined on, never
// parsed back into its location codes.
type RouteKey string

// NewRouteKey derives a route key from two location codes
func NewRouteKey(pickup, dropoff string) RouteKey {
	p := strings.ToUpper(strings.TrimSpace(pickup))
	d := strings.ToUpper(strings.TrimSpace(dropoff))
	return RouteKey(p + d)
}
