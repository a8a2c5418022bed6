// Package listing holds pagination and sorting fields shared by every list query.
package listing

// DefaultLimit is applied when a query sets no limit
const DefaultLimit = 50

// MaxLimit caps the number of rows returned by one list call
const MaxLimit = 200

// Sort orders
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Page is embedded into list queries
type Page struct {
	Limit     int    `validate:"gte=0,lte=200"`
	Offset    int    `validate:"gte=0"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// EffectiveLimit returns Limit, or DefaultLimit when unset
func (p Page) EffectiveLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}
	return p.Limit
}

// EffectiveSortOrder returns SortOrder, or descending when unset
func (p Page) EffectiveSortOrder() string {
	if p.SortOrder == "" {
		return SortDesc
	}
	return p.SortOrder
}
