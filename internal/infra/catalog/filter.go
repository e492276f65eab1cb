package catalog

import "giggo-server/internal/domain/listing"

// Filter tracks the explore page's active category chip. Selecting a chip
// filters; selecting the same chip again clears the filter. This is toggle
// state, not a set: at most one category is active.
type Filter struct {
	active *string
}

func NewFilter(initial *string) Filter {
	if initial != nil && *initial == "" {
		initial = nil
	}
	return Filter{active: initial}
}

func (f Filter) Active() *string {
	return f.active
}

// Toggle activates category, or clears the filter when category is already
// active.
func (f Filter) Toggle(category string) Filter {
	if f.active != nil && *f.active == category {
		return Filter{}
	}
	return Filter{active: &category}
}

// Apply derives the filtered view. No active category yields the full
// catalog; an unknown category yields an empty (but non-nil) result so the
// caller can render a distinct no-results state.
func (f Filter) Apply(store *Store) []*listing.Listing {
	if f.active == nil {
		return store.All()
	}
	matched := store.ByCategory(*f.active)
	if matched == nil {
		matched = []*listing.Listing{}
	}
	return matched
}
