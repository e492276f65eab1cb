package catalog

import (
	"fmt"

	"giggo-server/internal/domain/listing"
)

// Store is the read-only catalog of service listings and categories. It is
// built once at startup from the compiled-in seed and never mutated, which
// makes every accessor safe for concurrent use without locking.
type Store struct {
	listings   []*listing.Listing
	byID       map[string]*listing.Listing
	categories []listing.Category
}

func NewStore() (*Store, error) {
	specs := seedListings()

	listings := make([]*listing.Listing, 0, len(specs))
	byID := make(map[string]*listing.Listing, len(specs))
	for _, spec := range specs {
		l, err := listing.New(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid seed listing %q: %w", spec.ID, err)
		}
		listings = append(listings, l)
		byID[l.ID()] = l
	}

	return &Store{
		listings:   listings,
		byID:       byID,
		categories: seedCategories(),
	}, nil
}

// All returns every listing in seed order. Callers must treat the slice as
// read-only.
func (s *Store) All() []*listing.Listing {
	return s.listings
}

// FindByID reports the listing and whether it exists. Unknown ids are a
// normal outcome, not an error: callers render a not-found view.
func (s *Store) FindByID(id string) (*listing.Listing, bool) {
	l, ok := s.byID[id]
	return l, ok
}

func (s *Store) ByCategory(category string) []*listing.Listing {
	var matched []*listing.Listing
	for _, l := range s.listings {
		if l.Category() == category {
			matched = append(matched, l)
		}
	}
	return matched
}

func (s *Store) Featured() []*listing.Listing {
	var featured []*listing.Listing
	for _, l := range s.listings {
		if l.Featured() {
			featured = append(featured, l)
		}
	}
	return featured
}

func (s *Store) Categories() []listing.Category {
	return s.categories
}
