package listing

import "errors"

var (
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrInvalidRating   = errors.New("rating must be between 0 and 5")
	ErrNegativeReviews = errors.New("review count cannot be negative")
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrEmptyCategory   = errors.New("category cannot be empty")
)

// Provider is the snapshot of the person offering a service, embedded in the
// listing it belongs to. It is denormalized on purpose: the catalog never
// joins against a provider table.
type Provider struct {
	ID            string
	Name          string
	Avatar        string // display initials
	Rating        float64
	ReviewCount   int
	Verified      bool
	CompletedGigs int
}

type Location struct {
	Lat float64
	Lng float64
}

// Listing is a bookable service offering. Listings are loaded once at process
// start and never mutated, so the type carries no update methods.
type Listing struct {
	id           string
	title        string
	category     string
	categoryIcon string
	description  string
	price        Money
	priceUnit    string
	provider     Provider
	location     Location
	distance     string
	duration     string
	tags         []string
	featured     bool
}

type Spec struct {
	ID           string
	Title        string
	Category     string
	CategoryIcon string
	Description  string
	PriceRupees  int64
	PriceUnit    string
	Provider     Provider
	Location     Location
	Distance     string
	Duration     string
	Tags         []string
	Featured     bool
}

func New(spec Spec) (*Listing, error) {
	if spec.Title == "" {
		return nil, ErrEmptyTitle
	}
	if spec.Category == "" {
		return nil, ErrEmptyCategory
	}
	if spec.PriceRupees <= 0 {
		return nil, ErrInvalidPrice
	}
	if spec.Provider.Rating < 0 || spec.Provider.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if spec.Provider.ReviewCount < 0 {
		return nil, ErrNegativeReviews
	}

	return &Listing{
		id:           spec.ID,
		title:        spec.Title,
		category:     spec.Category,
		categoryIcon: spec.CategoryIcon,
		description:  spec.Description,
		price:        NewMoney(spec.PriceRupees),
		priceUnit:    spec.PriceUnit,
		provider:     spec.Provider,
		location:     spec.Location,
		distance:     spec.Distance,
		duration:     spec.Duration,
		tags:         spec.Tags,
		featured:     spec.Featured,
	}, nil
}

func (l *Listing) ID() string           { return l.id }
func (l *Listing) Title() string        { return l.title }
func (l *Listing) Category() string     { return l.category }
func (l *Listing) CategoryIcon() string { return l.categoryIcon }
func (l *Listing) Description() string  { return l.description }
func (l *Listing) Price() Money         { return l.price }
func (l *Listing) PriceUnit() string    { return l.priceUnit }
func (l *Listing) Provider() Provider   { return l.provider }
func (l *Listing) Location() Location   { return l.location }
func (l *Listing) Distance() string     { return l.distance }
func (l *Listing) Duration() string     { return l.duration }
func (l *Listing) Featured() bool       { return l.featured }

func (l *Listing) Tags() []string {
	tags := make([]string, len(l.tags))
	copy(tags, l.tags)
	return tags
}

// Category groups listings on the explore surface. GigCount is a marketing
// figure from the catalog seed, not a live count.
type Category struct {
	ID       string
	Name     string
	Icon     string
	GigCount int
}
