package domain

// DateRange narrows a search to articles published within the given window.
type DateRange string

const (
	DateRangeDay   DateRange = "day"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
	DateRangeYear  DateRange = "year"
)

// Valid reports whether the date range is one of the supported values.
// The empty string means "no filter" and is valid.
func (d DateRange) Valid() bool {
	switch d {
	case "", DateRangeDay, DateRangeWeek, DateRangeMonth, DateRangeYear:
		return true
	}
	return false
}

// Category is a VnExpress site section used as a search filter. The value is
// the section slug the search endpoint expects.
type Category string

const (
	CategoryNews          Category = "thoi-su"
	CategoryWorld         Category = "the-gioi"
	CategoryBusiness      Category = "kinh-doanh"
	CategoryEntertainment Category = "giai-tri"
	CategorySports        Category = "the-thao"
	CategoryLaw           Category = "phap-luat"
	CategoryEducation     Category = "giao-duc"
	CategoryHealth        Category = "suc-khoe"
	CategoryLife          Category = "doi-song"
	CategoryTravel        Category = "du-lich"
	CategoryScience       Category = "khoa-hoc"
	CategoryDigital       Category = "so-hoa"
)

var categories = map[Category]struct{}{
	CategoryNews:          {},
	CategoryWorld:         {},
	CategoryBusiness:      {},
	CategoryEntertainment: {},
	CategorySports:        {},
	CategoryLaw:           {},
	CategoryEducation:     {},
	CategoryHealth:        {},
	CategoryLife:          {},
	CategoryTravel:        {},
	CategoryScience:       {},
	CategoryDigital:       {},
}

// Valid reports whether the category is a known section slug. The empty
// string means "no filter" and is valid.
func (c Category) Valid() bool {
	if c == "" {
		return true
	}
	_, ok := categories[c]
	return ok
}

// SearchQuery carries the parameters of one search call. Limit applies only
// to advanced search and falls back to a default when zero.
type SearchQuery struct {
	Query     string
	DateRange DateRange
	Category  Category
	Limit     int
}
