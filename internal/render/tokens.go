package render

// Styling tokens referenced by the tree. Themes map them to colors.
const (
	TokenBrand      = "brand.600"
	TokenBrandHover = "brand.700"
	TokenSurface    = "white"
	TokenStripe     = "gray.50"
	TokenBorder     = "gray.200"
	TokenMuted      = "gray.500"
	TokenLabel      = "gray.600"
	TokenTab        = "gray.700"
	TokenTabActive  = "gray.900"
)

// Fixed texts of the screen layout
const (
	DefaultSearchTitle  = "Search"
	DefaultFiltersTitle = "Quick Filters"
	DefaultResultsTitle = "Results"
	SearchPlaceholder   = "Search"
	SearchButtonText    = "Search"
	FilterLabel         = "Filter 1"
	PlaceholderText     = "Placeholder"
)

func stripeToken(stripe int) string {
	if stripe == 0 {
		return TokenSurface
	}
	return TokenStripe
}
