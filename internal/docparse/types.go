package docparse

// Style identifies a docstring dialect.
type Style string

// Recognized docstring dialects.
const (
	StyleGoogle  Style = "google"
	StyleNumpy   Style = "numpy"
	StyleSphinx  Style = "sphinx"
	StyleEpytext Style = "epytext"
	StyleUnknown Style = "unknown"
)

// Doc is the structured form of one parsed docstring.
// All fields default to empty/absent; none is ever mutated after Parse returns.
type Doc struct {
	ShortDescription string
	LongDescription  string
	Params           []Param
	Returns          *Returns
	Raises           []RaiseEntry
	Examples         []string
	Notes            string
	Style            Style
}

// Param describes one documented parameter, in source order.
type Param struct {
	Name        string
	TypeName    string
	Description string
	Optional    bool
	Default     string
}

// Returns describes the documented return value.
type Returns struct {
	TypeName    string
	Description string
}

// RaiseEntry describes one documented exception.
type RaiseEntry struct {
	TypeName    string
	Description string
}
