package countries

// Country is one record from the name-search endpoint. All fields are a
// read-only snapshot of a single API response; the service owns the schema
// and we consume it as-is.
type Country struct {
	Name        Name                `json:"name"`
	TLD         []string            `json:"tld"`
	Independent bool                `json:"independent"`
	UNMember    bool                `json:"unMember"`
	Currencies  map[string]Currency `json:"currencies"`
	IDD         IDD                 `json:"idd"`
	Capital     []string            `json:"capital"`
	Region      string              `json:"region"`
	Subregion   string              `json:"subregion"`
	Languages   map[string]string   `json:"languages"`
	LatLng      []float64           `json:"latlng"`
	Borders     []string            `json:"borders"`
	Area        float64             `json:"area"`
	Population  int64               `json:"population"`
	Timezones   []string            `json:"timezones"`
	Continents  []string            `json:"continents"`
	Flag        string              `json:"flag"`
	Flags       Flags               `json:"flags"`
}

// Name holds the common and official country names.
type Name struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Currency describes one currency in use, keyed by ISO code in the parent map.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// IDD holds the international dialing prefix parts. The full calling code is
// the root followed by one of the suffixes.
type IDD struct {
	Root     string   `json:"root"`
	Suffixes []string `json:"suffixes"`
}

// Flags holds the flag image URLs and the alt text describing the flag.
type Flags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
	Alt string `json:"alt"`
}
