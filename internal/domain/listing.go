package domain

import "strings"

// Listing represents a single property record: for sale, for rent, sold,
// leased, or commercial.
type Listing struct {
	ListingID  string      `json:"listingID"`
	AgencyID   string      `json:"agencyID,omitempty"`
	Type       string      `json:"type"`
	Categories []string    `json:"categories"`
	Address    Address     `json:"address"`
	Heading    string      `json:"heading"`
	Price      string      `json:"price"`
	Attributes []Attribute `json:"bedBathCarLand"`
	Images     []Image     `json:"images"`
	Agents     []Agent     `json:"agents,omitempty"`
}

// Address is a structured street address. All fields are required on a
// well-formed listing.
type Address struct {
	Street   string `json:"street"`
	Suburb   string `json:"suburb"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

// Attribute is a single display attribute of a listing, e.g.
// {Key: "bedrooms", Label: "Beds", Value: "4"}. Values are display strings,
// not normalized numbers.
type Attribute struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

// Image is a reference to a listing photo.
type Image struct {
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

// Agent is a listing agent contact.
type Agent struct {
	AgentID  int    `json:"agentID,omitempty"`
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	ImageURL string `json:"imageURL,omitempty"`
}

// Listing type values used by the upstream feed.
const (
	TypeResidential = "Residential"
	TypeCommercial  = "Commercial"
)

// Attribute returns the display value for key and whether the attribute is
// present. Lookups tolerate absence.
func (l *Listing) Attribute(key string) (string, bool) {
	for _, a := range l.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// AttributeValue returns the display value for key, or "" when absent.
func (l *Listing) AttributeValue(key string) string {
	v, _ := l.Attribute(key)
	return v
}

// AttributeInt returns the attribute value parsed as an integer. Absent or
// unparseable values yield 0, never an error.
func (l *Listing) AttributeInt(key string) int {
	v, ok := l.Attribute(key)
	if !ok {
		return 0
	}
	return LeadingDigitValue(v)
}

// PriceValue returns the numeric value of the display price, obtained by
// stripping every non-digit character. "$450,000" yields 450000. Non-numeric
// display prices yield 0.
func (l *Listing) PriceValue() int {
	return DigitValue(l.Price)
}

// IsRental reports whether a residential listing is offered for rent rather
// than sale, inferred from rental markers in the display price ("week",
// "rent"). The upstream feed carries no explicit sale/rent flag.
func (l *Listing) IsRental() bool {
	p := strings.ToLower(l.Price)
	return strings.Contains(p, "rent") || strings.Contains(p, "week")
}

// IsCommercial reports whether the listing is commercial, by type or by
// category tag.
func (l *Listing) IsCommercial() bool {
	if l.Type == TypeCommercial {
		return true
	}
	return l.HasCategory(TypeCommercial)
}

// Status infers the listing status from the display price: "Offer" when the
// price invites offers, "Sale" otherwise.
func (l *Listing) Status() string {
	if strings.Contains(l.Price, "Offers") {
		return "Offer"
	}
	return "Sale"
}

// HasCategory reports whether any category tag equals cat, case-insensitively.
func (l *Listing) HasCategory(cat string) bool {
	for _, c := range l.Categories {
		if strings.EqualFold(c, cat) {
			return true
		}
	}
	return false
}

// HasFeature reports whether the listing offers the given feature id. The
// feed has no structured feature list, so features are inferred: "pool" and
// "aircon" from the heading, "garage" from a positive car-space count.
// Unrecognized ids never match.
func (l *Listing) HasFeature(id string) bool {
	heading := strings.ToLower(l.Heading)
	switch id {
	case "pool":
		return strings.Contains(heading, "pool")
	case "aircon":
		return strings.Contains(heading, "air")
	case "garage":
		return l.AttributeInt("carSpaces") > 0
	}
	return false
}

// HeadingOrCategoryContains reports whether the heading or any category tag
// contains sub, case-insensitively. Used for rental flags such as
// "furnished" and "pet".
func (l *Listing) HeadingOrCategoryContains(sub string) bool {
	sub = strings.ToLower(sub)
	if strings.Contains(strings.ToLower(l.Heading), sub) {
		return true
	}
	for _, c := range l.Categories {
		if strings.Contains(strings.ToLower(c), sub) {
			return true
		}
	}
	return false
}
