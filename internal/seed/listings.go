package seed

import "github.com/gardianmky/listings/internal/domain"

// Agents reused across seed listings.
var (
	agentSmith = domain.Agent{
		AgentID:  1,
		Name:     "Jane Smith",
		Title:    "Senior Agent",
		Phone:    "07 4957 7424",
		Mobile:   "0412 555 101",
		ImageURL: "/images/agents/jane-smith.jpg",
	}
	agentDoe = domain.Agent{
		AgentID:  2,
		Name:     "John Doe",
		Title:    "Principal Agent",
		Phone:    "07 4957 7424",
		Mobile:   "0412 555 102",
		ImageURL: "/images/agents/john-doe.jpg",
	}
	agentLee = domain.Agent{
		AgentID:  3,
		Name:     "Priya Lee",
		Title:    "Property Manager",
		Phone:    "07 4957 7425",
		Mobile:   "0412 555 103",
		ImageURL: "/images/agents/priya-lee.jpg",
	}
)

// Listings returns the deterministic mock collection: residential sales and
// rentals, commercial sale and lease, plus sold and leased stock. Listing
// IDs are numeric strings because "newest" sorting uses the ID as a
// date-listed proxy.
func Listings() []domain.Listing {
	return []domain.Listing{
		{
			ListingID:  "101",
			AgencyID:   "GDN",
			Type:       domain.TypeResidential,
			Categories: []string{"House"},
			Address:    domain.Address{Street: "12 Shakespeare Street", Suburb: "Mackay", State: "QLD", Postcode: "4740"},
			Heading:    "Beautiful Family Home with Sparkling Pool",
			Price:      "$750,000",
			Attributes: []domain.Attribute{
				{Key: "bedrooms", Label: "Beds", Value: "4"},
				{Key: "bathrooms", Label: "Baths", Value: "2"},
				{Key: "carSpaces", Label: "Cars", Value: "2"},
				{Key: "landSize", Label: "Land", Value: "600 Square Mtr"},
			},
			Images: []domain.Image{{URL: "/images/listings/101-1.jpg", Type: "photo"}, {URL: "/images/listings/101-2.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentSmith},
		},
		{
			ListingID:  "102",
			AgencyID:   "GDN",
			Type:       domain.TypeResidential,
			Categories: []string{"House"},
			Address:    domain.Address{Street: "8 Gregory Street", Suburb: "North Mackay", State: "QLD", Postcode: "4740"},
			Heading:    "Renovated Queenslander Close to Town",
			Price:      "Offers Over $450,000",
			Attributes: []domain.Attribute{
				{Key: "bedrooms", Label: "Beds", Value: "3"},
				{Key: "bathrooms", Label: "Baths", Value: "1"},
				{Key: "carSpaces", Label: "Cars", Value: "1"},
				{Key: "landSize", Label: "Land", Value: "405 Square Mtr"},
			},
			Images: []domain.Image{{URL: "/images/listings/102-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentDoe},
		},
		{
			ListingID:  "103",
			AgencyID:   "GDN",
			Type:       domain.TypeResidential,
			Categories: []string{"Apartment"},
			Address:    domain.Address{Street: "45 River Street", Suburb: "Mackay", State: "QLD", Postcode: "4740"},
			Heading:    "Riverside Apartment with Air Conditioning",
			Price:      "$520,000",
			Attributes: []domain.Attribute{
				{Key: "bedrooms", Label: "Beds", Value: "2"},
				{Key: "bathrooms", Label: "Baths", Value: "2"},
				{Key: "carSpaces", Label: "Cars", Value: "1"},
			},
			Images: []domain.Image{{URL: "/images/listings/103-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentSmith},
		},
		{
			ListingID:  "104",
			AgencyID:   "GDN",
			Type:       domain.TypeResidential,
			Categories: []string{"Land"},
			Address:    domain.Address{Street: "Lot 18 Plantation Drive", Suburb: "Bakers Creek", State: "QLD", Postcode: "4740"},
			Heading:    "Large Residential Block Ready to Build",
			Price:      "Offers Over $220,000",
			Attributes: []domain.Attribute{
				{Key: "landSize", Label: "Land", Value: "1211 Square Mtr"},
			},
			Images: []domain.Image{{URL: "/images/listings/104-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentDoe},
		},
		{
			ListingID:  "105",
			AgencyID:   "GDN",
			Type:       domain.TypeResidential,
			Categories: []string{"House"},
			Address:    domain.Address{Street: "3 Beach Road", Suburb: "Bucasia", State: "QLD", Postcode: "4750"},
			Heading:    "Executive Beachside Home, Pool and Shed",
			Price:      "$1,150,000",
			Attributes: []domain.Attribute{
				{Key: "bedrooms", Label: "Beds", Value: "5"},
				{Key: "bathrooms", Label: "Baths", Value: "3"},
				{Key: "carSpaces", Label: "Cars", Value: "4"},
				{Key: "landSize", Label: "Land", Value: "850 Square Mtr"},
			},
			Images: []domain.Image{{URL: "/images/listings/105-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentSmith, agentDoe},
		},
		{
			ListingID:  "106",
			AgencyID:   "GDN",
			Type:       domain.TypeResidential,
			Categories: []string{"House"},
			Address:    domain.Address{Street: "22 Palm Avenue", Suburb: "South Mackay", State: "QLD", Postcode: "4740"},
			Heading:    "Neat Lowset Home, Pet Friendly Yard",
			Price:      "$480 per week",
			Attributes: []domain.Attribute{
				{Key: "bedrooms", Label: "Beds", Value: "3"},
				{Key: "bathrooms", Label: "Baths", Value: "1"},
				{Key: "carSpaces", Label: "Cars", Value: "2"},
				{Key: "landSize", Label: "Land", Value: "700 Square Mtr"},
			},
			Images: []domain.Image{{URL: "/images/listings/106-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentLee},
		},
		{
			ListingID:  "107",
			AgencyID:   "GDN",
			Type:       domain.TypeResidential,
			Categories: []string{"Apartment", "Furnished"},
			Address:    domain.Address{Street: "7/90 Sydney Street", Suburb: "Mackay", State: "QLD", Postcode: "4740"},
			Heading:    "Fully Furnished City Apartment with Air Con",
			Price:      "$550 per week",
			Attributes: []domain.Attribute{
				{Key: "bedrooms", Label: "Beds", Value: "2"},
				{Key: "bathrooms", Label: "Baths", Value: "2"},
				{Key: "carSpaces", Label: "Cars", Value: "1"},
			},
			Images: []domain.Image{{URL: "/images/listings/107-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentLee},
		},
		{
			ListingID:  "108",
			AgencyID:   "GDN",
			Type:       domain.TypeResidential,
			Categories: []string{"House"},
			Address:    domain.Address{Street: "15 Hillside Crescent", Suburb: "Mount Pleasant", State: "QLD", Postcode: "4740"},
			Heading:    "Spacious Highset for Rent",
			Price:      "$620 per week",
			Attributes: []domain.Attribute{
				{Key: "bedrooms", Label: "Beds", Value: "4"},
				{Key: "bathrooms", Label: "Baths", Value: "2"},
				{Key: "carSpaces", Label: "Cars", Value: "2"},
				{Key: "landSize", Label: "Land", Value: "620 Square Mtr"},
			},
			Images: []domain.Image{{URL: "/images/listings/108-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentLee},
		},
		{
			ListingID:  "109",
			AgencyID:   "GDN",
			Type:       domain.TypeCommercial,
			Categories: []string{"Commercial", "Retail"},
			Address:    domain.Address{Street: "67 Victoria Street", Suburb: "Mackay", State: "QLD", Postcode: "4740"},
			Heading:    "Prime Retail Frontage in the CBD",
			Price:      "For Sale $890,000",
			Attributes: []domain.Attribute{
				{Key: "floorArea", Label: "Floor Area", Value: "240 Square Mtr"},
				{Key: "carSpaces", Label: "Cars", Value: "3"},
			},
			Images: []domain.Image{{URL: "/images/listings/109-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentDoe},
		},
		{
			ListingID:  "110",
			AgencyID:   "GDN",
			Type:       domain.TypeCommercial,
			Categories: []string{"Commercial", "Office"},
			Address:    domain.Address{Street: "2/14 Wood Street", Suburb: "Mackay", State: "QLD", Postcode: "4740"},
			Heading:    "Modern Office Suite",
			Price:      "For Lease $42,000 p.a.",
			Attributes: []domain.Attribute{
				{Key: "floorArea", Label: "Floor Area", Value: "120 Square Mtr"},
				{Key: "carSpaces", Label: "Cars", Value: "2"},
			},
			Images: []domain.Image{{URL: "/images/listings/110-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentDoe},
		},
		{
			ListingID:  "111",
			AgencyID:   "GDN",
			Type:       domain.TypeCommercial,
			Categories: []string{"Commercial", "Industrial"},
			Address:    domain.Address{Street: "9 Enterprise Street", Suburb: "Paget", State: "QLD", Postcode: "4740"},
			Heading:    "Industrial Warehouse with Hardstand",
			Price:      "For Sale or Lease - Offers Invited",
			Attributes: []domain.Attribute{
				{Key: "floorArea", Label: "Floor Area", Value: "900 Square Mtr"},
				{Key: "landSize", Label: "Land", Value: "2400 Square Mtr"},
			},
			Images: []domain.Image{{URL: "/images/listings/111-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentDoe},
		},
		{
			ListingID:  "112",
			AgencyID:   "GDN",
			Type:       domain.TypeResidential,
			Categories: []string{"House", "Sold"},
			Address:    domain.Address{Street: "31 Juliet Street", Suburb: "East Mackay", State: "QLD", Postcode: "4740"},
			Heading:    "SOLD - Charming Cottage by the Beach",
			Price:      "$615,000",
			Attributes: []domain.Attribute{
				{Key: "bedrooms", Label: "Beds", Value: "3"},
				{Key: "bathrooms", Label: "Baths", Value: "2"},
				{Key: "carSpaces", Label: "Cars", Value: "1"},
				{Key: "landSize", Label: "Land", Value: "510 Square Mtr"},
			},
			Images: []domain.Image{{URL: "/images/listings/112-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentSmith},
		},
		{
			ListingID:  "113",
			AgencyID:   "GDN",
			Type:       domain.TypeResidential,
			Categories: []string{"House", "Leased"},
			Address:    domain.Address{Street: "5 Norris Road", Suburb: "North Mackay", State: "QLD", Postcode: "4740"},
			Heading:    "LEASED - Family Home with Pool",
			Price:      "$590 per week",
			Attributes: []domain.Attribute{
				{Key: "bedrooms", Label: "Beds", Value: "4"},
				{Key: "bathrooms", Label: "Baths", Value: "2"},
				{Key: "carSpaces", Label: "Cars", Value: "2"},
				{Key: "landSize", Label: "Land", Value: "680 Square Mtr"},
			},
			Images: []domain.Image{{URL: "/images/listings/113-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentLee},
		},
		{
			ListingID:  "114",
			AgencyID:   "GDN",
			Type:       domain.TypeResidential,
			Categories: []string{"House"},
			Address:    domain.Address{Street: "18 Ocean Avenue", Suburb: "Slade Point", State: "QLD", Postcode: "4740"},
			Heading:    "Ocean Views, Pool and Outdoor Entertaining",
			Price:      "Offers Over $695,000",
			Attributes: []domain.Attribute{
				{Key: "bedrooms", Label: "Beds", Value: "4"},
				{Key: "bathrooms", Label: "Baths", Value: "2"},
				{Key: "carSpaces", Label: "Cars", Value: "2"},
				{Key: "landSize", Label: "Land", Value: "740 Square Mtr"},
			},
			Images: []domain.Image{{URL: "/images/listings/114-1.jpg", Type: "photo"}},
			Agents: []domain.Agent{agentSmith},
		},
	}
}
