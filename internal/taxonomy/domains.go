package taxonomy

// DomainTree returns the shipped domain taxonomy: the industries and
// settings a registered agent operates in.
func DomainTree() *Tree {
	return &Tree{
		Version: Version,
		Categories: []Category{
			{
				ID:          1,
				Slug:        "technology",
				Name:        "Technology",
				Description: "Software, infrastructure, and connected devices.",
				Children: []Category{
					{ID: 2, Slug: "blockchain", Name: "Blockchain", ParentID: 1},
					{ID: 3, Slug: "iot", Name: "Internet of Things", ParentID: 1},
					{ID: 4, Slug: "cybersecurity", Name: "Cybersecurity", ParentID: 1},
					{ID: 5, Slug: "cloud_infrastructure", Name: "Cloud Infrastructure", ParentID: 1},
					{ID: 6, Slug: "developer_tools", Name: "Developer Tools", ParentID: 1},
				},
			},
			{
				ID:          7,
				Slug:        "finance",
				Name:        "Finance",
				Description: "Markets, payments, and capital management.",
				Children: []Category{
					{ID: 8, Slug: "defi", Name: "Decentralized Finance", ParentID: 7},
					{ID: 9, Slug: "payments", Name: "Payments", ParentID: 7},
					{ID: 10, Slug: "insurance", Name: "Insurance", ParentID: 7},
					{ID: 11, Slug: "asset_management", Name: "Asset Management", ParentID: 7},
				},
			},
			{
				ID:          12,
				Slug:        "healthcare",
				Name:        "Healthcare",
				Description: "Clinical care, diagnostics, and medical research.",
				Children: []Category{
					{ID: 13, Slug: "diagnostics", Name: "Diagnostics", ParentID: 12},
					{ID: 14, Slug: "patient_care", Name: "Patient Care", ParentID: 12},
					{ID: 15, Slug: "medical_research", Name: "Medical Research", ParentID: 12},
				},
			},
			{
				ID:          16,
				Slug:        "commerce",
				Name:        "Commerce",
				Description: "Buying, selling, and moving goods.",
				Children: []Category{
					{ID: 17, Slug: "retail", Name: "Retail", ParentID: 16},
					{ID: 18, Slug: "marketplaces", Name: "Marketplaces", ParentID: 16},
					{ID: 19, Slug: "supply_chain", Name: "Supply Chain", ParentID: 16},
					{ID: 20, Slug: "customer_service", Name: "Customer Service", ParentID: 16},
				},
			},
			{
				ID:          21,
				Slug:        "media",
				Name:        "Media & Entertainment",
				Description: "Games, music, video, and publishing.",
				Children: []Category{
					{ID: 22, Slug: "gaming", Name: "Gaming", ParentID: 21},
					{ID: 23, Slug: "music", Name: "Music", ParentID: 21},
					{ID: 24, Slug: "video", Name: "Video", ParentID: 21},
					{ID: 25, Slug: "publishing", Name: "Publishing", ParentID: 21},
				},
			},
			{
				ID:          26,
				Slug:        "science",
				Name:        "Science & Research",
				Description: "Scientific discovery and environmental monitoring.",
				Children: []Category{
					{ID: 27, Slug: "climate", Name: "Climate", ParentID: 26},
					{ID: 28, Slug: "space", Name: "Space", ParentID: 26},
					{ID: 29, Slug: "materials", Name: "Materials", ParentID: 26},
				},
			},
			{
				ID:          30,
				Slug:        "education",
				Name:        "Education",
				Description: "Teaching, tutoring, and learning support.",
				Children: []Category{
					{ID: 31, Slug: "tutoring", Name: "Tutoring", ParentID: 30},
					{ID: 32, Slug: "language_learning", Name: "Language Learning", ParentID: 30},
				},
			},
			{
				ID:          33,
				Slug:        "governance",
				Name:        "Governance",
				Description: "Coordinating decisions in decentralized organizations.",
				Children: []Category{
					{ID: 34, Slug: "dao_operations", Name: "DAO Operations", ParentID: 33},
					{ID: 35, Slug: "voting", Name: "Voting", ParentID: 33},
					{ID: 36, Slug: "treasury_management", Name: "Treasury Management", ParentID: 33},
				},
			},
			{
				ID:          37,
				Slug:        "legal",
				Name:        "Legal",
				Description: "Contracts, regulation, and compliance work.",
				Children: []Category{
					{ID: 38, Slug: "contract_review", Name: "Contract Review", ParentID: 37},
					{ID: 39, Slug: "compliance", Name: "Compliance", ParentID: 37},
				},
			},
			{
				ID:          40,
				Slug:        "energy",
				Name:        "Energy",
				Description: "Power generation, distribution, and markets.",
				Children: []Category{
					{ID: 41, Slug: "grid_management", Name: "Grid Management", ParentID: 40},
					{ID: 42, Slug: "carbon_markets", Name: "Carbon Markets", ParentID: 40},
				},
			},
			{
				ID:          43,
				Slug:        "real_estate",
				Name:        "Real Estate",
				Description: "Property listings, valuation, and management.",
			},
		},
	}
}
