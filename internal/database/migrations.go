package database

// migrations is an ordered list of SQL migration groups. Each entry is a
// slice of SQL statements that are executed together in a single
// transaction. The version number is the 1-based index into this slice.
var migrations = [][]string{
	// Migration 1: listing collection and its child tables
	{
		`CREATE TABLE listings (
			id TEXT PRIMARY KEY,
			agency_id TEXT NOT NULL DEFAULT '',
			listing_type TEXT NOT NULL,
			heading TEXT NOT NULL DEFAULT '',
			price TEXT NOT NULL,
			street TEXT NOT NULL,
			suburb TEXT NOT NULL,
			state TEXT NOT NULL,
			postcode TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_listings_type ON listings(listing_type)`,

		`CREATE TABLE listing_categories (
			listing_id TEXT NOT NULL,
			category TEXT NOT NULL,
			PRIMARY KEY (listing_id, category),
			FOREIGN KEY (listing_id) REFERENCES listings(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE listing_attributes (
			listing_id TEXT NOT NULL,
			attr_key TEXT NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			value TEXT NOT NULL DEFAULT '',
			display_order INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (listing_id, attr_key),
			FOREIGN KEY (listing_id) REFERENCES listings(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE listing_images (
			listing_id TEXT NOT NULL,
			display_order INTEGER NOT NULL,
			url TEXT NOT NULL,
			image_type TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (listing_id, display_order),
			FOREIGN KEY (listing_id) REFERENCES listings(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE listing_agents (
			listing_id TEXT NOT NULL,
			display_order INTEGER NOT NULL,
			agent_id INTEGER NOT NULL DEFAULT 0,
			name TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			mobile TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (listing_id, display_order),
			FOREIGN KEY (listing_id) REFERENCES listings(id) ON DELETE CASCADE
		)`,
	},

	// Migration 2: newsletter subscribers
	{
		`CREATE TABLE subscribers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL
		)`,
	},
}
