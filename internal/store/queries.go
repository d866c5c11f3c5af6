package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.
// Money columns cross the wire as text so decimal values round-trip exactly.

// Search queries.
const (
	queryRegisterOwner = `
		INSERT INTO search_owners (owner_id) VALUES (@owner_id)
		ON CONFLICT (owner_id) DO NOTHING`

	queryInsertSearch = `
		INSERT INTO searches (
			search_id, owner_id, name, keywords,
			max_price, profit_margin, min_profit, created_at
		) VALUES (
			@search_id, @owner_id, @name, @keywords,
			@max_price::text::numeric, @profit_margin::text::numeric,
			@min_profit::text::numeric, @created_at
		)`

	searchColumns = `
		s.search_id, s.owner_id, s.name, s.keywords,
		s.max_price::text, s.profit_margin::text, s.min_profit::text, s.created_at`

	queryListSearches = `
		SELECT` + searchColumns + `
		FROM searches s
		WHERE s.owner_id = $1
		ORDER BY s.seq`

	querySnapshotSearches = `
		SELECT` + searchColumns + `
		FROM searches s
		JOIN search_owners o ON o.owner_id = s.owner_id
		ORDER BY o.first_seq, s.seq`

	querySearchAtIndex = `
		SELECT s.seq,` + searchColumns + `
		FROM searches s
		WHERE s.owner_id = $1
		ORDER BY s.seq
		OFFSET $2 LIMIT 1
		FOR UPDATE`

	queryDeleteSearch = `DELETE FROM searches WHERE seq = $1`

	queryDropOwnerIfEmpty = `
		DELETE FROM search_owners o
		WHERE o.owner_id = $1
		AND NOT EXISTS (SELECT 1 FROM searches s WHERE s.owner_id = o.owner_id)`

	queryCountSearches = `
		SELECT count(*), count(DISTINCT owner_id) FROM searches`
)

// Seen-item queries.
const (
	queryIsSeen = `SELECT EXISTS(SELECT 1 FROM seen_items WHERE dedup_key = $1)`

	queryMarkSeen = `
		INSERT INTO seen_items (dedup_key) VALUES ($1)
		ON CONFLICT (dedup_key) DO NOTHING`

	queryCountSeen = `SELECT count(*) FROM seen_items`

	queryPruneSeen = `DELETE FROM seen_items WHERE seen_at < $1`
)
