package domain

// Topic is a discussion category. Topics are seeded outside this API and
// have no mutation endpoint; the slug doubles as the identifier.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
