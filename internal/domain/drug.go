package domain

// Drug is a catalog entry. Names are unique case-insensitively; price
// and stock are stored as given (the API layer validates shape, the
// database owns the rows).
type Drug struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// DrugPatch is a partial update for a drug row. Nil fields are left
// untouched; the field set is the allow-list of updatable columns.
type DrugPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p DrugPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Stock == nil
}
