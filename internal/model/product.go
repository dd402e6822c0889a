package model

// Variant is a bookable option of a product, for example a session length.
// Minutes is the billed duration; buffers configured per product type are
// added on top when computing slot occupancy but are never billed.
// PriceCents is the unit price in cents.
type Variant struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Minutes    int    `json:"minutes"`
	PriceCents int64  `json:"price"`
}

// Product is a reservable resource offered in the catalog. The Type tag
// selects the buffer minutes from settings; capacity is configured per
// product id in settings as well. Products are immutable for the lifetime
// of a request.
type Product struct {
	ID       string    `json:"id"`
	Name     string    `json:"name,omitempty"`
	Type     string    `json:"type"`
	Variants []Variant `json:"variants"`
}

// Variant returns the variant with the given id, or false when absent.
func (p Product) Variant(id string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
