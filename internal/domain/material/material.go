package material

// Material is a value type embedded in a project or task. It is never
// persisted on its own; its ID only has to be unique within the parent list.
type Material struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"`
	Cost     float64 `json:"cost,omitempty" validate:"gte=0"`
	Supplier string  `json:"supplier,omitempty"`
}
