package entity

// Node is a single value addressed by its data path
type Node struct {
	Path  string `json:"path" validate:"required,startswith=/,max=1024"`
	Value string `json:"value" validate:"required,max=255"`
}
