package domain

// DatabaseRecord is one entry of the source-database catalog.
type DatabaseRecord struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Alive      bool   `json:"alive" yaml:"alive"`
	Ordinal    int    `json:"ordinal" yaml:"ordinal"`
}
