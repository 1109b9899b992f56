package models

// Provenance records where an entity came from. Seeded records are never written to the
// remote store.
type Provenance string

const (
	ProvenanceSeeded Provenance = "SEEDED"
	ProvenanceRemote Provenance = "REMOTE"
)

// DataSource tells operators whether a read was served by the remote store or by the
// fallback dataset.
type DataSource string

const (
	SourceRemote   DataSource = "remote"
	SourceFallback DataSource = "fallback"
)
