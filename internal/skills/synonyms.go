package skills

// SynonymResolver maps skill name variants to a canonical form. The mapping
// is pluggable so it can be extended without touching scoring logic.
type SynonymResolver interface {
	// Resolve returns the canonical form of a normalized skill token, or
	// the empty string when no mapping exists.
	Resolve(skill string) string
}

// TableResolver resolves synonyms from an in-memory lookup table.
type TableResolver struct {
	table map[string]string
}

// NewTableResolver builds a TableResolver from a variant -> canonical map.
// Keys and values are expected to be in normalized (lower-case) form.
func NewTableResolver(table map[string]string) *TableResolver {
	return &TableResolver{table: table}
}

// Resolve implements SynonymResolver.
func (r *TableResolver) Resolve(skill string) string {
	return r.table[skill]
}

// defaultSynonyms maps common skill abbreviations to canonical names.
var defaultSynonyms = map[string]string{
	"golang":              "go",
	"go lang":             "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"k8s":                 "kubernetes",
	"reactjs":             "react",
	"vuejs":               "vue",
	"nodejs":              "node",
	"node js":             "node",
	"py":                  "python",
	"postgres":            "postgresql",
	"pg":                  "postgresql",
	"ml":                  "machine learning",
	"ai":                  "artificial intelligence",
	"gcp":                 "google cloud",
	"amazon web services": "aws",
}

// DefaultResolver returns a resolver backed by the built-in synonym table.
func DefaultResolver() *TableResolver {
	return NewTableResolver(defaultSynonyms)
}
