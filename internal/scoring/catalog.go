package scoring

// Catalog is the immutable reference data used by the heuristics: an
// ordered list of domain keywords and a list of action verbs rewarded by
// providers that look for demonstrated impact language. It is loaded once
// at process start and injected into the scorers.
type Catalog struct {
	keywords    []string
	actionVerbs []string
}

// defaultKeywords is the built-in IT domain vocabulary, ordered for
// stable display of matches and misses.
var defaultKeywords = []string{
	"python",
	"java",
	"javascript",
	"typescript",
	"go",
	"react",
	"angular",
	"node",
	"sql",
	"nosql",
	"aws",
	"azure",
	"docker",
	"kubernetes",
	"git",
	"agile",
	"scrum",
	"machine learning",
	"data analysis",
	"communication",
	"leadership",
	"problem solving",
}

var defaultActionVerbs = []string{
	"developed",
	"implemented",
	"designed",
	"led",
	"managed",
	"created",
	"built",
	"improved",
	"optimized",
	"delivered",
	"launched",
	"achieved",
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultKeywords, defaultActionVerbs)
}

// New builds a catalog from the provided lists, copying them so callers
// cannot mutate the catalog afterwards.
func New(keywords, actionVerbs []string) *Catalog {
	return &Catalog{
		keywords:    append([]string(nil), keywords...),
		actionVerbs: append([]string(nil), actionVerbs...),
	}
}

// Keywords returns the ordered keyword list as a copy.
func (c *Catalog) Keywords() []string {
	return append([]string(nil), c.keywords...)
}

// ActionVerbs returns the action verb list as a copy.
func (c *Catalog) ActionVerbs() []string {
	return append([]string(nil), c.actionVerbs...)
}

// Len returns the number of catalog keywords.
func (c *Catalog) Len() int {
	return len(c.keywords)
}
