// Package masters canonicalizes the free-form master identifiers a model
// returns into the four fixed wisdom personas.
package masters

import (
	"regexp"
	"strings"
)

// Canonical master IDs. The set is closed.
const (
	Laozi  = "laozi"
	Buddha = "buddha"
	Jesus  = "jesus"
	Plato  = "plato"
)

// Master describes one canonical persona.
type Master struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameZh string `json:"name_zh"`
	Icon   string `json:"icon"`
}

var catalog = []Master{
	{ID: Laozi, Name: "Laozi", NameZh: "老子", Icon: "☯️"},
	{ID: Buddha, Name: "The Buddha", NameZh: "佛陀", Icon: "🪷"},
	{ID: Jesus, Name: "Jesus", NameZh: "耶稣", Icon: "✝️"},
	{ID: Plato, Name: "Plato", NameZh: "柏拉图", Icon: "🏛️"},
}

// aliases maps cleaned keys to canonical IDs. Read-only after init.
var aliases = map[string]string{
	Laozi:          Laozi,
	"lao_zi":       Laozi,
	"lao_tzu":      Laozi,
	"laotzu":       Laozi,
	"lao_tse":      Laozi,
	"laotse":       Laozi,
	"li_er":        Laozi,
	"old_master":   Laozi,
	"tao_te_ching": Laozi,
	"daodejing":    Laozi,
	"taoism":       Laozi,
	"老子":           Laozi,
	"李耳":           Laozi,

	Buddha:                Buddha,
	"the_buddha":          Buddha,
	"gautama":             Buddha,
	"gautama_buddha":      Buddha,
	"siddhartha":          Buddha,
	"siddhartha_gautama":  Buddha,
	"shakyamuni":          Buddha,
	"sakyamuni":           Buddha,
	"the_enlightened_one": Buddha,
	"buddhism":            Buddha,
	"佛陀":                  Buddha,
	"释迦牟尼":                Buddha,
	"佛祖":                  Buddha,

	Jesus:               Jesus,
	"christ":            Jesus,
	"jesus_christ":      Jesus,
	"jesus_of_nazareth": Jesus,
	"the_nazarene":      Jesus,
	"the_messiah":       Jesus,
	"yeshua":            Jesus,
	"christianity":      Jesus,
	"耶稣":                Jesus,
	"基督":                Jesus,
	"耶稣基督":              Jesus,

	Plato:              Plato,
	"aristocles":       Plato,
	"the_academy":      Plato,
	"philosopher_king": Plato,
	"platonism":        Plato,
	"柏拉图":              Plato,
}

var separators = regexp.MustCompile(`[- ]+`)

func clean(raw string) string {
	key := strings.TrimSpace(strings.ToLower(raw))
	return separators.ReplaceAllString(key, "_")
}

// NormalizeID maps raw to its canonical master ID. Unknown identifiers are
// returned in their cleaned form.
func NormalizeID(raw string) string {
	key := clean(raw)
	if id, ok := aliases[key]; ok {
		return id
	}
	return key
}

// Labeled is a record carrying a master ID. WithID returns a copy of the
// record with only the ID replaced.
type Labeled[T any] interface {
	GetID() string
	WithID(id string) T
}

// NormalizeRecords returns a new slice with every record's ID normalized,
// preserving order and all other fields.
func NormalizeRecords[T Labeled[T]](records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		out = append(out, r.WithID(NormalizeID(r.GetID())))
	}
	return out
}

// IsCanonical reports whether id is one of the four canonical IDs.
func IsCanonical(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Lookup returns the metadata of a canonical ID.
func Lookup(id string) (Master, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Master{}, false
}

// All returns the canonical masters in display order.
func All() []Master {
	out := make([]Master, len(catalog))
	copy(out, catalog)
	return out
}

// DisplayName picks the name matching the reply language.
func (m Master) DisplayName(chinese bool) string {
	if chinese {
		return m.NameZh
	}
	return m.Name
}
