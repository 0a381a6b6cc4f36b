package extract

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/akarasev/harvester/internal/types"
)

// Func extracts the main article text from a parsed document. A Func
// returns types.ErrContentGone (possibly wrapped) when the markup it
// expects is absent.
type Func func(doc *goquery.Document) (string, error)

// Registry maps a source's extractor key to its extraction rule.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a registry pre-populated with every built-in
// publisher rule.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func, len(builtins))}
	for key, fn := range builtins {
		r.funcs[key] = fn
	}
	return r
}

// Register adds or replaces a rule.
func (r *Registry) Register(key string, fn Func) {
	r.funcs[key] = fn
}

// Keys lists registered extractor keys, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.funcs))
	for k := range r.funcs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extract parses the page, strips script and style nodes, and runs the
// rule registered for the source. Structural misses surface as
// *types.ExtractError so the caller can drop just this article.
func (r *Registry) Extract(src *types.Source, page string) (string, error) {
	fn, ok := r.funcs[src.ExtractorKey()]
	if !ok {
		return "", &types.ExtractError{Source: src.Name, Err: types.ErrNoExtractor}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", &types.ExtractError{Source: src.Name, Err: err}
	}
	doc.Find("script, style").Remove()

	text, err := fn(doc)
	if err != nil {
		return "", &types.ExtractError{Source: src.Name, Err: err}
	}
	return text, nil
}

// --- shared selector helpers ---

// classSelector turns a space-separated class attribute value into a
// compound CSS class selector ("field-item even" -> ".field-item.even").
func classSelector(classes string) string {
	var b strings.Builder
	for _, c := range strings.Fields(classes) {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}

// firstByClass finds the first element of tag carrying all the given
// classes, scoped to root.
func firstByClass(root *goquery.Selection, tag, classes string) *goquery.Selection {
	return root.Find(tag + classSelector(classes)).First()
}

// paragraphs gathers the text of <p> nodes under the first element
// matching each class list in turn. With deep=false only direct child
// paragraphs count, matching how most publishers nest their body text.
func paragraphs(root *goquery.Selection, tag string, deep bool, classLists ...string) string {
	var b strings.Builder
	for _, classes := range classLists {
		div := firstByClass(root, tag, classes)
		if div.Length() == 0 {
			continue
		}
		ps := div.ChildrenFiltered("p")
		if deep {
			ps = div.Find("p")
		}
		ps.Each(func(_ int, p *goquery.Selection) {
			b.WriteString("\n")
			b.WriteString(p.Text())
		})
	}
	return b.String()
}
