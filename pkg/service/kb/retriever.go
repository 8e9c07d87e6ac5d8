package kb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flowreach/flowreach/pkg/domain/model"
)

// DefaultTopK is the number of context items used when no explicit
// limit is given.
const DefaultTopK = 3

// Result holds the selected context items and their rendered text block
type Result struct {
	Items []model.KBItem
	Text  string
}

// Retrieve scores every KB item against the query and returns the top
// k items with a rendered context block.
//
// Scoring is case-insensitive over the haystack of name, description
// and keywords joined by spaces: +5 when the full query is a substring
// of the haystack, +1 for each query token (split on runs of
// non-alphanumeric characters) that is a substring. Items scoring 0
// are excluded. Ties keep encounter order.
func Retrieve(query string, k int, kb *model.KB) Result {
	if kb == nil || len(kb.Items) == 0 {
		return Result{}
	}
	if k <= 0 {
		k = DefaultTopK
	}

	q := strings.ToLower(query)
	tokens := tokenize(q)

	type scored struct {
		item  model.KBItem
		score int
	}

	var candidates []scored
	for _, item := range kb.Items {
		haystack := strings.ToLower(item.Name + " " + item.Description + " " + strings.Join(item.Keywords, " "))

		score := 0
		if q != "" && strings.Contains(haystack, q) {
			score += 5
		}
		for _, token := range tokens {
			if strings.Contains(haystack, token) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		candidates = append(candidates, scored{item: item, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if k > len(candidates) {
		k = len(candidates)
	}

	result := Result{Items: make([]model.KBItem, k)}
	for i := 0; i < k; i++ {
		result.Items[i] = candidates[i].item
	}
	result.Text = renderContext(result.Items)
	return result
}

// tokenize splits a lowercased query on runs of non-alphanumeric
// characters
func tokenize(q string) []string {
	return strings.FieldsFunc(q, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
}

// renderContext builds the human-readable context block, one line per
// item. The keywords parenthetical is omitted when the item has no
// keywords.
func renderContext(items []model.KBItem) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "- %s: %s", item.Name, item.Description)
		if len(item.Keywords) > 0 {
			fmt.Fprintf(&sb, " (keywords: %s)", strings.Join(item.Keywords, ", "))
		}
	}
	return sb.String()
}
