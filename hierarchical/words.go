package hierarchical

import (
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/treeseg"
	"golang.org/x/net/html"
)

// wordRe matches runs of Unicode letters. Digits and underscores split words.
var wordRe = regexp.MustCompile(`\p{L}+`)

// Words is the set of distinct lowercase words in a node's text.
type Words struct {
	set map[string]struct{}

	// sum is an order-independent fingerprint of the set.
	sum uint64
}

// WordSet returns the distinct lowercase words found in n's full text.
func WordSet(n *html.Node) Words {
	return wordsOf(treeseg.Text(n))
}

func wordsOf(text string) Words {
	w := Words{set: make(map[string]struct{})}
	for _, token := range wordRe.FindAllString(text, -1) {
		token = strings.ToLower(token)
		if _, ok := w.set[token]; ok {
			continue
		}
		w.set[token] = struct{}{}
		w.sum += xxhash.Sum64String(token)
	}
	return w
}

// Len returns the number of distinct words.
func (w Words) Len() int {
	return len(w.set)
}

// Contains reports whether word is in the set.
func (w Words) Contains(word string) bool {
	_, ok := w.set[word]
	return ok
}

// Equal reports whether both sets hold exactly the same words.
func (w Words) Equal(other Words) bool {
	if w.sum != other.sum || len(w.set) != len(other.set) {
		return false
	}
	for word := range w.set {
		if !other.Contains(word) {
			return false
		}
	}
	return true
}
