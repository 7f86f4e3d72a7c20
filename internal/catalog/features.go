// ABOUTME: Feature builder for genre multi-hot and TF-IDF overview vectors
// ABOUTME: Fitted once over the catalog, reused unchanged for every query
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/harper/cinematch/internal/models"
)

// stopWords are dropped during overview tokenization.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "been": {}, "be": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {},
	"these": {}, "those": {},
}

// Features holds the genre vocabulary, the fitted text feature space, and the
// cached vectors for every catalog movie. Vectors are computed once at load;
// Project applies the same fitted vocabulary and IDF weights to an arbitrary
// movie so the geometry is identical across requests.
type Features struct {
	genreVocab []string
	genreIndex map[string]int

	termIndex map[string]int
	idf       []float64

	genreVecs [][]float64
	textVecs  []map[int]float64
}

// fitFeatures builds the vocabularies and caches a vector pair per movie.
func fitFeatures(movies []models.Movie) *Features {
	f := &Features{
		genreIndex: make(map[string]int),
		termIndex:  make(map[string]int),
	}

	// Genre vocabulary: sorted distinct genres across the catalog.
	genreSet := make(map[string]struct{})
	for _, m := range movies {
		for _, g := range m.Genres {
			genreSet[g] = struct{}{}
		}
	}
	f.genreVocab = make([]string, 0, len(genreSet))
	for g := range genreSet {
		f.genreVocab = append(f.genreVocab, g)
	}
	sort.Strings(f.genreVocab)
	for i, g := range f.genreVocab {
		f.genreIndex[g] = i
	}

	// Term vocabulary and document frequencies over all overviews.
	docTokens := make([][]string, len(movies))
	df := make(map[string]int)
	for i, m := range movies {
		tokens := Tokenize(m.Overview)
		docTokens[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}
	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	f.idf = make([]float64, len(terms))
	for i, t := range terms {
		f.termIndex[t] = i
		f.idf[i] = math.Log(float64(len(movies))/float64(df[t]+1)) + 1
	}

	// Cache one vector pair per catalog movie.
	f.genreVecs = make([][]float64, len(movies))
	f.textVecs = make([]map[int]float64, len(movies))
	for i, m := range movies {
		f.genreVecs[i] = f.genreVector(m.Genres)
		f.textVecs[i] = f.textVector(docTokens[i])
	}

	return f
}

// Project computes the vector pair for an arbitrary movie using the fitted
// vocabularies. Terms outside the fitted vocabulary are ignored.
func (f *Features) Project(m models.Movie) (genre []float64, text map[int]float64) {
	return f.genreVector(m.Genres), f.textVector(Tokenize(m.Overview))
}

// GenreVector returns the cached multi-hot genre vector for catalog movie i.
func (f *Features) GenreVector(i int) []float64 {
	return f.genreVecs[i]
}

// TextVector returns the cached L2-normalized TF-IDF vector for catalog
// movie i, as a sparse term-index to weight map.
func (f *Features) TextVector(i int) map[int]float64 {
	return f.textVecs[i]
}

// TermCount returns the dimensionality of the text feature space.
func (f *Features) TermCount() int {
	return len(f.idf)
}

func (f *Features) genreVector(genres []string) []float64 {
	vec := make([]float64, len(f.genreVocab))
	for _, g := range genres {
		if i, ok := f.genreIndex[g]; ok {
			vec[i] = 1
		}
	}
	return vec
}

// textVector builds an L2-normalized TF-IDF vector from pre-tokenized text.
func (f *Features) textVector(tokens []string) map[int]float64 {
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[int]int)
	for _, t := range tokens {
		if i, ok := f.termIndex[t]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	vec := make(map[int]float64, len(counts))
	total := float64(len(tokens))
	var norm float64
	for i, c := range counts {
		w := (float64(c) / total) * f.idf[i]
		vec[i] = w
		norm += w * w
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// Tokenize lowercases text, strips everything but letters, digits, and
// spaces, then drops stop words and tokens shorter than three characters.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	var tokens []string
	for _, t := range strings.Fields(b.String()) {
		if len(t) <= 2 {
			continue
		}
		if _, stop := stopWords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}
