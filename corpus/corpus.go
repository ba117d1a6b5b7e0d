// Package corpus is an in-memory retriever.Corpus for examples and tests.
//
// It tokenizes text with the lexer package and keeps per-document term
// frequencies plus the corpus counters the ranking kernels need. It is not
// an inverted index: every Rank call visits every document.
package corpus

import (
	"sort"
	"sync"

	"github.com/deanrtaylor1/rankfns/lexer"
	"github.com/deanrtaylor1/rankfns/retriever"
)

type TermFreq map[string]int

type DocData struct {
	TermCount int
	Terms     TermFreq
}

// Corpus is safe for concurrent use.
type Corpus struct {
	mu sync.RWMutex
	// docs is the term frequency table per document id
	docs map[string]DocData
	// df is the number of documents containing a term
	df map[string]int
	// cf is the number of occurrences of a term across all documents
	cf        map[string]int
	termCount int
}

var _ retriever.Corpus = (*Corpus)(nil)

// New returns an empty corpus.
func New() *Corpus {
	return &Corpus{
		docs: make(map[string]DocData),
		df:   make(map[string]int),
		cf:   make(map[string]int),
	}
}

// Add tokenizes content and stores it under id, replacing any previous
// document with the same id.
func (c *Corpus) Add(id, content string) {
	c.AddTokens(id, lexer.Tokens(content))
}

// AddHTML is Add for an html page; only its text content is indexed.
func (c *Corpus) AddHTML(id, htmlContent string) {
	c.Add(id, lexer.ParseHtmlTextContent(htmlContent))
}

// AddTokens stores already tokenized content under id.
func (c *Corpus) AddTokens(id string, tokens []string) {
	data := ConvertToDocData(tokens)

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.docs[id]; ok {
		c.removeLocked(old)
	}
	for token, freq := range data.Terms {
		c.df[token] += 1
		c.cf[token] += freq
	}
	c.termCount += data.TermCount
	c.docs[id] = data
}

func (c *Corpus) removeLocked(old DocData) {
	for token, freq := range old.Terms {
		c.df[token] -= 1
		c.cf[token] -= freq
		if c.df[token] == 0 {
			delete(c.df, token)
			delete(c.cf, token)
		}
	}
	c.termCount -= old.TermCount
}

// ConvertToDocData counts tokens into a DocData
func ConvertToDocData(tokens []string) DocData {
	tf := make(TermFreq)
	for _, token := range tokens {
		tf[token] += 1
	}
	return DocData{TermCount: len(tokens), Terms: tf}
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// TopTerms returns the n most frequent terms across the corpus.
func (c *Corpus) TopTerms(n int) []lexer.Stat {
	c.mu.RLock()
	stats := lexer.MapToSortedSlice(c.cf)
	c.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	if n < len(stats) {
		stats = stats[:n]
	}
	return stats
}

func (c *Corpus) NumDocs() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return uint64(len(c.docs))
}

// AvgDocLen returns the mean document length in tokens, 0 for an empty corpus.
func (c *Corpus) AvgDocLen() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.docs) == 0 {
		return 0
	}
	return float64(c.termCount) / float64(len(c.docs))
}

func (c *Corpus) CollectionLen() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return float64(c.termCount)
}

func (c *Corpus) DocFreq(term string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return uint64(c.df[term])
}

func (c *Corpus) CollectionTF(term string) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return float64(c.cf[term])
}

// ForEachDocument visits documents in ascending id order. It works on a
// snapshot, so fn may add documents without deadlocking.
func (c *Corpus) ForEachDocument(fn func(retriever.Document) error) error {
	for _, d := range c.snapshot() {
		if err := fn(d); err != nil {
			return err
		}
	}
	return nil
}

func (c *Corpus) snapshot() []retriever.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	docs := make([]retriever.Document, 0, len(c.docs))
	for id, data := range c.docs {
		tf := make(map[string]float64, len(data.Terms))
		for token, freq := range data.Terms {
			tf[token] = float64(freq)
		}
		docs = append(docs, retriever.Document{ID: id, Len: float64(data.TermCount), TermFreqs: tf})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

// Query tokenizes text the same way documents are tokenized.
func Query(text string) retriever.QueryStats {
	return retriever.NewQueryStats(lexer.Tokens(text)...)
}
