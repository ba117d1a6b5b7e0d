package retriever

// Result is one ranked document.
type Result struct {
	DocID string  `json:"doc_id"`
	Score float64 `json:"score"`
}

// QueryTerm is a query term and how many times it occurs in the query.
type QueryTerm struct {
	Term   string
	Weight float64
}

func (t QueryTerm) weight() float64 {
	if t.Weight == 0 {
		return 1
	}
	return t.Weight
}

// QueryStats holds the distinct terms of a query.
type QueryStats struct {
	Terms []QueryTerm
}

// NewQueryStats folds repeated terms into a single weighted QueryTerm,
// keeping first-seen order.
func NewQueryStats(terms ...string) QueryStats {
	index := make(map[string]int, len(terms))
	var q QueryStats
	for _, t := range terms {
		if i, ok := index[t]; ok {
			q.Terms[i].Weight++
			continue
		}
		index[t] = len(q.Terms)
		q.Terms = append(q.Terms, QueryTerm{Term: t, Weight: 1})
	}
	return q
}

// Document is the per-document view a Corpus hands to a Retriever.
type Document struct {
	ID        string
	Len       float64
	TermFreqs map[string]float64
}

// TF returns the frequency of term in the document.
func (d Document) TF(term string) float64 {
	return d.TermFreqs[term]
}

// MaxTF returns the largest term frequency in the document.
func (d Document) MaxTF() float64 {
	var max float64
	for _, tf := range d.TermFreqs {
		if tf > max {
			max = tf
		}
	}
	return max
}

// Stats supplies corpus-level statistics.
type Stats interface {
	NumDocs() uint64
	AvgDocLen() float64
	// CollectionLen is the total number of tokens in the corpus.
	CollectionLen() float64
	DocFreq(term string) uint64
	// CollectionTF is the number of occurrences of term across the corpus.
	CollectionTF(term string) float64
}

// Corpus is Stats plus a way to visit every document.
type Corpus interface {
	Stats
	// ForEachDocument calls fn for each document, one call at a time, and
	// stops at the first error fn returns.
	ForEachDocument(fn func(Document) error) error
}

// Retriever ranks the documents of a corpus for a query.
type Retriever interface {
	// Rank returns at most k results in descending score order.
	Rank(q QueryStats, c Corpus, k int) ([]Result, error)
}
