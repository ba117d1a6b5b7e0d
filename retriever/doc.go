// Package retriever defines the Retriever capability: rank the documents of
// a corpus for a query and return the best k.
//
// The package owns no documents. A Corpus is supplied by the caller (an
// inverted index, a database cursor, the in-memory corpus package) and the
// adapters here only combine its statistics with the kernels from bm25,
// tfidf and lm.
//
// # Ordering
//
// Results are sorted by descending score. Equal scores are ordered by
// ascending document ID, so output is deterministic for a given corpus.
//
// # Errors
//
// k <= 0 returns rankfns.ErrInvalidK and invalid parameters are rejected
// before the corpus is read. A domain error while scoring one document
// aborts the ranking by default; WithErrorPolicy(Skip) drops that document
// instead and logs it at debug level.
package retriever
