// Package rankfns holds the error taxonomy shared by the ranking kernels.
//
// The kernels themselves live in subpackages:
//
//	bm25      BM25 IDF, TF saturation and document-length normalization
//	tfidf     TF and IDF transforms that callers compose into TF-IDF schemes
//	lm        Jelinek-Mercer and Dirichlet query-likelihood smoothing
//	retriever the Retriever capability and reference top-k adapters
//
// Every kernel is a pure function of its arguments. Nothing here indexes,
// stores or fetches documents; a caller supplies the statistics (term
// frequency, document frequency, lengths, corpus size) and gets a score back.
//
// # Errors
//
// Two classes of failure are distinguished:
//
//	errors.Is(err, rankfns.ErrDomain)           // a divisor is zero with no valid fallback
//	errors.Is(err, rankfns.ErrInvalidParameter) // k1, b, lambda or mu outside its domain
//
// Use errors.As with *DomainError or *ParameterError to recover the
// operation name and the offending value.
package rankfns
