// Package tfidf exposes TF and IDF transforms as independent primitives.
//
// There is no single TF-IDF formula here; callers pick a TF transform and an
// IDF transform and multiply them, either directly or through Scheme:
//
//	w, err := tfidf.Scheme{TF: tfidf.LogScaled, IDF: tfidf.Standard}.Weight(tf, maxTF, n, df)
//
// Forms that would divide by zero return an error matching rankfns.ErrDomain.
package tfidf
