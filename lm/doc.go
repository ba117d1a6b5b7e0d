// Package lm implements query-likelihood smoothing for language-model
// retrieval.
//
// Both estimators blend the document maximum-likelihood estimate tf/docLen
// with the collection estimate collectionTF/collectionLen:
//
//	Jelinek-Mercer: (1-lambda)*P(t|D) + lambda*P(t|C)
//	Dirichlet:      (tf + mu*P(t|C)) / (docLen + mu)
//
// For counts with tf <= docLen and collectionTF <= collectionLen the result
// lies in [0, 1].
package lm
