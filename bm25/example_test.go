package bm25_test

import (
	"fmt"

	"github.com/deanrtaylor1/rankfns/bm25"
)

func Example() {
	// 1000 documents, the term appears in 10 of them.
	idf := bm25.IDFPlus1(1000, 10)
	tf := bm25.TF(3, 120, 100, bm25.DefaultK1, bm25.DefaultB)

	fmt.Printf("idf=%.3f tf=%.3f score=%.3f\n", idf, tf, idf*tf)
	// Output: idf=4.557 tf=1.507 score=6.867
}
