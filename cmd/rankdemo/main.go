package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/deanrtaylor1/rankfns/bm25"
	"github.com/deanrtaylor1/rankfns/cli"
	"github.com/deanrtaylor1/rankfns/corpus"
	"github.com/deanrtaylor1/rankfns/lm"
	"github.com/deanrtaylor1/rankfns/logger"
	"github.com/deanrtaylor1/rankfns/retriever"
	"github.com/deanrtaylor1/rankfns/tfidf"
	"github.com/deanrtaylor1/rankfns/util"
	"github.com/spf13/pflag"
)

var sampleDocs = map[string]string{
	"rust-intro":  "Rust is a systems programming language focused on safety and speed.",
	"go-intro":    "Go is a simple language for building reliable and efficient software.",
	"rust-memory": "Rust guarantees memory safety without a garbage collector, rust rust.",
	"bm25":        "BM25 ranks documents by term frequency and inverse document frequency.",
	"the-corpus":  "The corpus is the set of all documents the engine can rank.",
}

func usage(flags *pflag.FlagSet) {
	fmt.Println("rankdemo - ranking functions for information retrieval")
	fmt.Println()
	fmt.Println("Usage: rankdemo [OPTIONS] [QUERY...]")
	fmt.Println("    no query:        print a walkthrough of every kernel")
	fmt.Println("    QUERY:           rank the corpus for QUERY")
	fmt.Println("    --interactive:   explore the corpus with prompts")
	fmt.Println()
	flags.PrintDefaults()
}

func main() {
	cfg := cli.DefaultConfig()
	flags := pflag.NewFlagSet("rankdemo", pflag.ContinueOnError)
	dir := flags.StringP("dir", "d", "", "directory of .txt/.md/.html documents (default: built-in sample)")
	k := flags.IntP("top", "k", 10, "number of results")
	interactive := flags.BoolP("interactive", "i", false, "start the interactive explorer")
	asJSON := flags.Bool("json", false, "print results as JSON")
	help := flags.BoolP("help", "h", false, "show help")
	flags.StringVarP(&cfg.Ranker, "ranker", "r", cfg.Ranker, "bm25, tfidf or lm")
	flags.Float64Var(&cfg.K1, "k1", cfg.K1, "BM25 k1")
	flags.Float64Var(&cfg.B, "b", cfg.B, "BM25 b")
	flags.StringVar(&cfg.TF, "tf", cfg.TF, "TF variant: raw, log, boolean, augmented")
	flags.StringVar(&cfg.IDF, "idf", cfg.IDF, "IDF variant: standard, smoothed, probabilistic")
	flags.StringVar(&cfg.Smoothing, "smoothing", cfg.Smoothing, "LM smoothing: dirichlet or jm")
	flags.Float64Var(&cfg.SmoothingParam, "smoothing-param", cfg.SmoothingParam, "mu for dirichlet, lambda for jm")
	flags.BoolVar(&cfg.SkipErrors, "skip-errors", false, "drop documents that fail to score instead of aborting")

	if err := flags.Parse(os.Args[1:]); err != nil {
		usage(flags)
		os.Exit(2)
	}
	if *help {
		usage(flags)
		return
	}

	c, err := loadCorpus(*dir)
	if err != nil {
		logger.HandleError(err)
		os.Exit(1)
	}

	if *interactive {
		if err := cli.InitialPrompt(c, cfg, *k); err != nil {
			logger.HandleError(err)
			os.Exit(1)
		}
		return
	}

	query := strings.Join(flags.Args(), " ")
	if query == "" {
		walkthrough(os.Stdout)
		return
	}

	r, err := cli.NewRetriever(cfg)
	if err != nil {
		logger.HandleError(err)
		os.Exit(2)
	}
	if *asJSON {
		results, err := r.Rank(corpus.Query(query), c, *k)
		if err != nil {
			logger.HandleError(err)
			os.Exit(1)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toJSON(results)); err != nil {
			logger.HandleError(err)
			os.Exit(1)
		}
		return
	}
	if err := cli.Run(os.Stdout, r, c, query, *k); err != nil {
		logger.HandleError(err)
		os.Exit(1)
	}
}

type jsonResult struct {
	DocID string `json:"doc_id"`
	// Score is null when it is not finite, which JSON cannot represent.
	Score *float64 `json:"score"`
}

func toJSON(results []retriever.Result) []jsonResult {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i].DocID = r.DocID
		if !math.IsInf(r.Score, 0) && !math.IsNaN(r.Score) {
			score := r.Score
			out[i].Score = &score
		}
	}
	return out
}

func loadCorpus(dir string) (*corpus.Corpus, error) {
	c := corpus.New()
	if dir == "" {
		for id, text := range sampleDocs {
			c.Add(id, text)
		}
		return c, nil
	}

	ok, err := util.CheckDirIsValid(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	start := time.Now()
	docs, err := util.LoadDocuments(dir)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.HTML {
			c.AddHTML(d.Path, d.Content)
		} else {
			c.Add(d.Path, d.Content)
		}
	}
	logger.HandleLog("loaded corpus", "dir", dir, "docs", c.Len(), "elapsed", time.Since(start))
	return c, nil
}

// walkthrough prints every kernel on a tiny corpus: 5 documents, average
// length 10, "rust" in 2 of them and "the" in all 5.
func walkthrough(w io.Writer) {
	const (
		nDocs     = 5
		avgDocLen = 10.0
		dfRust    = 2
		dfThe     = 5
	)

	fmt.Fprintln(w, "=== BM25 IDF (ln(1 + (N-df+0.5)/(df+0.5))) ===")
	fmt.Fprintf(w, "  'rust' (df=%d): %.4f\n", dfRust, bm25.IDFPlus1(nDocs, dfRust))
	fmt.Fprintf(w, "  'the'  (df=%d): %.4f\n", dfThe, bm25.IDFPlus1(nDocs, dfThe))

	p := bm25.DefaultParams()
	fmt.Fprintf(w, "\n=== BM25 TF (k1=%g, b=%g) ===\n", p.K1, p.B)
	for _, in := range []struct{ tf, docLen float64 }{{3, 12}, {1, 8}, {0, 10}} {
		fmt.Fprintf(w, "  tf=%.0f, doc_len=%.0f => %.4f\n", in.tf, in.docLen, bm25.TF(in.tf, in.docLen, avgDocLen, p.K1, p.B))
	}

	fmt.Fprintln(w, "\n=== Full BM25 score (IDF * TF) ===")
	score, _ := p.Score(3, 12, avgDocLen, nDocs, dfRust)
	fmt.Fprintf(w, "  'rust' in doc (tf=3, len=12): %.4f\n", score)

	fmt.Fprintln(w, "\n=== TF-IDF variants ===")
	tfRaw, _ := tfidf.TF(3, 3, tfidf.Raw)
	tfLog, _ := tfidf.TF(3, 3, tfidf.LogScaled)
	idfStd, _ := tfidf.IDF(nDocs, dfRust, tfidf.Standard)
	idfSmooth, _ := tfidf.IDF(nDocs, dfRust, tfidf.Smoothed)
	fmt.Fprintf(w, "  Raw TF(3)=%.2f, LogScaled TF(3)=%.4f\n", tfRaw, tfLog)
	fmt.Fprintf(w, "  Standard IDF=%.4f, Smoothed IDF=%.4f\n", idfStd, idfSmooth)
	fmt.Fprintf(w, "  TF-IDF (raw, standard): %.4f\n", tfRaw*idfStd)
	if _, err := tfidf.IDF(nDocs, 0, tfidf.Standard); err != nil {
		fmt.Fprintf(w, "  Standard IDF with df=0: %v\n", err)
	}

	fmt.Fprintln(w, "\n=== Language model P(t|D) ===")
	// "rust" occurs 10 times in a 1000-token collection.
	jm, _ := lm.JelinekMercer(3, 12, 10, 1000, 0.3)
	dir, _ := lm.Dirichlet(3, 12, 10, 1000, lm.DefaultMu)
	fmt.Fprintf(w, "  Jelinek-Mercer (lambda=0.3): %.4f\n", jm)
	fmt.Fprintf(w, "  Dirichlet      (mu=%d):    %.4f\n", lm.DefaultMu, dir)
}
