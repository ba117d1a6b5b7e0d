package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/deanrtaylor1/rankfns/bm25"
	"github.com/deanrtaylor1/rankfns/corpus"
	"github.com/deanrtaylor1/rankfns/lm"
	"github.com/deanrtaylor1/rankfns/retriever"
	"github.com/deanrtaylor1/rankfns/tfidf"
	"github.com/deanrtaylor1/rankfns/util"
)

//CLI Interface of rankdemo

// Ranker names accepted by NewRetriever.
const (
	RankerBM25  = "bm25"
	RankerTFIDF = "tfidf"
	RankerLM    = "lm"
)

// Config selects a ranking function and its parameters.
type Config struct {
	Ranker    string
	K1        float64
	B         float64
	TF        string
	IDF       string
	Smoothing string
	// SmoothingParam is lambda for Jelinek-Mercer and mu for Dirichlet.
	SmoothingParam float64
	SkipErrors     bool
}

// DefaultConfig is BM25 with k1=1.2, b=0.75.
func DefaultConfig() Config {
	return Config{
		Ranker:         RankerBM25,
		K1:             bm25.DefaultK1,
		B:              bm25.DefaultB,
		TF:             tfidf.LogScaled.String(),
		IDF:            tfidf.Smoothed.String(),
		Smoothing:      "dirichlet",
		SmoothingParam: lm.DefaultMu,
	}
}

// NewRetriever builds the retriever described by cfg.
func NewRetriever(cfg Config) (retriever.Retriever, error) {
	var opts []retriever.Option
	if cfg.SkipErrors {
		opts = append(opts, retriever.WithErrorPolicy(retriever.Skip))
	}

	switch strings.ToLower(cfg.Ranker) {
	case RankerBM25:
		p := bm25.Params{K1: cfg.K1, B: cfg.B}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return retriever.NewBM25(p, opts...), nil
	case RankerTFIDF:
		tv, err := tfidf.ParseTFVariant(cfg.TF)
		if err != nil {
			return nil, err
		}
		iv, err := tfidf.ParseIDFVariant(cfg.IDF)
		if err != nil {
			return nil, err
		}
		return retriever.NewTFIDF(tfidf.Scheme{TF: tv, IDF: iv}, opts...), nil
	case RankerLM:
		s, err := lm.NewSmoothing(cfg.Smoothing, cfg.SmoothingParam)
		if err != nil {
			return nil, err
		}
		return retriever.NewQueryLikelihood(s, opts...), nil
	}
	return nil, fmt.Errorf("unknown ranker %q", cfg.Ranker)
}

// Clean up the CLI response to remove the bullet point
func formatCliResponse(response string) string {
	return strings.Replace(response, "○ ", "", -1)
}

// PrintResults writes one line per result
func PrintResults(w io.Writer, results []retriever.Result, elapsed time.Duration) {
	if len(results) == 0 {
		fmt.Fprintln(w, util.TerminalYellow+"No results found"+util.TerminalReset)
	}
	for i, r := range results {
		fmt.Fprintf(w, "%2d. %-40s %.4f\n", i+1, r.DocID, r.Score)
	}
	fmt.Fprintf(w, util.TerminalCyan+"Ranked %d results in %d ms"+util.TerminalReset+"\n", len(results), elapsed.Milliseconds())
}

// Run ranks query against c and prints the results
func Run(w io.Writer, r retriever.Retriever, c *corpus.Corpus, query string, k int) error {
	start := time.Now()
	results, err := r.Rank(corpus.Query(query), c, k)
	if err != nil {
		return err
	}
	PrintResults(w, results, time.Since(start))
	return nil
}

// Utility function to get a single input from the user
func getSingleInputPrompt(message string) (string, error) {
	prompt := &survey.Input{
		Message: message,
	}

	var input string
	err := survey.AskOne(prompt, &input)
	return input, err
}

func selectPrompt(message string, options []string) (string, error) {
	bulleted := make([]string, len(options))
	for i, o := range options {
		bulleted[i] = "○ " + o
	}
	prompt := &survey.Select{
		Message: message,
		Options: bulleted,
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return formatCliResponse(selected), nil
}

// Start the interactive explorer over c
func InitialPrompt(c *corpus.Corpus, cfg Config, k int) error {
	fmt.Printf(util.TerminalGreen+"%d documents loaded | top terms: %v\n"+util.TerminalReset, c.Len(), c.TopTerms(5))

	for {
		ranker, err := selectPrompt("Select a ranking function:", []string{RankerBM25, RankerTFIDF, RankerLM, "Exit"})
		if err != nil {
			return err
		}
		if ranker == "Exit" {
			return nil
		}
		cfg.Ranker = ranker
		r, err := NewRetriever(cfg)
		if err != nil {
			return err
		}

		again, err := StartQueryPrompt(c, r, k)
		if err != nil || !again {
			return err
		}
	}
}

// Get queries from the user until they ask for another ranking function
// (true) or to exit (false)
func StartQueryPrompt(c *corpus.Corpus, r retriever.Retriever, k int) (bool, error) {
	for {
		fmt.Println()
		query, err := getSingleInputPrompt("Enter a query:")
		if err != nil {
			return false, err
		}

		if err := Run(os.Stdout, r, c, query, k); err != nil {
			fmt.Println(util.TerminalRed+err.Error()+util.TerminalReset)
		}

		fmt.Println("------------------------------------------------")
		next, err := selectPrompt("Next:", []string{"New Query", "Change ranking function", "Exit"})
		if err != nil {
			return false, err
		}
		switch next {
		case "Change ranking function":
			return true, nil
		case "Exit":
			return false, nil
		}
	}
}
