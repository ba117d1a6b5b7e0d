package lexer

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/deanrtaylor1/rankfns/logger"
	"github.com/tebeka/snowball"
)

// ErrEOF is returned by Next once the content is exhausted.
var ErrEOF = errors.New("no more tokens")

type Lexer struct {
	content []rune
	stemmer *snowball.Stemmer
}

// Stat is a token with its frequency.
type Stat struct {
	Token string
	Freq  int
}

// NewLexer creates a new Lexer
func NewLexer(content string) *Lexer {
	return &Lexer{content: []rune(content)}
}

// TrimLeft trims spaces and punctuation from the left of the content
func (l *Lexer) TrimLeft() {
	for len(l.content) > 0 && !isWordRune(l.content[0]) {
		l.content = l.content[1:]
	}
}

// Chop chops the content by n and returns the chopped content
func (l *Lexer) Chop(n int) (token []rune) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// ChopWhile chops the content while the predicate f returns true
func (l *Lexer) ChopWhile(f func(rune) bool) (token []rune) {
	n := 0
	for n < len(l.content) && f(l.content[n]) {
		n += 1
	}
	return l.Chop(n)
}

// NextToken returns the next token, or nil at the end of the content.
// Numbers are returned as is, words are lower-cased and stemmed.
func (l *Lexer) NextToken() []rune {
	l.TrimLeft()

	if len(l.content) == 0 {
		l.Close()
		return nil
	}
	if unicode.IsNumber(l.content[0]) {
		return l.ChopWhile(unicode.IsNumber)
	}

	term := strings.ToLower(string(l.ChopWhile(isWordRune)))
	return []rune(l.stem(term))
}

// Next returns the next token as a string
func (l *Lexer) Next() (string, error) {
	token := l.NextToken()
	if token == nil {
		return "", ErrEOF
	}
	return string(token), nil
}

// Close releases the stemmer. Next closes it automatically at the end of the content.
func (l *Lexer) Close() {
	if l.stemmer != nil {
		l.stemmer.Close()
		l.stemmer = nil
	}
}

func (l *Lexer) stem(term string) string {
	if l.stemmer == nil {
		stemmer, err := snowball.New("english")
		if err != nil {
			logger.HandleError(err)
			return term
		}
		l.stemmer = stemmer
	}
	return l.stemmer.Stem(term)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokens returns every token in content.
func Tokens(content string) []string {
	l := NewLexer(content)
	defer l.Close()

	var tokens []string
	for {
		token, err := l.Next()
		if err != nil {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

// ParseHtmlTextContent parses a html string and returns its text, skipping
// script and style elements
func ParseHtmlTextContent(htmlContent string) string {
	var content strings.Builder
	skip := 0

	d := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			return content.String()
		case html.StartTagToken:
			if name, _ := d.TagName(); isSkipped(string(name)) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := d.TagName(); isSkipped(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				content.Write(d.Text())
				content.WriteByte(' ')
			}
		}
	}
}

func isSkipped(tag string) bool {
	return tag == "script" || tag == "style"
}

// Utility function to sort a map by value, ties by token
func MapToSortedSlice(m map[string]int) (stats []Stat) {
	for k, v := range m {
		stats = append(stats, Stat{Token: k, Freq: v})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Freq != stats[j].Freq {
			return stats[i].Freq > stats[j].Freq
		}
		return stats[i].Token < stats[j].Token
	})

	return stats
}
