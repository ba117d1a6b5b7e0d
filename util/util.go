package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IndexedData is one file read from disk.
type IndexedData struct {
	Path    string
	Content string
	HTML    bool
}

var textExts = map[string]bool{".txt": true, ".md": true, ".text": true}
var htmlExts = map[string]bool{".html": true, ".htm": true}

// LoadDocuments reads every text and html file under dirName, sorted by path.
func LoadDocuments(dirName string) ([]IndexedData, error) {
	var docs []IndexedData
	err := filepath.WalkDir(dirName, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dirName && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !textExts[ext] && !htmlExts[ext] {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dirName, path)
		if err != nil {
			rel = path
		}
		docs = append(docs, IndexedData{Path: filepath.ToSlash(rel), Content: string(content), HTML: htmlExts[ext]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

func CheckDirIsValid(dirName string) (bool, error) {
	info, err := os.Stat(dirName)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil // Directory does not exist
		}
		return false, err // Some other error occurred
	}
	return info.IsDir(), nil
}

const (
	TerminalReset  = "\033[0m"
	TerminalRed    = "\033[31m"
	TerminalGreen  = "\033[32m"
	TerminalYellow = "\033[33m"
	TerminalBlue   = "\033[34m"
	TerminalPurple = "\033[35m"
	TerminalCyan   = "\033[36m"
	TerminalWhite  = "\033[37m"
)
