// Package resx parses .resx resource-description documents and merges their
// entries across culture variants of the same resource catalog.
package resx

import (
	"encoding/xml"
	"fmt"
)

// document mirrors the structural subset of a .resx file the compiler reads.
type document struct {
	XMLName xml.Name `xml:"root"`
	Data    []struct {
		Name    string `xml:"name,attr"`
		Type    string `xml:"type,attr"`
		Value   string `xml:"value"`
		Comment string `xml:"comment"`
	} `xml:"data"`
}

// ParseDocument parses one description file's text into its declared entries,
// in declaration order. Any structural XML error is fatal for the file.
func ParseDocument(content string) ([]Entry, error) {
	var doc document
	if err := xml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("parse description document: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Data))
	for _, d := range doc.Data {
		entries = append(entries, Entry{
			Name:    d.Name,
			Value:   d.Value,
			Comment: d.Comment,
			Type:    d.Type,
		})
	}
	return entries, nil
}

// Merge folds per-file entry lists, given in path order, into the canonical
// list for a group. The first occurrence of a name owns value and type; a
// later occurrence contributes only a comment the first one lacked. Merge
// order follows the order of the lists, never declaration order across files.
func Merge(lists ...[]Entry) []Entry {
	index := make(map[string]int)
	merged := make([]Entry, 0)
	for _, list := range lists {
		for _, e := range list {
			if i, ok := index[e.Name]; ok {
				if merged[i].Comment == "" && e.Comment != "" {
					merged[i].Comment = e.Comment
				}
				continue
			}
			index[e.Name] = len(merged)
			merged = append(merged, e)
		}
	}
	return merged
}
