// Package topics provides the built-in catalog of assessable topics.
package topics

import (
	"fmt"
	"sort"
)

// Topic is one assessable subject in the catalog.
type Topic struct {
	ID          string
	Title       string
	Description string
	Category    string
}

// catalog is the seeded topic set, indexed on package init.
var catalog = []Topic{
	{ID: "go-basics", Title: "Go Basics", Description: "Syntax, types, functions, and control flow", Category: "Programming"},
	{ID: "go-concurrency", Title: "Go Concurrency", Description: "Goroutines, channels, select, and the memory model", Category: "Programming"},
	{ID: "go-interfaces", Title: "Go Interfaces", Description: "Interface satisfaction, embedding, and type assertions", Category: "Programming"},
	{ID: "sql-queries", Title: "SQL Queries", Description: "Joins, aggregation, subqueries, and indexes", Category: "Data"},
	{ID: "data-modeling", Title: "Data Modeling", Description: "Normalization, keys, and schema design tradeoffs", Category: "Data"},
	{ID: "http-protocol", Title: "HTTP", Description: "Methods, status codes, headers, and caching", Category: "Networking"},
	{ID: "tcp-ip", Title: "TCP/IP", Description: "Connection lifecycle, flow control, and routing basics", Category: "Networking"},
	{ID: "dns", Title: "DNS", Description: "Resolution, record types, and delegation", Category: "Networking"},
	{ID: "unix-shell", Title: "Unix Shell", Description: "Pipes, redirection, processes, and job control", Category: "Systems"},
	{ID: "operating-systems", Title: "Operating Systems", Description: "Processes, threads, scheduling, and virtual memory", Category: "Systems"},
	{ID: "git-workflow", Title: "Git", Description: "Branching, merging, rebasing, and history surgery", Category: "Tools"},
	{ID: "regex", Title: "Regular Expressions", Description: "Character classes, quantifiers, groups, and anchors", Category: "Tools"},
}

var byID = func() map[string]Topic {
	m := make(map[string]Topic, len(catalog))
	for _, t := range catalog {
		m[t.ID] = t
	}
	return m
}()

// All returns every topic, ordered by category then title.
func All() []Topic {
	out := make([]Topic, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// Get returns the topic with the given ID.
func Get(id string) (Topic, error) {
	t, ok := byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("unknown topic: %q", id)
	}
	return t, nil
}

// Categories returns the distinct category names in display order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range All() {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}
