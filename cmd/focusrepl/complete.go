package main

import (
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// index matches command names by shared trigrams so misspelled commands
// can be suggested, and completes them by prefix at the prompt.
type index struct {
	names []string
	grams map[string][]string
}

func newIndex(names ...string) *index {
	x := &index{grams: make(map[string][]string)}
	for _, name := range names {
		x.names = append(x.names, name)
		for _, g := range trigrams(name) {
			x.grams[g] = append(x.grams[g], name)
		}
	}
	slices.Sort(x.names)
	x.names = slices.Compact(x.names)
	return x
}

// trigrams returns distinct trigrams of s padded to weigh leading characters.
func trigrams(s string) []string {
	s = "\x00\x00" + strings.ToLower(s) + "\x00"
	var ts []string
	for i := 0; i+3 <= len(s); i++ {
		ts = append(ts, s[i:i+3])
	}
	slices.Sort(ts)
	return slices.Compact(ts)
}

// match returns names sharing at least min of s's trigrams, best first.
func (x *index) match(s string, min float64) []string {
	q := trigrams(s)
	score := make(map[string]int)
	for _, g := range q {
		for _, name := range x.grams[g] {
			score[name]++
		}
	}
	var names []string
	for name, n := range score {
		if float64(n)/float64(len(q)) >= min {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if score[names[i]] != score[names[j]] {
			return score[names[i]] > score[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

func (x *index) has(name string) bool { return slices.Contains(x.names, name) }

// Do implements readline.AutoCompleter for the first word of a line.
func (x *index) Do(line []rune, pos int) (newLine [][]rune, offset int) {
	typed := string(line[:pos])
	if strings.ContainsRune(typed, ' ') {
		return nil, 0
	}
	for _, name := range x.names {
		if strings.HasPrefix(name, typed) {
			newLine = append(newLine, []rune(strings.TrimPrefix(name, typed)+" "))
		}
	}
	return newLine, len(line[:pos])
}
