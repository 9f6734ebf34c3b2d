// Package autocomplete provides case-insensitive prefix lookups backed by
// a trie. Paths are lower-cased for traversal; the original casing of the
// first insert is what lookups return.
package autocomplete

import (
	"sort"
	"strings"
)

// DefaultMaxResults caps suggestion lists when the caller passes no limit.
const DefaultMaxResults = 10

type node struct {
	children map[rune]*node
	word     string // original casing, set on terminal nodes
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is append-only in structure: Remove clears a terminal flag but
// never prunes nodes. The tries here are small and long-lived, so the
// leaked interior nodes cost nothing that matters.
type Trie struct {
	root *node
	size int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds word to the trie. Empty strings are ignored; re-inserting an
// existing word keeps the casing stored first.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	cur := t.root
	for _, r := range strings.ToLower(word) {
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
		}
		cur = next
	}
	if !cur.terminal {
		cur.terminal = true
		cur.word = word
		t.size++
	}
}

// Contains reports whether word was inserted, ignoring case.
func (t *Trie) Contains(word string) bool {
	n := t.walk(word)
	return n != nil && n.terminal
}

// HasPrefix reports whether any stored word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

// WordsWithPrefix returns up to max stored words starting with prefix, in
// lexicographic order of their lower-cased form. max <= 0 falls back to
// DefaultMaxResults. An empty prefix searches the whole trie.
func (t *Trie) WordsWithPrefix(prefix string, max int) []string {
	if max <= 0 {
		max = DefaultMaxResults
	}
	start := t.walk(prefix)
	if start == nil {
		return nil
	}
	var out []string
	collect(start, max, &out)
	return out
}

// Remove clears the terminal flag for word, reporting whether it was
// stored. Interior nodes are kept, so prefixes of removed words still
// resolve.
func (t *Trie) Remove(word string) bool {
	n := t.walk(word)
	if n == nil || !n.terminal {
		return false
	}
	n.terminal = false
	n.word = ""
	t.size--
	return true
}

// AllWords returns every stored word, lexicographic on the lower-cased key.
func (t *Trie) AllWords() []string {
	var out []string
	collect(t.root, t.size, &out)
	return out
}

// Len reports the number of stored words.
func (t *Trie) Len() int {
	return t.size
}

// Clear drops every word and node.
func (t *Trie) Clear() {
	t.root = newNode()
	t.size = 0
}

func (t *Trie) walk(s string) *node {
	cur := t.root
	for _, r := range strings.ToLower(s) {
		next, ok := cur.children[r]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// collect gathers terminal words depth-first, visiting children in sorted
// rune order so results are deterministic.
func collect(n *node, max int, out *[]string) {
	if len(*out) >= max {
		return
	}
	if n.terminal {
		*out = append(*out, n.word)
	}
	runes := make([]rune, 0, len(n.children))
	for r := range n.children {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	for _, r := range runes {
		if len(*out) >= max {
			return
		}
		collect(n.children[r], max, out)
	}
}
