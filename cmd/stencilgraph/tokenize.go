package main

import "github.com/stencilgraph/stencilgraph/pkg/scene"

// stencilGlyphs is the set of characters the overlay catalog assigns
// geometric meaning to; every other non-space run is a text label. This
// is a minimal stand-in for a real text-token/font tokenizer — good
// enough for a CLI demo, not part of the core's contract.
var stencilGlyphs = map[byte]bool{
	'-': true, '|': true, '/': true, '\\': true, '+': true, '*': true,
	'^': true, 'v': true, '<': true, '>': true,
	'[': true, ']': true, '(': true, ')': true, '~': true,
}

// tokenizeText scans grid for maximal runs of non-space, non-glyph
// characters and returns them as TextInput, positioned at the run's
// first cell.
func tokenizeText(grid []string) []scene.TextInput {
	var texts []scene.TextInput
	for y, row := range grid {
		start := -1
		for x := 0; x <= len(row); x++ {
			isWord := x < len(row) && row[x] != ' ' && !stencilGlyphs[row[x]]
			if isWord && start == -1 {
				start = x
			}
			if !isWord && start != -1 {
				texts = append(texts, scene.TextInput{X: start, Y: y, Content: row[start:x]})
				start = -1
			}
		}
	}
	return texts
}
