package check

import "github.com/bolt-lang/bolt/internal/ast"

// orderDeclarationsBySCC builds the dependency graph described by spec.md
// §4.I phase 1 ("an edge d1 -> d2 exists when d1's body syntactically
// references d2 by name") over decls, computes its strongly connected
// components with Tarjan's algorithm, and returns them linearized in
// reverse-topological order (dependencies before dependents) so phase 2 can
// check each SCC once every declaration it calls has already been
// generalized.
//
// Tarjan's algorithm is standard graph theory, not present in either
// _examples/malphas-lang-malphas-lang or _examples/wdamron-poly; no
// retrieved package supplies a binding-dependency SCC pass, so this is
// written directly against the classical algorithm rather than adapted from
// a corpus file (see DESIGN.md).
func orderDeclarationsBySCC(decls []*ast.LetDeclaration) [][]*ast.LetDeclaration {
	n := len(decls)
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}

	nameToIndex := make(map[string]int, n)
	for i, d := range decls {
		if name, ok := bindPatternName(d.Name); ok {
			nameToIndex[name] = i
		}
	}

	edges := make([][]int, n)
	for i, d := range decls {
		refs := freeNames(d.Body)
		for name := range refs {
			if j, ok := nameToIndex[name]; ok && j != i {
				edges[i] = append(edges[i], j)
			}
		}
	}

	var stack []int
	var counter int
	var sccs [][]*ast.LetDeclaration

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = counter
		low[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range edges[v] {
			if index[w] == -1 {
				strongconnect(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] {
				if index[w] < low[v] {
					low[v] = index[w]
				}
			}
		}

		if low[v] == index[v] {
			var comp []*ast.LetDeclaration
			for {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[top] = false
				comp = append(comp, decls[top])
				if top == v {
					break
				}
			}
			sccs = append(sccs, comp)
		}
	}

	for v := 0; v < n; v++ {
		if index[v] == -1 {
			strongconnect(v)
		}
	}

	return sccs
}

// freeNames collects every bare-identifier name referenced anywhere within
// n's subtree (used to build dependency edges between top-level bindings).
func freeNames(n ast.Node) map[string]bool {
	names := make(map[string]bool)
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		if n == nil {
			return
		}
		if id, ok := n.(*ast.Ident); ok {
			names[id.Name] = true
		}
		for _, child := range ast.Children(n) {
			walk(child)
		}
	}
	walk(n)
	return names
}
