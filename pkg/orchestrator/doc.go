// Package orchestrator wires the data loader and the section binder into a
// single run: parse the host page, load the dataset once, bind it once and
// serialise the page.
package orchestrator
