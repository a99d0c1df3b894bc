// Package dataset loads the four portfolio resources concurrently and
// assembles them into a portfolio.Dataset. Per-resource failures degrade to
// an absent slot and are logged; they never abort the load.
package dataset
