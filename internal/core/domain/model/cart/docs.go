// Package cart implements the Cart aggregate: a user's pending selection
// of menu items awaiting checkout. Each distinct menu item occupies one
// line with a unit price copied at insertion time; re-adding an item
// replaces the line instead of duplicating it.
package cart
