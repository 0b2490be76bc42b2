// Package menu implements the catalog side of the ordering system:
// categories and menu items. The catalog is read-mostly; carts and orders
// copy a menu item's price at the moment they reference it, so repricing
// an item never rewrites history.
package menu
