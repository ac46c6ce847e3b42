// Package menu defines the fixed vocabulary of a token order: the four menu
// categories, the polygon shapes that select a dish inside a category, and
// the catalog that prices each (category, shape) pair.
//
// # Categories
//
// Each category corresponds to one physical token color:
//
//   - Starter: green
//   - Snack: yellow
//   - MainCourse: orange
//   - Dessert: blue
//
// Categories are always iterated in that declaration order (see Categories).
// Region detection, catalog listings and anything else that walks the
// categories relies on this order being stable.
//
// # Shapes
//
// A token's shape is classified from the vertex count of its approximated
// outline: 3 is a Triangle, 4 a Rectangle, 5 a Pentagon. Any other count has
// no shape. The zero Shape value represents that absence and is never used
// as a catalog key.
//
// # Catalog
//
// A Catalog is immutable once built. Share one *Catalog between any number
// of concurrent order flows.
package menu
