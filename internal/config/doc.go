// Package config loads tokenorder settings from YAML.
//
// Loading runs in a fixed sequence: parse the file, fill unset fields with
// defaults, apply TOKENORDER_* environment overrides, then validate. All
// validation problems are reported together in a ValidationError.
//
// An empty path skips the file and yields the built-in defaults, which
// reproduce the stock menu and the token color bands:
//
//	detection:
//	  max_dimension: 1024
//	  blur_radius: 1.0
//	  min_area: 150
//	  epsilon_ratio: 0.04
//	menu:
//	  starter:
//	    rectangle: {name: Soup, price: 15}
//	annotate:
//	  box_color: "#00FF00"
//	  text_color: "#FF0000"
//	  thickness: 2
//	log:
//	  level: info
//	  format: text
//
// A menu section replaces the whole default menu. Pairs it leaves out are
// reported as "Unknown Dish" at lookup time.
package config
