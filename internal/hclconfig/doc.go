// Package hclconfig loads run configuration from HCL files.
//
// Example:
//
//	seed {
//	  x = 1000
//	  y = 1000
//	}
//
//	threshold = 25
//
//	window {
//	  x0 = 500
//	  y0 = 500
//	  x1 = 2499
//	  y1 = 2499
//	}
//
//	palette {
//	  clear    = colors.yellow
//	  obstacle = "#0000FF"
//	  avail    = [0, 255, 0]
//	}
//
// Every block and attribute is optional. Palette entries are expressions
// evaluated against a context that exposes the named colours as
// colors.<name>; a colour is either a 3-element list of channels or a
// "#RRGGBB" string.
package hclconfig
