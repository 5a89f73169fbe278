// Package preview draws solved layouts for inspection: as box-drawn text
// sized to a terminal, or as a PNG image.
package preview
