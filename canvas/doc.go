// Package canvas provides the framebuffer: a grid of styled cells with
// stacked clipping, painted from Strips, and flushed to the terminal
// as a minimal diff against the previous frame.
package canvas
