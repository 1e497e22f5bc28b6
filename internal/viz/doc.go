// Package viz renders Fourier approximations in the terminal.
//
// The package draws only engine value types (curves, partial curves and
// epicycle frames) and never computes coefficients itself:
//
//   - [Canvas]: braille pixel canvas, 2x4 dots per cell
//   - [CanvasRenderer]: layered, themed drawing of curves and chains
//   - [LiveModel]: Bubble Tea program animating the epicycle chain
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	+/-   - Grow/shrink the drawn chain
//	[/]   - Fewer/more terms in the animation
//	M     - Toggle order/magnitude selection
//	T     - Cycle color themes
//	R     - Clear the traced tail
//	G     - Toggle GIF recording
//	Q     - Quit
package viz
