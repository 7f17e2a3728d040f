// Package viz renders orbits in the terminal.
//
//   - [Canvas]: Braille pixel canvas with a world-to-screen [Viewport]
//   - [LiveModel]: Bubble Tea program that steps a particle and draws its
//     trail around the horizon
//   - [PlotSeries], [RenderSummary]: static output for finished runs
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset to the initial state
//	+/-   - Zoom
//	L     - Switch acceleration law
//	Q     - Quit
package viz
