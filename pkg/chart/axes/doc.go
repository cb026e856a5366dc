// Package axes lays out and draws up to four chart axes around a shared
// content rectangle.
//
// # Pipeline
//
// A [Renderer] works in three stages, always in this order:
//
//  1. [Renderer.Layout] measures every configured axis and insets the content
//     rectangle by the margin its labels and name need. Run it after every
//     chart size or data change, once the computator's content rect is reset.
//  2. [Renderer.Prepare] computes, per frame, where each axis sits and which
//     ticks are drawn. Auto axes generate "nice" ticks for the visible range;
//     explicit axes thin their tick list so labels do not overlap at the
//     current zoom.
//  3. [Renderer.DrawInBackground] prepares and draws separation lines and
//     gridlines under the chart's series; [Renderer.DrawInForeground] draws
//     tick labels and axis names over them.
//
// # Slots
//
// Each axis occupies one [Slot]: [Top], [Left], [Right] or [Bottom]. A nil axis
// leaves its slot empty; an empty slot takes no margin and draws nothing. Slots
// are independent: each touches only its own edge of the content rectangle.
//
// # Collaborators
//
// The renderer does not own the chart geometry, the fonts or the drawing
// surface. It reads geometry from a [Computator], text metrics from a
// [TextMeasurer] and draws into a [Canvas]. See package computator, package
// fonts and package sink for the implementations shipped with chartaxes.
//
// The renderer is not safe for concurrent use. Layout must finish before
// Prepare starts, and Prepare must finish before either draw pass reads its
// buffers.
package axes
