// Package render turns solved layouts into presentation artifacts.
//
// # Overview
//
// Four artifact families are supported:
//
//   - SVG floor plans ([RenderSVG]): a scaled drawing of the boundary and
//     every placed room, suitable for browsers and documents.
//   - Plain-text floor plans ([RenderText]): a half-metre character grid
//     with a legend, suitable for terminals and logs.
//   - JSON ([RenderJSON]): the solution document, indented.
//   - Adjacency graphs ([ToDOT], [RenderGraphSVG], [RenderGraphPNG]): the
//     realized room-adjacency relation as a Graphviz graph, highlighting
//     which edges were required by the plan.
//
// Renderers are pure functions of the solution and its plan; they never
// mutate their inputs.
package render
