// Package server implements the MCP (Model Context Protocol) server for the
// colour tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colour engine
// and the image colour helpers through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Colour Values:
//   - colour_parse: Describe a colour in every representation
//   - colour_convert: Convert to rgb, xyz, hsl, hsv, hsi, hex or name
//
// Photometry:
//   - colour_contrast: Luminance, contrast ratio and WCAG levels
//   - colour_distance: CIEDE2000 difference and nearest keywords
//
// Blending:
//   - colour_blend: Linear-RGB blend of two colours
//   - colour_adjust: Shade, tint, tone, grayscale, gamma, degamma, invert
//
// Harmony:
//   - colour_harmony: Complement, triadic, analogous and other schemes
//   - colour_wheel: Full hue wheel, optionally rendered
//   - colour_swatch: Render colours as a PNG strip
//
// Images:
//   - image_load: Dimensions, format and average colour
//   - image_sample_colour: Colour at a pixel
//   - image_sample_colours_multi: Sample several points
//   - image_dominant_colours: Colour palette of an image or region
//   - image_recolour: Apply a colour operation to every pixel
//
// Colour arguments accept the engine's text notation (#rrggbb, rgb(),
// hsl(), keywords, ...). Unlike the engine's lenient parser, tools reject
// unparseable colours instead of treating them as black. Angles on the tool
// surface are in degrees.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.WithLogger(logger))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
