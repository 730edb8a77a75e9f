// Package docs Airspace Service API.
//
// Converts the published YAIXM UK airspace dataset into OpenAir text
// files for flight-planning and moving-map tools. Exposes the dataset's
// selectable extras (temporary restrictions, local agreements, wave
// boxes, gliding sites) and release metadata for building a settings
// UI, and a conversion endpoint that responds with a downloadable
// OpenAir document.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- text/plain
//
// swagger:meta
package docs
