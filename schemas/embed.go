// Package schemas embeds the JSON Schemas of the data files consumed by cv-online.
package schemas

import _ "embed"

// ContentRecord is the JSON Schema of a data_<lang>.json content record.
//
//go:embed content_record.schema.json
var ContentRecord string
