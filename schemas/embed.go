// Package schemas embeds the JSON Schemas for the documents the builder accepts.
package schemas

import _ "embed"

// File names of the embedded schemas
const (
	ResumeSchemaFile = "resume.schema.json"
	ActionSchemaFile = "action.schema.json"
)

// Resume is the schema of a resume snapshot
//
//go:embed resume.schema.json
var Resume []byte

// Action is the schema of a session action request
//
//go:embed action.schema.json
var Action []byte
