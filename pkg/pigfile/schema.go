package pigfile

// nolint: lll
var jsonSchemaBytes = []byte(`
{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"$id": "github.com/lovethedrake/pigjob/pigfile.schema.json",

	"definitions": {

		"nonEmptyString": {
			"type": "string",
			"minLength": 1
		},

		"entry": {
			"type": "object",
			"description": "A named value",
			"required": ["name", "value"],
			"additionalProperties": false,
			"properties": {
				"name": { "$ref": "#/definitions/nonEmptyString" },
				"value": {
					"type": ["string", "number", "boolean"]
				}
			}
		}

	},

	"title": "Pigfile",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"name": {
			"description": "The job's name",
			"$ref": "#/definitions/nonEmptyString"
		},
		"script": {
			"description": "Path to a Pig script or the script's code",
			"$ref": "#/definitions/nonEmptyString"
		},
		"parameterFiles": {
			"type": "array",
			"description": "Parameter files, in the order they are passed to Pig",
			"items": { "$ref": "#/definitions/nonEmptyString" }
		},
		"parameters": {
			"type": "array",
			"description": "Script parameters",
			"items": { "$ref": "#/definitions/entry" }
		},
		"properties": {
			"type": "array",
			"description": "Pig properties",
			"items": { "$ref": "#/definitions/entry" }
		},
		"propertyFile": {
			"description": "Path to a properties file",
			"$ref": "#/definitions/nonEmptyString"
		},
		"commandArguments": {
			"description": "A complete command line that overrides everything else",
			"type": "string"
		}
	}
}
`)
