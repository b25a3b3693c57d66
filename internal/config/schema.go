package config

import "encoding/json"

// Schema returns a JSON Schema describing ignoredit.yaml as indented JSON.
func Schema() []byte {
	patterns := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}

	schema := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                "ignoredit.yaml",
		"description":          "Patterns that ignoredit keeps present in an ignore file.",
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"file": map[string]any{
				"type":        "string",
				"description": "Ignore file to edit, relative to this manifest. Defaults to .gitignore.",
			},
			"patterns": withDescription(patterns,
				"Patterns appended to the end of the file when missing. Existing lines are never reordered."),
			"blocks": map[string]any{
				"type":        "array",
				"description": "Managed blocks. Each is written between '# >>> name >>>' and '# <<< name <<<' markers and replaced wholesale on every apply.",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"name"},
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "Block name used in the marker comments. Must be unique.",
						},
						"patterns": withDescription(patterns, "Patterns written inside the block, in order."),
					},
				},
			},
		},
	}

	data, _ := json.MarshalIndent(schema, "", "  ")
	return data
}

func withDescription(base map[string]any, description string) map[string]any {
	m := make(map[string]any, len(base)+1)
	for k, v := range base {
		m[k] = v
	}
	m["description"] = description
	return m
}
