package wordgen

import "github.com/minhtran/vocamaster/internal/llm"

// WordListSchema defines the JSON schema for LLM word generation
// responses.
var WordListSchema = &llm.Schema{
	Name:        "word-list",
	Description: "A list of English vocabulary words with Vietnamese translations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "The English word or short phrase",
						},
						"phonetic": map[string]any{
							"type":        "string",
							"description": "IPA transcription, e.g. /ˈwɜːrd/",
						},
						"meaning": map[string]any{
							"type":        "string",
							"description": "The Vietnamese translation",
						},
						"example": map[string]any{
							"type":        "string",
							"description": "A short English example sentence using the word",
						},
						"type": map[string]any{
							"type":        "string",
							"description": "Part of speech: noun, verb, adjective, adverb or phrase",
						},
					},
					"required":             []any{"word", "phonetic", "meaning", "example", "type"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	},
}
