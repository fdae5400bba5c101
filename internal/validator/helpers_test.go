package validator

import "agentlint/internal/document"

// validDoc returns a fresh, fully configured document that produces no
// errors and no warnings.
func validDoc() document.Document {
	return document.Document{
		"tts": map[string]any{
			"voice_id": "voice-en",
			"model_id": "eleven_flash_v2_5",
			"supported_voices": []any{
				map[string]any{"voice_id": "voice-en", "language": "en", "label": "English"},
				map[string]any{"voice_id": "voice-fr", "language": "fr", "label": "French"},
			},
		},
		"languages": []any{"en", "fr"},
		"agent": map[string]any{
			"first_message": "Hello, how can I help?",
			"prompt": map[string]any{
				"prompt": "You are a helpful booking assistant.",
				"llm":    "gpt-4o-mini",
			},
			"tools": []any{
				map[string]any{"name": "end_call", "description": "Ends the call when the caller is done."},
				map[string]any{"name": "language_detection", "description": "Switches language."},
			},
			"knowledge_base": []any{
				map[string]any{"name": "FAQ", "usage_mode": "prompt"},
			},
		},
		"data_collection": []any{
			map[string]any{"id": "intent", "type": "string", "description": "Why the caller phoned."},
		},
		"evaluation": map[string]any{
			"criteria": []any{
				map[string]any{"name": "resolved", "type": "boolean"},
			},
		},
		"workflow": map[string]any{
			"nodes": map[string]any{
				"start": map[string]any{"edge_order": []any{"to_end"}},
			},
		},
	}
}

func agentOf(doc document.Document) map[string]any {
	return doc["agent"].(map[string]any)
}

func ttsOf(doc document.Document) map[string]any {
	return doc["tts"].(map[string]any)
}

func findingsIn(findings []Finding, section Section) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Section == section {
			out = append(out, f)
		}
	}
	return out
}
