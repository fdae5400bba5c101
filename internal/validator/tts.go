package validator

import "agentlint/internal/document"

func (r *run) checkTTS() {
	tts, state := r.section("tts")
	switch state {
	case sectionAbsent:
		r.errorf("Missing tts configuration object")
		return
	case sectionInvalid:
		r.errorf("tts must be an object")
		return
	}

	for _, field := range []string{"voice_id", "model_id"} {
		value := document.Dig(tts, field)
		if !present(value) {
			r.errorf("tts.%s is missing or empty", field)
		} else {
			r.passf("tts.%s: %s", field, text(value))
		}
	}

	voices, ok := r.requireArray(document.Dig(tts, "supported_voices"), "tts.supported_voices",
		"tts.supported_voices is missing",
		"tts.supported_voices is empty - agent cannot switch languages")
	if !ok {
		return
	}
	r.passf("tts.supported_voices: %d voice(s) configured", len(voices))

	for i, voice := range voices {
		if !present(document.Dig(voice, "voice_id")) {
			r.errorf("tts.supported_voices[%d].voice_id is missing", i)
		}
		if !present(document.Dig(voice, "language")) {
			r.errorf("tts.supported_voices[%d].language is missing", i)
		}
		if !present(document.Dig(voice, "label")) {
			r.warnf("tts.supported_voices[%d].label is missing", i)
		}
	}
}

func (r *run) checkLanguages() {
	languages, ok := r.requireArray(r.doc.Get("languages"), "languages",
		"languages array is missing",
		"languages array is empty - agent cannot handle multilingual conversations")
	if !ok {
		return
	}
	listed := make([]string, len(languages))
	for i, lang := range languages {
		listed[i] = text(lang)
	}
	r.passf("languages: %s", joinList(listed))
	declared := distinct(languages)

	// Cross-check against the voices only when they form an array; the TTS
	// check has already reported any other shape.
	voices, ok := asArray(r.doc.Get("tts", "supported_voices"))
	if !ok {
		return
	}
	voiced := make([]any, len(voices))
	for i, voice := range voices {
		voiced[i] = document.Dig(voice, "language")
	}
	voiceLanguages := distinct(voiced)

	if missing := missingFrom(declared, voiceLanguages); len(missing) > 0 {
		r.warnf("Languages %s in languages array but not in supported_voices", joinList(missing))
	}
	if missing := missingFrom(voiceLanguages, declared); len(missing) > 0 {
		r.warnf("Languages %s in supported_voices but not in languages array", joinList(missing))
	}
}
