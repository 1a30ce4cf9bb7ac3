package config

import "strings"

// EmitLang is a code-generation target language.
type EmitLang int

const (
	// EmitLangUnknown is the zero value, returned when a language cannot
	// be determined.
	EmitLangUnknown EmitLang = iota
	EmitLangGo
	EmitLangTypeScript
)

// String renders the language's canonical name.
func (l EmitLang) String() string {
	switch l {
	case EmitLangGo:
		return "go"
	case EmitLangTypeScript:
		return "typescript"
	default:
		return "unknown"
	}
}

// EmitLangFromExt returns the language associated with a file extension
// (without the leading dot), eg. "go", "ts", "tsx". The second return value
// is false if the extension isn't recognized.
func EmitLangFromExt(ext string) (EmitLang, bool) {
	switch strings.ToLower(ext) {
	case "ts", "tsx":
		return EmitLangTypeScript, true
	case "go":
		return EmitLangGo, true
	default:
		return EmitLangUnknown, false
	}
}

// EmitLangFromName parses a --lang flag value (a language identifier
// rather than a bare extension, eg. "go" or "typescript").
func EmitLangFromName(name string) (EmitLang, bool) {
	switch strings.ToLower(name) {
	case "go":
		return EmitLangGo, true
	case "ts", "tsx", "typescript":
		return EmitLangTypeScript, true
	default:
		return EmitLangUnknown, false
	}
}
