package config

import "git.home.luguber.info/inful/sitecfg/internal/foundation/normalization"

// OutputFormat selects the serialization of the generated template.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

var outputFormatNormalizer = normalization.NewEnumNormalizer("output format", map[string]OutputFormat{
	"json": OutputJSON,
	"yaml": OutputYAML,
	"yml":  OutputYAML,
}, OutputJSON)

// ParseOutputFormat converts raw text to an OutputFormat. Empty input means JSON.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	if raw == "" {
		return OutputJSON, nil
	}
	return outputFormatNormalizer.NormalizeWithValidation(raw)
}
