package ir

// Enum is a named, ordered set of variants; a variant's wire value is its
// position in the declared list.
type Enum struct {
	Name     string
	Variants []string
}

// ParseEnum parses an enum declaration from its decoded JSON value, which
// must be a list of variant-name strings.
func ParseEnum(name string, value any) (*Enum, error) {
	arr, ok := value.([]any)
	if !ok {
		return nil, newBadFieldValue(name, "a list of strings", enumOffender(name))
	}

	variants := make([]string, 0, len(arr))

	for _, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, newBadFieldValue(name, "a list of strings", enumOffender(name))
		}

		variants = append(variants, s)
	}

	return &Enum{Name: name, Variants: variants}, nil
}
