package response

import "strconv"

// Kind is the target type a known response field casts to.
type Kind int

const (
	String Kind = iota
	Bool
	Int
	Float
)

// Rules maps the listing metadata fields the service documents to their
// types. Extending the table teaches the caster new fields; the traversal
// itself never changes.
var Rules = map[string]Kind{
	"Prefix":      String,
	"Marker":      String,
	"Delimiter":   String,
	"IsTruncated": Bool,
	"MaxKeys":     Int,
}

// A Caster retypes decoded nodes according to a rule table.
type Caster struct {
	rules map[string]Kind
}

// NewCaster builds a Caster over a custom rule table.
func NewCaster(rules map[string]Kind) Caster {
	return Caster{rules: rules}
}

// Cast applies the default Rules table. See Caster.Cast.
func Cast(node Map) Map {
	return NewCaster(Rules).Cast(node)
}

// Cast walks node and retypes known fields. A nested Map containing at
// least one known key has every entry cast at that level and is not
// descended further; a Map with no known keys is descended unconditionally.
// The deep listing blocks (Contents, CommonPrefixes owners and the like)
// carry no fields from the rule table, so stopping at the first cast level
// has matched the service responses so far.
//
// Cast is total: text a rule cannot parse becomes nil, never an error, and
// the input node is not mutated. Casting an already-cast node is a no-op.
func (c Caster) Cast(node Map) Map {
	out := make(Map, len(node))
	for name, value := range node {
		out[name] = c.castValue(value)
	}
	return out
}

func (c Caster) castValue(value interface{}) interface{} {
	switch v := value.(type) {
	case Map:
		if len(v) > 0 && c.hasKnownKey(v) {
			return c.applyRules(v)
		}
		return c.Cast(v)
	case List:
		out := make(List, len(v))
		for i, item := range v {
			out[i] = c.castValue(item)
		}
		return out
	default:
		return value
	}
}

func (c Caster) hasKnownKey(m Map) bool {
	for name := range m {
		if _, ok := c.rules[name]; ok {
			return true
		}
	}
	return false
}

// applyRules casts a single level. Keys without a rule pass through
// unchanged, nested structure included.
func (c Caster) applyRules(m Map) Map {
	out := make(Map, len(m))
	for name, value := range m {
		kind, ok := c.rules[name]
		if !ok {
			out[name] = value
			continue
		}
		out[name] = castScalar(kind, value)
	}
	return out
}

func castScalar(kind Kind, value interface{}) interface{} {
	// An element decoded to an empty structure carries no value to cast;
	// nil stays nil so a second pass is a no-op.
	if value == nil {
		return nil
	}
	if m, ok := value.(Map); ok && len(m) == 0 {
		return nil
	}

	switch kind {
	case Bool:
		if b, ok := value.(bool); ok {
			return b
		}
		// The service only ever writes "true"; any other text,
		// "false" included, reads as false.
		s, _ := value.(string)
		return s == "true"
	case Int:
		if n, ok := value.(int64); ok {
			return n
		}
		if s, ok := value.(string); ok {
			return leadingInt(s)
		}
		return nil
	case Float:
		if f, ok := value.(float64); ok {
			return f
		}
		if s, ok := value.(string); ok {
			return leadingFloat(s)
		}
		return nil
	default:
		return value
	}
}

// leadingInt parses the leading decimal run of s, nil when there is none.
func leadingInt(s string) interface{} {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return nil
	}
	n, err := strconv.ParseInt(s[:j], 10, 64)
	if err != nil {
		return nil
	}
	return n
}

// leadingFloat parses the leading decimal run of s with an optional
// fractional part, nil when there is none.
func leadingFloat(s string) interface{} {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j < len(s) && s[j] == '.' {
		k := j + 1
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j+1 {
			j = k
		}
	}
	if j == i {
		return nil
	}
	f, err := strconv.ParseFloat(s[:j], 64)
	if err != nil {
		return nil
	}
	return f
}
