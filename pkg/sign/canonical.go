package sign

import (
	"sort"
	"strings"
)

// HeaderPrefix marks the service metadata headers that participate in
// signing.
const HeaderPrefix = "x-oss-"

// CanonicalString assembles the exact byte sequence the service expects to
// be signed:
//
//	VERB\n
//	Content-MD5\n
//	Content-Type\n
//	Date\n
//	x-oss- headers, lower-cased names, ascending sort, one name:value per line
//	resource[?sub-resources]
//
// Absent headers render as empty fields, never dropped. Values are used
// verbatim with no URL-encoding. The result depends only on the request
// contents, never on map iteration order.
func CanonicalString(req Request) string {
	var b strings.Builder
	b.WriteString(req.Verb)
	b.WriteString("\n")
	b.WriteString(req.Headers["Content-MD5"])
	b.WriteString("\n")
	b.WriteString(req.Headers["Content-Type"])
	b.WriteString("\n")
	b.WriteString(req.Headers["Date"])
	b.WriteString("\n")
	b.WriteString(canonicalHeaders(req.Headers))
	b.WriteString(canonicalResource(req.Resource, req.SubResources))
	return b.String()
}

func canonicalHeaders(headers map[string]string) string {
	lines := make([]string, 0, len(headers))
	for name, value := range headers {
		lower := strings.ToLower(name)
		if !strings.HasPrefix(lower, HeaderPrefix) {
			continue
		}
		lines = append(lines, lower+":"+value)
	}
	sort.Strings(lines)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func canonicalResource(resource string, sub map[string]string) string {
	if len(sub) == 0 {
		return resource
	}

	keys := make([]string, 0, len(sub))
	for key := range sub {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if value := sub[key]; value != "" {
			parts = append(parts, key+"="+value)
		} else {
			parts = append(parts, key)
		}
	}
	return resource + "?" + strings.Join(parts, "&")
}
