// Request signing for the Aliyun OSS HTTP API. Everything in this package
// is a pure function over its inputs: no clocks, no configuration lookups,
// no I/O. The transport layer decides how a signed request actually goes on
// the wire.
package sign

// A Request describes one outbound OSS call for signing purposes.
type Request struct {
	// Verb is the literal upper-case HTTP method token (GET, HEAD, PUT,
	// POST or DELETE).
	Verb string

	// Host is the wire host the transport will dial (usually
	// bucket.endpoint). It never participates in signing.
	Host string

	// Path is the transport path of the request URL.
	Path string

	// Resource is the canonical /bucket[/object] path the service signs
	// against. It always starts with "/" and is supplied by the caller,
	// never derived from Host.
	Resource string

	// Headers holds header name -> value with names exactly as supplied.
	// Content-MD5, Content-Type and Date are read case-sensitively.
	Headers map[string]string

	// Params are query parameters for the request URL. They do not enter
	// the canonical string.
	Params map[string]string

	// SubResources are the query-like operation modifiers (acl, uploads,
	// ...) that do enter the canonical string. An empty value renders as
	// the bare key.
	SubResources map[string]string

	Body []byte
}
