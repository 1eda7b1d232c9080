package arbor

// parseOptions holds configuration for one parse call.
type parseOptions struct {
	xmlMode         bool
	stripWhitespace bool
	preferTransport bool
	defaultEncoding string
}

// defaultParseOptions returns the default parse options.
func defaultParseOptions() parseOptions {
	return parseOptions{
		xmlMode:         false,
		stripWhitespace: true,
		preferTransport: false,
		defaultEncoding: "utf-8",
	}
}

// Option configures a parse call.
type Option func(*parseOptions)

// XMLMode treats the content as strictly-formatted (XML-flavored) markup.
// The self-declared encoding from an XML declaration, when present, is used
// for the first decode attempt.
func XMLMode() Option {
	return func(o *parseOptions) {
		o.xmlMode = true
	}
}

// KeepWhitespace preserves whitespace-only text between sibling elements.
// By default such text is stripped; whitespace inside mixed content is
// always preserved verbatim either way.
func KeepWhitespace() Option {
	return func(o *parseOptions) {
		o.stripWhitespace = false
	}
}

// PreferTransportEncoding makes a transport-supplied encoding hint win over
// an in-document meta-declared charset, suppressing the restart the meta
// declaration would otherwise trigger.
func PreferTransportEncoding() Option {
	return func(o *parseOptions) {
		o.preferTransport = true
	}
}

// DefaultEncoding sets the encoding assumed when neither the transport nor
// the document declares one. The default is UTF-8.
func DefaultEncoding(label string) Option {
	return func(o *parseOptions) {
		o.defaultEncoding = label
	}
}
