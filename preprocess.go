package htmlcode

import "bytes"

// utf8BOM is the UTF-8 encoded byte order mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// StripBOM removes a leading UTF-8 byte order mark. The tokenizer core
// never sees the mark; stripping it is the input preprocessing step, the
// same place newline normalization would live if the reader did not fold
// it in.
func StripBOM(src []byte) []byte {
	return bytes.TrimPrefix(src, utf8BOM)
}
