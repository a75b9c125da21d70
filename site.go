package mkdict

import "strings"

// DefaultBaseURL is the dictionary site crawled when no base URL is given.
const DefaultBaseURL = "http://makedonski.info"

// LetterURL returns the listing page for a letter.
func LetterURL(base string, letter Letter) string {
	return strings.TrimSuffix(base, "/") + "/letter/" + string(letter)
}

// RangeURL returns the page for a range. rangeURI carries its own leading slash.
func RangeURL(base, rangeURI string) string {
	return strings.TrimSuffix(base, "/") + rangeURI
}

// WordURL returns the fragment-addressed page for an already encoded word URI.
func WordURL(base, encodedWordURI string) string {
	return strings.TrimSuffix(base, "/") + "/#" + encodedWordURI
}

// EncodeURI percent-encodes s the way ECMAScript's encodeURI does:
// URI reserved characters, unreserved marks and '#' are kept, every other
// byte of the UTF-8 encoding becomes %XX.
func EncodeURI(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if keepInURI(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func keepInURI(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte(";,/?:@&=+$-_.!~*'()#", c) >= 0
}
