package mkdict_test

import (
	"testing"

	"github.com/fwojciec/mkdict"
	"github.com/stretchr/testify/assert"
)

func TestEncodeURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "ascii path is unchanged",
			in:   "a/b-c_d.e",
			want: "a/b-c_d.e",
		},
		{
			name: "cyrillic is percent-encoded per byte",
			in:   "а/сврз",
			want: "%D0%B0/%D1%81%D0%B2%D1%80%D0%B7",
		},
		{
			name: "space is encoded",
			in:   "a b",
			want: "a%20b",
		},
		{
			name: "reserved characters are kept",
			in:   ";,/?:@&=+$#",
			want: ";,/?:@&=+$#",
		},
		{
			name: "percent sign is encoded",
			in:   "100%",
			want: "100%25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mkdict.EncodeURI(tt.in))
		})
	}
}

func TestSiteURLs(t *testing.T) {
	t.Parallel()

	base := "http://makedonski.info"

	assert.Equal(t, "http://makedonski.info/letter/а", mkdict.LetterURL(base, "а"))
	assert.Equal(t, "http://makedonski.info/range/1", mkdict.RangeURL(base, "/range/1"))
	assert.Equal(t, "http://makedonski.info/#%D0%B0", mkdict.WordURL(base, "%D0%B0"))

	// Trailing slash on the base does not double up.
	assert.Equal(t, "http://makedonski.info/range/1", mkdict.RangeURL(base+"/", "/range/1"))
}
