package phone_test

import (
	"testing"

	"github.com/vendyafrica/vendly-sub001/pkg/phone"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		cc   string
		want string
	}{
		{
			name: "national format with trunk zero",
			raw:  "0780000000",
			cc:   "256",
			want: "+256780000000",
		},
		{
			name: "already E.164",
			raw:  "+256780000000",
			cc:   "256",
			want: "+256780000000",
		},
		{
			name: "E.164 with separators",
			raw:  "+256 780-000-000",
			cc:   "256",
			want: "+256780000000",
		},
		{
			name: "country code without plus",
			raw:  "256780000000",
			cc:   "256",
			want: "+256780000000",
		},
		{
			name: "no trunk zero no country code prefix",
			raw:  "780000000",
			cc:   "256",
			want: "+256780000000",
		},
		{
			name: "plus wins over default country code",
			raw:  "+14155550100",
			cc:   "256",
			want: "+14155550100",
		},
		{
			name: "no default country code",
			raw:  "780000000",
			cc:   "",
			want: "+780000000",
		},
		{
			name: "empty input",
			raw:  "",
			cc:   "256",
			want: "",
		},
		{
			name: "no digits at all",
			raw:  "whatsapp:abc",
			cc:   "256",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, phone.Normalize(tc.raw, tc.cc))
		})
	}
}
