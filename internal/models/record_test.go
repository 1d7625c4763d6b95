package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GroupByFamily(t *testing.T) {
	t.Parallel()

	a1 := Record{Type: "A", Name: "a1.example.com"}
	a2 := Record{Type: "A", Name: "a2.example.com"}
	aaaa := Record{Type: "AAAA", Name: "aaaa.example.com"}

	ipv4, ipv6 := GroupByFamily([]Record{a1, aaaa, a2})

	assert.Equal(t, []Record{a1, a2}, ipv4)
	assert.Equal(t, []Record{aaaa}, ipv6)

	ipv4, ipv6 = GroupByFamily(nil)
	assert.Empty(t, ipv4)
	assert.Empty(t, ipv6)
}

func Test_Record_String(t *testing.T) {
	t.Parallel()

	record := Record{Type: "AAAA", Name: "home.example.com", ZoneID: "zone"}

	assert.Equal(t, "AAAA record home.example.com (zone zone)", record.String())
}

func Test_BuildInformation_VersionString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		build   BuildInformation
		version string
	}{
		"release": {
			build:   BuildInformation{Version: "v1.2.0", Commit: "abcdefg"},
			version: "v1.2.0",
		},
		"latest with commit": {
			build:   BuildInformation{Version: "latest", Commit: "abcdefg"},
			version: "latest-abcdefg",
		},
		"latest without commit": {
			build:   BuildInformation{Version: "latest", Commit: "unknown"},
			version: "latest",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.version, testCase.build.VersionString())
		})
	}
}
