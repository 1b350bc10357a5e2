package surrealhttp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SplitThing(t *testing.T) {
	for _, tc := range []struct {
		thing string
		table string
		id    string
	}{
		{"person", "person", ""},
		{"person:tobie", "person", "tobie"},
		{"person:h5wxrf2ewk8xjxosxtyc", "person", "h5wxrf2ewk8xjxosxtyc"},
		// Only the first colon separates table from id.
		{"person:a:b", "person", "a:b"},
		{"person:", "person", ""},
		{":tobie", "", "tobie"},
		{"", "", ""},
	} {
		table, id := SplitThing(tc.thing)
		assert.Equal(t, tc.table, table, tc.thing)
		assert.Equal(t, tc.id, id, tc.thing)
	}
}
