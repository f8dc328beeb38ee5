package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectDocLookupArgs(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "bare doc id",
			in:   []string{"annota", "doc-abc12345"},
			want: []string{"annota", "docs", "show", "doc-abc12345"},
		},
		{
			name: "doc id after value flag",
			in:   []string{"annota", "--dir", "/tmp/ws", "doc-abc12345"},
			want: []string{"annota", "--dir", "/tmp/ws", "docs", "show", "doc-abc12345"},
		},
		{
			name: "doc id after bool flag",
			in:   []string{"annota", "--pretty", "doc-abc12345"},
			want: []string{"annota", "--pretty", "docs", "show", "doc-abc12345"},
		},
		{
			name: "doc id after terminator",
			in:   []string{"annota", "--", "doc-abc12345"},
			want: []string{"annota", "--", "docs", "show", "doc-abc12345"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"annota", "docs", "show", "doc-abc12345"},
			want: []string{"annota", "docs", "show", "doc-abc12345"},
		},
		{
			name: "non doc token untouched",
			in:   []string{"annota", "projects", "list"},
			want: []string{"annota", "projects", "list"},
		},
		{
			name: "bare prefix is not an id",
			in:   []string{"annota", "doc-"},
			want: []string{"annota", "doc-"},
		},
		{
			name: "no args",
			in:   []string{"annota"},
			want: []string{"annota"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rewriteDirectDocLookupArgs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
