package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepair(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "well formed passes through",
			in:   "  line1\n+ line2\n",
			want: "  line1\n+ line2\n",
		},
		{
			name: "crlf becomes lf",
			in:   "  a\r\n+ b\r\n",
			want: "  a\n+ b\n",
		},
		{
			name: "literal backslash-n becomes newline",
			in:   `  a\n+ b\n`,
			want: "  a\n+ b\n",
		},
		{
			name: "single line split on markers",
			in:   "  line1+ line2",
			want: "  line1\n+ line2\n",
		},
		{
			name: "single line split handles delete and hint markers",
			in:   "  keep- gone? ^^+ new",
			want: "  keep\n- gone\n? ^^\n+ new\n",
		},
		{
			name: "trailing newline appended",
			in:   "  a\n+ b",
			want: "  a\n+ b\n",
		},
		{
			name: "empty input gains a newline",
			in:   "",
			want: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Repair(tt.in))
		})
	}
}

func TestRepairIdempotent(t *testing.T) {
	inputs := []string{
		"  line1\n+ line2\n",
		"  a\r\n+ b\r\n",
		`  a\n+ b`,
		"  line1+ line2- old",
		"",
	}

	for _, in := range inputs {
		once := Repair(in)
		assert.Equal(t, once, Repair(once), "Repair not idempotent for %q", in)
	}
}

func TestRepairMarkerSplitOnlyWithoutNewlines(t *testing.T) {
	// a payload that already has newlines must not be re-split, even if it
	// contains marker-like runs inside line content
	in := "  has  double  spaces\n+ x\n"
	assert.Equal(t, in, Repair(in))
}
