package shellattr

import (
	"reflect"
	"testing"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    []string
	}{
		{
			name:    "ancestor and folder, filesystem bit clear",
			outcome: Outcome{Mask: 0xB0000000},
			want: []string{
				"Attributes: 0xB0000000",
				"FileSystemAncestor",
				"Folder",
			},
		},
		{
			name:    "filesystem object alone",
			outcome: Outcome{Mask: 0x40000000},
			want: []string{
				"Attributes: 0x40000000",
				"FileSystemObject",
			},
		},
		{
			name:    "ancestor alone",
			outcome: Outcome{Mask: 0x10000000},
			want: []string{
				"Attributes: 0x10000000",
				"FileSystemAncestor",
			},
		},
		{
			name:    "folder alone",
			outcome: Outcome{Mask: 0x20000000},
			want: []string{
				"Attributes: 0x20000000",
				"Folder",
			},
		},
		{
			name:    "all three in fixed order",
			outcome: Outcome{Mask: 0x70000000},
			want: []string{
				"Attributes: 0x70000000",
				"FileSystemObject",
				"FileSystemAncestor",
				"Folder",
			},
		},
		{
			name:    "zero mask yields header only",
			outcome: Outcome{Mask: 0x00000000},
			want:    []string{"Attributes: 0x00000000"},
		},
		{
			name:    "unrecognized bits ignored",
			outcome: Outcome{Mask: 0x0000007D},
			want:    []string{"Attributes: 0x0000007D"},
		},
		{
			name:    "typical real-world directory mask",
			outcome: Outcome{Mask: 0xF080017E},
			want: []string{
				"Attributes: 0xF080017E",
				"FileSystemObject",
				"FileSystemAncestor",
				"Folder",
			},
		},
		{
			name:    "failure carries only the status",
			outcome: Outcome{Status: 0x80070043},
			want:    []string{"SHParseDisplayName failed: 0x80070043"},
		},
		{
			name:    "failure ignores any mask value",
			outcome: Outcome{Status: 0x80004005, Mask: 0x70000000},
			want:    []string{"SHParseDisplayName failed: 0x80004005"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.outcome)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Describe(%+v) = %v, want %v", tt.outcome, got, tt.want)
			}
			// Decoding is deterministic: a second pass must agree.
			again := Describe(tt.outcome)
			if !reflect.DeepEqual(got, again) {
				t.Errorf("Describe not deterministic: %v then %v", got, again)
			}
		})
	}
}

func TestMaskNamesOrder(t *testing.T) {
	// Display order is fixed, not bit-value order: FileSystemAncestor has
	// the numerically lowest bit but is always listed second.
	got := Mask(0x70000000).Names()
	want := []string{"FileSystemObject", "FileSystemAncestor", "Folder"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
