package isa

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		raw  string
		want Layout
	}{
		{
			"19:15",
			Layout{
				Steps: []DecodeStep{{Mask: 0x000f8000, RightShift: 15}},
				Width: 5,
			},
		},
		{
			"31:25[11:5],11:7[4:0]",
			Layout{
				Steps: []DecodeStep{
					{Mask: 0xfe000000, RightShift: 20},
					{Mask: 0x00000f80, RightShift: 7},
				},
				Width: 12,
			},
		},
		{
			"31:25[12|10:5],11:7[4:1|11]",
			Layout{
				Steps: []DecodeStep{
					{Mask: 0x80000000, RightShift: 19},
					{Mask: 0x7e000000, RightShift: 20},
					{Mask: 0x00000f00, RightShift: 7},
					{Mask: 0x00000080, RightShift: -4},
				},
				Width: 13,
			},
		},
		{
			"31:12[20|10:1|11|19:12]",
			Layout{
				Steps: []DecodeStep{
					{Mask: 0x80000000, RightShift: 11},
					{Mask: 0x7fe00000, RightShift: 20},
					{Mask: 0x00100000, RightShift: 9},
					{Mask: 0x000ff000, RightShift: 0},
				},
				Width: 21,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			got, err := ParseLayout(test.raw)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("wrong layout (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []string{
		"",
		"a:b",
		"7:12",
		"32:0",
		"31:25[12|10:5",
		"11:7[11:0]",
	}
	for _, raw := range tests {
		if _, err := ParseLayout(raw); err == nil {
			t.Errorf("%q: expected an error", raw)
		}
	}
}

func TestDecodeStepString(t *testing.T) {
	tests := []struct {
		step DecodeStep
		want string
	}{
		{DecodeStep{Mask: 0x7f}, "(inst & 0b00000000000000000000000001111111)"},
		{DecodeStep{Mask: 0x80, RightShift: -4}, "(inst & 0b00000000000000000000000010000000) << 4"},
		{DecodeStep{Mask: 0xf8000, RightShift: 15}, "(inst & 0b00000000000011111000000000000000) >> 15"},
	}
	for _, test := range tests {
		if got := test.step.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}
