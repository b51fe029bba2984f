package sequence

import (
	"errors"
	"reflect"
	"testing"
)

func TestStandardOffsets(t *testing.T) {
	tests := []struct {
		bodyLen int
		blocks  int
		want    []int
	}{
		{10, 2, []int{0, 10}},
		{10, 3, []int{0, 5, 10}},
		{20, 4, []int{0, 6, 13, 20}},
		{4, 5, []int{0, 1, 2, 3, 4}},
		{0, 2, []int{0, 0}},
	}

	for _, test := range tests {
		got, err := standardOffsets(test.bodyLen, test.blocks)
		if err != nil {
			t.Fatalf("bodyLen=%d blocks=%d: %v", test.bodyLen, test.blocks, err)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("bodyLen=%d blocks=%d: got %v, want %v", test.bodyLen, test.blocks, got, test.want)
		}
	}
}

func TestStandardOffsetsInteriorStaysInterior(t *testing.T) {
	offsets, err := standardOffsets(100, 7)
	if err != nil {
		t.Fatal(err)
	}
	if offsets[0] != 0 || offsets[len(offsets)-1] != 100 {
		t.Fatalf("endpoints: %v", offsets)
	}
	for i := 1; i < len(offsets)-1; i++ {
		if offsets[i] <= offsets[i-1] {
			t.Errorf("offsets not strictly increasing: %v", offsets)
		}
		if offsets[i] < 1 || offsets[i] > 99 {
			t.Errorf("interior offset out of range: %v", offsets)
		}
	}
}

func TestStandardOffsetsErrors(t *testing.T) {
	var cerr *ConfigurationError

	_, err := standardOffsets(10, 1)
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigurationError for blocks=1, got %v", err)
	}

	// 4 interior blocks cannot fit distinctly inside a 4-entry body.
	_, err = standardOffsets(4, 6)
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigurationError for blocks=6 over 4 entries, got %v", err)
	}
}
