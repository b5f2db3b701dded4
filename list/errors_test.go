package list

import (
	"errors"
	"testing"
)

var errorMessageTests = []struct {
	err     error
	wantMsg string
}{
	{
		EmptyError{"take first"},
		"empty list: cannot take first",
	},
	{
		EmptyError{"take rest"},
		"empty list: cannot take rest",
	},
	{
		EmptyError{"set first"},
		"empty list: cannot set first",
	},
	{
		NegativeCountError{"drop count", -1},
		"negative count: drop count must be at least 0, but is -1",
	},
	{
		NegativeCountError{"take count", -10},
		"negative count: take count must be at least 0, but is -10",
	},
}

func TestErrorMessages(t *testing.T) {
	for _, test := range errorMessageTests {
		if gotMsg := test.err.Error(); gotMsg != test.wantMsg {
			t.Errorf("got message %v, want %v", gotMsg, test.wantMsg)
		}
	}
}

func TestErrorsAs(t *testing.T) {
	_, err := Of[int]().Rest()
	var emptyErr EmptyError
	if !errors.As(err, &emptyErr) {
		t.Errorf("Rest on empty list returns %v, want an EmptyError", err)
	}
	_, err = Of(1).Drop(-1)
	var countErr NegativeCountError
	if !errors.As(err, &countErr) {
		t.Errorf("Drop(-1) returns %v, want a NegativeCountError", err)
	}
}
