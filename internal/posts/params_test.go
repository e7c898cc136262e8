package posts

import "testing"

func TestStaticParamsAreStable(t *testing.T) {
	t.Parallel()

	expected := []string{"1", "2", "3", "4"}

	for call := 0; call < 3; call++ {
		params := StaticParams()
		if len(params) != len(expected) {
			t.Fatalf("call %d: expected %d params, got %d", call, len(expected), len(params))
		}
		for i, id := range expected {
			if params[i] != id {
				t.Fatalf("call %d: expected param %q at index %d, got %q", call, id, i, params[i])
			}
		}
	}
}

func TestStaticParamsReturnsACopy(t *testing.T) {
	t.Parallel()

	first := StaticParams()
	first[0] = "mutated"

	second := StaticParams()
	if second[0] != "1" {
		t.Fatalf("expected static set to be unaffected by caller mutation, got %q", second[0])
	}
}
