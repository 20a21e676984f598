package formflat_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/tomasbasham/formflat"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input formflat.Value
		want  *formflat.Map
	}{
		"deeply nested mapping": {
			input: obj("a", obj("b", obj("c", 1))),
			want:  flat("a.b.c", 1),
		},
		"sequence indices": {
			input: obj("a", seq(2, null, 4)),
			want:  flat("a.0", 2, "a.1", null, "a.2", 4),
		},
		"sequence of mappings": {
			input: obj("list", seq(obj("x", 1), obj("y", obj("z", 2)))),
			want:  flat("list.0.x", 1, "list.1.y.z", 2),
		},
		"nested sequences": {
			input: obj("m", seq(seq(1, 2), 3)),
			want:  flat("m.0.0", 1, "m.0.1", 2, "m.1", 3),
		},
		"top-level null": {
			input: obj("a", null, "b", undef),
			want:  flat("a", null, "b", undef),
		},
		"nested null": {
			input: obj("a", obj("b", null)),
			want:  flat("a.b", null),
		},
		"empty nested key": {
			input: obj("a", obj("", 5)),
			want:  flat("a", 5),
		},
		"empty top-level key": {
			input: obj("", 1),
			want:  flat("", 1),
		},
		"empty nested mapping vanishes": {
			input: obj("a", obj(), "b", 1),
			want:  flat("b", 1),
		},
		"empty sequence vanishes": {
			input: obj("a", seq(), "b", 1),
			want:  flat("b", 1),
		},
		"insertion order": {
			input: obj("z", 1, "a", obj("y", 2, "b", 3), "m", 4),
			want:  flat("z", 1, "a.y", 2, "a.b", 3, "m", 4),
		},
		"empty strings are kept": {
			input: obj("a", "", "b", "null"),
			want:  flat("a", "", "b", "null"),
		},
		"dotted key is not escaped": {
			input: obj("a.b", obj("c", 1)),
			want:  flat("a.b.c", 1),
		},
		"mixed document": {
			input: obj(
				"KeyA", 1,
				"KeyB", obj(
					"c", 2,
					"d", 3,
					"e", obj(
						"f", obj(
							"ss", obj("aa", 33),
							"sss", obj("aas", 33),
						),
						"ff", seq(2, null, 4),
					),
				),
			),
			want: flat(
				"KeyA", 1,
				"KeyB.c", 2,
				"KeyB.d", 3,
				"KeyB.e.f.ss.aa", 33,
				"KeyB.e.f.sss.aas", 33,
				"KeyB.e.ff.0", 2,
				"KeyB.e.ff.1", null,
				"KeyB.e.ff.2", 4,
			),
		},
		"top-level sequence": {
			input: seq(1, obj("a", 2)),
			want:  flat("0", 1, "1.a", 2),
		},
		"top-level scalar": {
			input: formflat.Scalar(42),
			want:  flat(),
		},
		"top-level null value": {
			input: null,
			want:  flat(),
		},
		"top-level undefined value": {
			input: undef,
			want:  flat(),
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := formflat.Flatten(tt.input)
			if diff := diffMap(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlatten_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := map[string]formflat.Value{
		"nested":    obj("a", obj("b", obj("c", 1)), "d", "x"),
		"sequences": obj("a", seq(1, obj("b", 2), seq(3)), "c", null),
		"flat":      obj("a", 1, "b", 2),
		"empty":     obj(),
	}
	for name, input := range inputs {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			once := formflat.Flatten(input)
			twice := formflat.Flatten(formflat.Mapping(once))
			if diff := diffMap(once, twice); diff != "" {
				t.Errorf("mismatch (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestFlatten_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	input := obj("a", obj("b", 1, "c", seq(obj("d", 2))), "e", null)
	before, err := formflat.Clone(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := formflat.Flatten(input)
	got.Set("a.b", formflat.Scalar("changed"))

	if !input.Equal(before) {
		t.Errorf("input was modified:\n%s", spew.Sdump(input.Map().Entries()))
	}
}

func BenchmarkFlatten(b *testing.B) {
	input := obj(
		"level1", obj(
			"level2", obj(
				"level3", obj("level4", "deep", "data", seq("a", "b", "c")),
			),
		),
		"items", seq(obj("id", 1), obj("id", 2), obj("id", 3)),
	)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		formflat.Flatten(input)
	}
}
