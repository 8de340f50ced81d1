package ecs

import (
	"testing"

	"github.com/milk9111/skyhop/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get[int](w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get[float64](w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove[float64](w, e1, h3.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})
}

func TestForEachIntersections(t *testing.T) {
	// Each entity holds the kinds flagged in its row; only full rows match.
	tests := []struct {
		name  string
		holds [][4]bool
		dead  int // index destroyed before iterating, -1 = none
		want  map[int][]int
	}{
		{
			name:  "one_full_match",
			holds: [][4]bool{{true, false, false, false}, {true, true, true, true}, {false, true, false, true}},
			dead:  -1,
			want:  map[int][]int{2: {1}, 3: {1}, 4: {1}},
		},
		{
			name:  "prefix_matches",
			holds: [][4]bool{{true, true, false, false}, {true, true, true, false}},
			dead:  -1,
			want:  map[int][]int{2: {0, 1}, 3: {1}, 4: nil},
		},
		{
			name:  "dead_entities_skipped",
			holds: [][4]bool{{true, true, true, true}, {true, true, true, true}},
			dead:  0,
			want:  map[int][]int{2: {1}, 3: {1}, 4: {1}},
		},
		{
			name:  "missing_store",
			holds: [][4]bool{{true, false, false, false}},
			dead:  -1,
			want:  map[int][]int{2: nil, 3: nil, 4: nil},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			kinds := [4]component.ComponentKind[int]{
				component.NewComponentKind[int](),
				component.NewComponentKind[int](),
				component.NewComponentKind[int](),
				component.NewComponentKind[int](),
			}
			ents := make([]Entity, len(tc.holds))
			for i, row := range tc.holds {
				ents[i] = CreateEntity(w)
				for k, has := range row {
					if !has {
						continue
					}
					if err := Add(w, ents[i], kinds[k], intPtr(i)); err != nil {
						t.Fatal(err)
					}
				}
			}
			if tc.dead >= 0 && !DestroyEntity(w, ents[tc.dead]) {
				t.Fatal("failed to destroy entity")
			}

			got := map[int][]Entity{}
			ForEach2(w, kinds[0], kinds[1], func(e Entity, _, _ *int) { got[2] = append(got[2], e) })
			ForEach3(w, kinds[0], kinds[1], kinds[2], func(e Entity, _, _, _ *int) { got[3] = append(got[3], e) })
			ForEach4(w, kinds[0], kinds[1], kinds[2], kinds[3], func(e Entity, _, _, _, _ *int) { got[4] = append(got[4], e) })

			for arity := 2; arity <= 4; arity++ {
				set := toSet(got[arity])
				if len(set) != len(tc.want[arity]) {
					t.Fatalf("ForEach%d matched %v, want indexes %v", arity, got[arity], tc.want[arity])
				}
				for _, i := range tc.want[arity] {
					if _, ok := set[ents[i]]; !ok {
						t.Fatalf("ForEach%d missed entity %d", arity, i)
					}
				}
			}
		})
	}
}
