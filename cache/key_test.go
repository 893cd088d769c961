package cache

import (
	"testing"

	"github.com/google/uuid"
)

type pageArgs struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func TestKey_Format(t *testing.T) {
	id := uuid.MustParse("0d9b2b1a-59b5-4c5e-9a0e-3f1d2c4b5a69")

	tests := []struct {
		name   string
		prefix string
		domain string
		method string
		args   []any
		want   string
	}{
		{
			name:   "no args",
			prefix: "carpool:",
			domain: "brand",
			method: "FindAll",
			want:   "carpool:brand:find_all",
		},
		{
			name:   "uuid arg uses stringer",
			prefix: "carpool:",
			domain: "travel",
			method: "FindByID",
			args:   []any{id},
			want:   "carpool:travel:find_by_id:0d9b2b1a-59b5-4c5e-9a0e-3f1d2c4b5a69",
		},
		{
			name:   "composite args keep their own segments",
			prefix: "carpool:",
			domain: "inscription",
			method: "ExistsByTravelAndPassenger",
			args:   []any{"t1", "p1"},
			want:   "carpool:inscription:exists_by_travel_and_passenger:t1:p1",
		},
		{
			name:   "struct arg serializes as json",
			prefix: "test:",
			domain: "city",
			method: "FindAll",
			args:   []any{pageArgs{Page: 2, Limit: 20}},
			want:   `test:city:find_all:{"page":2,"limit":20}`,
		},
		{
			name:   "nil arg",
			prefix: "test:",
			domain: "user",
			method: "FindByEmail",
			args:   []any{nil},
			want:   "test:user:find_by_email:nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(tt.prefix, tt.domain, tt.method, tt.args...)
			if got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKey_Deterministic(t *testing.T) {
	args := []any{uuid.MustParse("11111111-2222-3333-4444-555555555555"), pageArgs{Page: 1, Limit: 10}}

	first := Key("carpool:", "travel", "FindByDriver", args...)
	for i := 0; i < 50; i++ {
		if got := Key("carpool:", "travel", "FindByDriver", args...); got != first {
			t.Fatalf("key changed between calls: %q vs %q", got, first)
		}
	}
}

func TestKey_DistinctArgsDistinctKeys(t *testing.T) {
	a := Key("carpool:", "inscription", "ExistsByTravelAndPassenger", "t1", "p2")
	b := Key("carpool:", "inscription", "ExistsByTravelAndPassenger", "t2", "p1")
	if a == b {
		t.Errorf("different composite lookups collided on %q", a)
	}

	p1 := Key("carpool:", "city", "FindAll", pageArgs{Page: 1, Limit: 20})
	p2 := Key("carpool:", "city", "FindAll", pageArgs{Page: 2, Limit: 20})
	if p1 == p2 {
		t.Errorf("different pages collided on %q", p1)
	}
}

func TestKey_PointerDereference(t *testing.T) {
	s := "plate-123"
	direct := Key("t:", "car", "FindByPlate", s)
	viaPtr := Key("t:", "car", "FindByPlate", &s)
	if direct != viaPtr {
		t.Errorf("pointer arg produced %q, value arg %q", viaPtr, direct)
	}

	var nilPtr *string
	if got := Key("t:", "car", "FindByPlate", nilPtr); got != "t:car:find_by_plate:nil" {
		t.Errorf("nil pointer arg produced %q", got)
	}
}

func TestToSnake(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"FindByID", "find_by_id"},
		{"FindAll", "find_all"},
		{"ExistsByTravelAndPassenger", "exists_by_travel_and_passenger"},
		{"SearchByName", "search_by_name"},
		{"", ""},
		{"already_snake", "already_snake"},
	}
	for _, tt := range tests {
		if got := toSnake(tt.in); got != tt.want {
			t.Errorf("toSnake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
