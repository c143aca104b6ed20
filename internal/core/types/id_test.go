package types

import (
	"encoding/json"
	"testing"

	"tactical-sim/internal/core/types/enums"
)

func TestEntityID_Generation(t *testing.T) {
	tests := []struct {
		name string
		id   EntityID
		want uint16
	}{
		{name: "Generation zero", id: EntityID(0), want: 0},
		{name: "Generation simple", id: EntityID(uint64(1) << shiftGen), want: 1},
		{name: "Generation max", id: EntityID(uint64(maskGen) << shiftGen), want: maskGen},
		{name: "Generation masked correctly", id: EntityID(uint64(0xFFFFFFFF) << shiftGen), want: maskGen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Generation(); got != tt.want {
				t.Errorf("Generation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntityID_Index(t *testing.T) {
	tests := []struct {
		name string
		id   EntityID
		want uint32
	}{
		{name: "Index zero", id: EntityID(0), want: 0},
		{name: "Index simple", id: EntityID(42), want: 42},
		{name: "Index max", id: EntityID(maskIndex), want: maskIndex},
		{name: "Index ignores upper bits", id: EntityID(uint64(7)<<shiftGen | 9), want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Index(); got != tt.want {
				t.Errorf("Index() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackEntityID(t *testing.T) {
	tests := []struct {
		name  string
		kind  enums.ActorKind
		gen   uint16
		index uint32
	}{
		{"Operative first slot", enums.ActorKindOperative, 1, 0},
		{"Forager reused slot", enums.ActorKindForager, 7, 12},
		{"Max values", enums.ActorKind(maskKind), maskGen, maskIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := PackEntityID(tt.kind, tt.gen, tt.index)
			if id.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", id.Kind(), tt.kind)
			}
			if id.Generation() != tt.gen {
				t.Errorf("Generation() = %v, want %v", id.Generation(), tt.gen)
			}
			if id.Index() != tt.index {
				t.Errorf("Index() = %v, want %v", id.Index(), tt.index)
			}
		})
	}
}

func TestEntityID_IsNil(t *testing.T) {
	if !NilEntityID.IsNil() {
		t.Error("NilEntityID should be nil")
	}
	if PackEntityID(enums.ActorKindOperative, 1, 0).IsNil() {
		t.Error("packed id with generation 1 must not be nil")
	}
}

func TestEntityID_String(t *testing.T) {
	if got := NilEntityID.String(); got != "<nil>" {
		t.Errorf("String() = %q, want <nil>", got)
	}

	id := PackEntityID(enums.ActorKindWildMonster, 3, 5)
	want := "[kind=WILD_MONSTER gen=3 idx=5]"
	if got := id.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEntityID_JSONRoundTrip(t *testing.T) {
	id := PackEntityID(enums.ActorKindIntelligentMonster, 65535, 4000000000)

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if data[0] != '"' {
		t.Fatalf("expected string encoding, got %s", data)
	}

	var got EntityID
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != id {
		t.Fatalf("round trip mismatch: got %v, want %v", got, id)
	}
}

func TestEntityID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EntityID
		wantErr bool
	}{
		{name: "number", input: `42`, want: 42},
		{name: "string", input: `"42"`, want: 42},
		{name: "empty string", input: `""`, want: NilEntityID},
		{name: "garbage", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id EntityID
			err := id.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.want {
				t.Errorf("got %v, want %v", id, tt.want)
			}
		})
	}
}
