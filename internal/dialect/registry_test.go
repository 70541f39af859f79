package dialect

import "testing"

type stubGrammar struct{ name string }

func (g stubGrammar) Name() string                        { return g.name }
func (g stubGrammar) Parse(string) ([]CreateTable, error) { return nil, nil }

func TestRegisterOrdersGrammars(t *testing.T) {
	ResetRegistry()
	defer ResetRegistry()

	Register(3, stubGrammar{name: "third"})
	Register(1, stubGrammar{name: "first"})
	Register(2, stubGrammar{name: "second"})

	all := All()
	want := []string{"first", "second", "third"}
	if len(all) != len(want) {
		t.Fatalf("got %d grammars, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Name() != name {
			t.Errorf("position %d: got %q, want %q", i, all[i].Name(), name)
		}
	}
}

func TestResetRegistry(t *testing.T) {
	ResetRegistry()
	Register(1, stubGrammar{name: "only"})
	ResetRegistry()
	if got := All(); len(got) != 0 {
		t.Errorf("registry not cleared: %d entries", len(got))
	}
}
