package scoring

import "testing"

func TestDefaultCatalogSize(t *testing.T) {
	catalog := Default()
	if catalog.Len() != 22 {
		t.Fatalf("expected 22 catalog keywords, got %d", catalog.Len())
	}
	if len(catalog.ActionVerbs()) == 0 {
		t.Fatalf("expected action verbs to be populated")
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	catalog := Default()

	keywords := catalog.Keywords()
	keywords[0] = "mutated"
	if catalog.Keywords()[0] == "mutated" {
		t.Fatalf("Keywords must not expose internal storage")
	}

	verbs := catalog.ActionVerbs()
	verbs[0] = "mutated"
	if catalog.ActionVerbs()[0] == "mutated" {
		t.Fatalf("ActionVerbs must not expose internal storage")
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	keywords := []string{"python"}
	verbs := []string{"built"}
	catalog := New(keywords, verbs)

	keywords[0] = "mutated"
	if catalog.Keywords()[0] != "python" {
		t.Fatalf("New must copy the keyword slice")
	}
	verbs[0] = "mutated"
	if catalog.ActionVerbs()[0] != "built" {
		t.Fatalf("New must copy the verb slice")
	}
}
