package browse

import (
	"reflect"
	"testing"
)

type user struct {
	Name   string
	Email  string
	Type   string
	Status string
}

var users = []user{
	{"Dr. Rajesh Sharma", "rajesh.sharma@hospital.com", "doctor", "active"},
	{"Priya Patel", "priya.patel@gmail.com", "patient", "active"},
	{"Admin Kumar", "admin@swasthyasetu.com", "admin", "active"},
	{"Dr. Meera Singh", "meera.singh@clinic.com", "doctor", "inactive"},
	{"Amit Verma", "amit.verma@yahoo.com", "patient", "suspended"},
}

func userSearch(u user) []string { return []string{u.Name, u.Email} }

func userFacet(u user, f string) string {
	switch f {
	case "type":
		return u.Type
	case "status":
		return u.Status
	}
	return ""
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	c := Criteria{Query: "", Facets: map[string]string{"type": AllFacet, "status": AllFacet}}
	got := Filter(users, c, userSearch, userFacet)
	if !reflect.DeepEqual(got, users) {
		t.Fatalf("expected full store in original order, got %v", got)
	}
}

func TestFilter_QueryContainment(t *testing.T) {
	c := Criteria{Query: "SHARMA"}
	got := Filter(users, c, userSearch, userFacet)
	if len(got) != 1 || got[0].Name != "Dr. Rajesh Sharma" {
		t.Fatalf("expected single case-insensitive match, got %v", got)
	}

	// Every excluded record must genuinely fail the containment check.
	for _, u := range users[1:] {
		for _, f := range userSearch(u) {
			if f == "sharma" {
				t.Errorf("record %v should not contain query", u)
			}
		}
	}
}

func TestFilter_FacetEquality(t *testing.T) {
	c := Criteria{Facets: map[string]string{"type": "doctor"}}
	got := Filter(users, c, userSearch, userFacet)
	if len(got) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(got))
	}
	for _, u := range got {
		if u.Type != "doctor" {
			t.Errorf("expected only doctors, got %s", u.Type)
		}
	}
}

func TestFilter_QueryAndFacetsAreANDed(t *testing.T) {
	c := Criteria{Query: "verma", Facets: map[string]string{"status": "active"}}
	got := Filter(users, c, userSearch, userFacet)
	if len(got) != 0 {
		t.Fatalf("expected no match (Verma is suspended), got %v", got)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	c := Criteria{Query: "a", Facets: map[string]string{"status": "active"}}
	first := Filter(users, c, userSearch, userFacet)
	second := Filter(users, c, userSearch, userFacet)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for repeated criteria")
	}
}

func TestFilter_EmptyStore(t *testing.T) {
	got := Filter(nil, Criteria{Query: "x"}, userSearch, userFacet)
	if len(got) != 0 {
		t.Fatalf("expected empty result for empty store, got %v", got)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	c := Criteria{Facets: map[string]string{"status": "active"}}
	got := Filter(users, c, userSearch, userFacet)
	want := []string{"Dr. Rajesh Sharma", "Priya Patel", "Admin Kumar"}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i, u := range got {
		if u.Name != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], u.Name)
		}
	}
}

func TestCriteria_FacetSentinel(t *testing.T) {
	c := Criteria{}
	if c.Facet("status") != AllFacet {
		t.Error("unset facet should read as the all sentinel")
	}
	c = Criteria{Facets: map[string]string{"status": ""}}
	if c.Facet("status") != AllFacet {
		t.Error("empty facet value should read as the all sentinel")
	}
	if !c.IsZero() {
		t.Error("criteria with only sentinel facets should be zero")
	}
}

func TestCountBy_FullStore(t *testing.T) {
	counts := CountBy(users, func(u user) string { return u.Type })
	if counts["doctor"] != 2 || counts["patient"] != 2 || counts["admin"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestSumBy(t *testing.T) {
	amounts := []float64{15000, 25000, 5000, 12000}
	type claim struct{ Amount float64 }
	var claims []claim
	for _, a := range amounts {
		claims = append(claims, claim{a})
	}
	total := SumBy(claims, func(c claim) float64 { return c.Amount })
	if total != 57000 {
		t.Fatalf("expected 57000, got %v", total)
	}
}

func TestSelection_Transitions(t *testing.T) {
	var s Selection[user]

	if s.IsSelected() {
		t.Fatal("zero selection should be unselected")
	}

	s.Select(users[0])
	got, ok := s.Get()
	if !ok || got.Name != users[0].Name {
		t.Fatalf("expected %s selected", users[0].Name)
	}

	// Selecting a second record replaces the first; never both.
	s.Select(users[1])
	got, ok = s.Get()
	if !ok || got.Name != users[1].Name {
		t.Fatalf("expected %s selected after re-select", users[1].Name)
	}

	s.Clear()
	if s.IsSelected() {
		t.Fatal("expected unselected after clear")
	}

	// Clear on unselected is a no-op.
	s.Clear()
	if s.IsSelected() {
		t.Fatal("expected clear on unselected to be a no-op")
	}
}
