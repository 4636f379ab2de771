package records

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/swasthyasetu/portal/pkg/browse"
)

func TestSearchHistoryEmptyCriteria(t *testing.T) {
	svc := NewService(NewMemRepo())
	all, err := svc.SearchHistory(context.Background(), browse.Criteria{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(all))
	}
}

func TestSearchHistoryTypeFacetSlug(t *testing.T) {
	svc := NewService(NewMemRepo())
	matched, err := svc.SearchHistory(context.Background(), browse.Criteria{
		Facets: map[string]string{"type": "lab-test"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0].Type != "Lab Test" {
		t.Fatalf("expected the Lab Test entry, got %+v", matched)
	}
}

func TestSearchHistoryByDiagnosis(t *testing.T) {
	svc := NewService(NewMemRepo())
	matched, err := svc.SearchHistory(context.Background(), browse.Criteria{Query: "respiratory"})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0].ID != "3" {
		t.Fatalf("expected the respiratory entry, got %+v", matched)
	}
}

func TestGraphAssemblesAllStores(t *testing.T) {
	svc := NewService(NewMemRepo())
	graph, err := svc.Graph(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(graph.Medications) != 3 || len(graph.MedicalHistory) != 3 || len(graph.LabResults) != 4 {
		t.Errorf("unexpected graph sizes: %d meds, %d history, %d labs",
			len(graph.Medications), len(graph.MedicalHistory), len(graph.LabResults))
	}
	if graph.Vitals.BloodPressure.Value != "120/80" {
		t.Errorf("unexpected vitals: %+v", graph.Vitals.BloodPressure)
	}

	lows := 0
	for _, lab := range graph.LabResults {
		if lab.Status == "low" {
			lows++
		}
	}
	if lows != 1 {
		t.Errorf("expected exactly 1 low lab result, got %d", lows)
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	svc := NewService(NewMemRepo())
	data, filename, err := svc.ExportJSON(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(filename, "health-records-") || !strings.HasSuffix(filename, ".json") {
		t.Errorf("unexpected filename %s", filename)
	}

	var decoded RecordGraph
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.ExportDate == "" {
		t.Error("expected export timestamp")
	}
	if len(decoded.Medications) != 3 || decoded.Medications[0].Name != "Metformin" {
		t.Errorf("medications lost in export: %+v", decoded.Medications)
	}
	if len(decoded.MedicalHistory) != 3 || len(decoded.MedicalHistory[0].Prescriptions) != 2 {
		t.Error("nested prescriptions lost in export")
	}
}
