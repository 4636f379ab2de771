package mapping

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/swasthyasetu/portal/internal/platform/dispatch"
	"github.com/swasthyasetu/portal/internal/platform/notify"
	"github.com/swasthyasetu/portal/pkg/browse"
)

func newTestService() (*Service, *notify.Feed) {
	feed := notify.NewFeed(16)
	d := dispatch.New(time.Millisecond, feed, zerolog.Nop())
	return NewService(NewMemRepo(), d), feed
}

func TestSearchMappingsEmptyCriteria(t *testing.T) {
	svc, _ := newTestService()
	all, err := svc.SearchMappings(context.Background(), browse.Criteria{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 mappings, got %d", len(all))
	}
	if all[0].ID != "MAP001" || all[3].ID != "MAP004" {
		t.Error("expected store order preserved")
	}
}

func TestSearchMappingsByEitherCode(t *testing.T) {
	svc, _ := newTestService()
	// ICD-11 code
	matched, err := svc.SearchMappings(context.Background(), browse.Criteria{Query: "ba00"})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0].ID != "MAP002" {
		t.Fatalf("expected MAP002 by ICD-11 code, got %+v", matched)
	}
	// NAMASTE code
	matched, err = svc.SearchMappings(context.Background(), browse.Criteria{Query: "nam-34567"})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0].ID != "MAP003" {
		t.Fatalf("expected MAP003 by NAMASTE code, got %+v", matched)
	}
}

func TestSearchMappingsDevanagariTerm(t *testing.T) {
	svc, _ := newTestService()
	matched, err := svc.SearchMappings(context.Background(), browse.Criteria{Query: "हृदय"})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0].ID != "MAP002" {
		t.Fatalf("expected MAP002 by Devanagari term, got %+v", matched)
	}
}

func TestSearchMappingsStatusFacet(t *testing.T) {
	svc, _ := newTestService()
	matched, err := svc.SearchMappings(context.Background(), browse.Criteria{
		Facets: map[string]string{"status": "pending"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 pending mappings, got %d", len(matched))
	}
}

func TestReviewEmitsToastAndLeavesStore(t *testing.T) {
	svc, feed := newTestService()
	out, err := svc.Review(context.Background(), "MAP001", "approve", ReviewInput{Comments: "looks right"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Message != "Mapping MAP001 has been approved" {
		t.Errorf("unexpected message: %s", out.Message)
	}
	if feed.Len() != 1 {
		t.Errorf("expected 1 toast, got %d", feed.Len())
	}

	m, err := svc.GetMapping(context.Background(), "MAP001")
	if err != nil {
		t.Fatal(err)
	}
	if m.Status != "pending" {
		t.Errorf("expected MAP001 still pending, got %s", m.Status)
	}
}

func TestReviewUnknownAction(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Review(context.Background(), "MAP001", "escalate", ReviewInput{}); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestStats(t *testing.T) {
	svc, _ := newTestService()
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 4 || stats.Pending != 2 || stats.Approved != 1 || stats.Rejected != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgConfidence != 88 { // (95+87+78+92)/4
		t.Errorf("avgConfidence: expected 88, got %.2f", stats.AvgConfidence)
	}
}

// The exported JSON must carry the full nested graph and unmarshal back
// to a deep-equal value.
func TestExportJSONRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	data, filename, err := svc.ExportJSON(context.Background(), browse.Criteria{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(filename, "mappings-") || !strings.HasSuffix(filename, ".json") {
		t.Errorf("unexpected filename %s", filename)
	}

	var decoded []Mapping
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	original, err := svc.SearchMappings(context.Background(), browse.Criteria{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Error("export did not round-trip deep-equal")
	}
	if decoded[0].Namaste.Code != "NAM-12345" || decoded[0].ICD11.Code != "5A11" {
		t.Error("nested terminology sub-records lost in export")
	}
}
