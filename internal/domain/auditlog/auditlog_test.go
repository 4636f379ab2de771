package auditlog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/swasthyasetu/portal/internal/platform/middleware"
	"github.com/swasthyasetu/portal/pkg/browse"
)

func TestSearchEntriesEmptyCriteria(t *testing.T) {
	svc := NewService(NewMemRepo())
	all, err := svc.SearchEntries(context.Background(), browse.Criteria{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(all))
	}
	if all[0].ID != "LOG001" || all[6].ID != "LOG007" {
		t.Error("expected store order preserved")
	}
}

func TestSearchEntriesFreeText(t *testing.T) {
	svc := NewService(NewMemRepo())
	// "backup" only appears in LOG003's action and details
	matched, err := svc.SearchEntries(context.Background(), browse.Criteria{Query: "backup"})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0].ID != "LOG003" {
		t.Fatalf("expected LOG003, got %+v", matched)
	}
}

func TestSearchEntriesActionSubstringFacet(t *testing.T) {
	svc := NewService(NewMemRepo())
	// "login" must catch "failed_login" by substring-class match
	matched, err := svc.SearchEntries(context.Background(), browse.Criteria{
		Facets: map[string]string{"action": "login"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0].ID != "LOG004" {
		t.Fatalf("expected LOG004, got %+v", matched)
	}
}

func TestSearchEntriesUserTypeFacet(t *testing.T) {
	svc := NewService(NewMemRepo())
	matched, err := svc.SearchEntries(context.Background(), browse.Criteria{
		Facets: map[string]string{"user_type": "system"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 system entries, got %d", len(matched))
	}
}

func TestStats(t *testing.T) {
	svc := NewService(NewMemRepo())
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalLogs != 7 {
		t.Errorf("totalLogs: expected 7, got %d", stats.TotalLogs)
	}
	if stats.CriticalEvents != 1 {
		t.Errorf("criticalEvents: expected 1, got %d", stats.CriticalEvents)
	}
	if stats.FailedActions != 2 {
		t.Errorf("failedActions: expected 2, got %d", stats.FailedActions)
	}
	if stats.UserActions != 5 {
		t.Errorf("userActions: expected 5, got %d", stats.UserActions)
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewService(NewMemRepo())
	data, filename, err := svc.ExportCSV(context.Background(), browse.Criteria{})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 8 { // header + 7 entries
		t.Fatalf("expected 8 csv lines, got %d", len(lines))
	}
	if lines[0] != "Timestamp,User,Action,Resource,Status,Severity,IP Address" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "Dr. Rajesh Sharma") || !strings.Contains(lines[1], "patient_data_access") {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if !strings.HasPrefix(filename, "audit-logs-") || !strings.HasSuffix(filename, ".csv") {
		t.Errorf("unexpected filename %s", filename)
	}
}

func TestRecordAccessAppendsLiveEntry(t *testing.T) {
	svc := NewService(NewMemRepo())
	err := svc.RecordAccess(middleware.AuditEntry{
		UserID: "USR003", UserName: "Admin Kumar", Role: "admin",
		Resource: "claims", Action: "view",
		Method: "GET", Path: "/api/v1/admin/claims",
		IPAddress: "10.0.0.5", Timestamp: time.Now().UTC(),
		RequestID: "req-1", StatusCode: 200,
	})
	if err != nil {
		t.Fatal(err)
	}
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalLogs != 8 {
		t.Fatalf("expected trail to grow to 8, got %d", stats.TotalLogs)
	}
	e, err := svc.GetEntry(context.Background(), "LOG008")
	if err != nil {
		t.Fatal(err)
	}
	if e.Action != "claims_view" || e.Status != "success" {
		t.Errorf("unexpected live entry: %+v", e)
	}
}

func TestRecordAccessFailureSeverity(t *testing.T) {
	svc := NewService(NewMemRepo())
	err := svc.RecordAccess(middleware.AuditEntry{
		Resource: "users", Action: "view",
		Method: "GET", Path: "/api/v1/admin/users",
		Timestamp: time.Now().UTC(), StatusCode: 403,
	})
	if err != nil {
		t.Fatal(err)
	}
	e, err := svc.GetEntry(context.Background(), "LOG008")
	if err != nil {
		t.Fatal(err)
	}
	if e.Status != "failed" || e.Severity != "critical" {
		t.Errorf("expected failed/critical for 403, got %s/%s", e.Status, e.Severity)
	}
	if e.User.Name != "Anonymous" {
		t.Errorf("expected anonymous actor, got %s", e.User.Name)
	}
}
