package claims

import (
	"context"
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

func TestSearchClaimsEmptyCriteria(t *testing.T) {
	svc, _ := newTestService()
	all, err := svc.SearchClaims(context.Background(), browse.Criteria{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 claims, got %d", len(all))
	}
}

func TestSearchClaimsByDiagnosisCode(t *testing.T) {
	svc, _ := newTestService()
	matched, err := svc.SearchClaims(context.Background(), browse.Criteria{Query: "e11.9"})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0].ID != "CLM-002" {
		t.Fatalf("expected CLM-002, got %+v", matched)
	}
}

func TestSearchClaimsStatusFacet(t *testing.T) {
	svc, _ := newTestService()
	matched, err := svc.SearchClaims(context.Background(), browse.Criteria{
		Facets: map[string]string{"status": "flagged"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0].ID != "CLM-003" {
		t.Fatalf("expected CLM-003, got %+v", matched)
	}
}

// Approving a flagged claim acknowledges the gesture without changing the
// stored record: a fresh read still sees it flagged.
func TestApproveLeavesStoreUntouched(t *testing.T) {
	svc, feed := newTestService()
	out, err := svc.Review(context.Background(), "CLM-003", "approve", ReviewInput{})
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != dispatch.OutcomeSuccess {
		t.Fatalf("expected success, got %s", out.Kind)
	}
	if out.Message != "Claim CLM-003 approved successfully" {
		t.Errorf("unexpected message: %s", out.Message)
	}
	if feed.Len() != 1 {
		t.Errorf("expected 1 toast, got %d", feed.Len())
	}

	claim, err := svc.GetClaim(context.Background(), "CLM-003")
	if err != nil {
		t.Fatal(err)
	}
	if claim.Status != "flagged" {
		t.Errorf("expected CLM-003 still flagged, got %s", claim.Status)
	}
}

func TestReviewUnknownClaim(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Review(context.Background(), "CLM-999", "approve", ReviewInput{}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReviewInFlightGuard(t *testing.T) {
	feed := notify.NewFeed(16)
	d := dispatch.New(50*time.Millisecond, feed, zerolog.Nop())
	svc := NewService(NewMemRepo(), d)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Review(context.Background(), "CLM-001", "approve", ReviewInput{})
		done <- err
	}()

	// Wait for the first review to be in flight, then repeat it.
	deadline := time.After(time.Second)
	for !d.InFlight("claims/approve/CLM-001") {
		select {
		case <-deadline:
			t.Fatal("first review never entered flight")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if _, err := svc.Review(context.Background(), "CLM-001", "approve", ReviewInput{}); err != dispatch.ErrInFlight {
		t.Fatalf("expected ErrInFlight, got %v", err)
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}

func TestCreateRuleValidation(t *testing.T) {
	svc, feed := newTestService()
	cases := []CreateRuleInput{
		{},
		{DiagnosisCode: "I10"},
		{DiagnosisCode: "I10", DiagnosisName: "Hypertension"},
		{DiagnosisName: "Hypertension", InsuranceProvider: "Star Health"},
	}
	for _, in := range cases {
		if _, err := svc.CreateRule(context.Background(), in); err == nil {
			t.Errorf("expected validation error for %+v", in)
		}
	}
	if feed.Len() != 0 {
		t.Errorf("invalid submissions must not dispatch, got %d toasts", feed.Len())
	}

	out, err := svc.CreateRule(context.Background(), CreateRuleInput{
		DiagnosisCode: "J00", DiagnosisName: "Acute nasopharyngitis", InsuranceProvider: "ICICI Lombard",
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Message != "Coverage rule added successfully" {
		t.Errorf("unexpected message: %s", out.Message)
	}
}

// Analytics always reduce over the full store, regardless of any filter a
// client is holding.
func TestAnalyticsOverFullStore(t *testing.T) {
	svc, _ := newTestService()
	a, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if a.TotalClaims != 4 {
		t.Errorf("totalClaims: expected 4, got %d", a.TotalClaims)
	}
	if a.Approved != 1 || a.Rejected != 1 || a.Pending != 1 || a.Flagged != 1 {
		t.Errorf("unexpected status counts: %+v", a)
	}
	if a.ApprovalRate != 25 {
		t.Errorf("approvalRate: expected 25, got %d", a.ApprovalRate)
	}
	if a.TotalClaimAmount != 57000 {
		t.Errorf("totalClaimAmount: expected 57000, got %.0f", a.TotalClaimAmount)
	}
}

func TestListRules(t *testing.T) {
	svc, _ := newTestService()
	rules, err := svc.ListRules(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	if rules[0].ID != "RULE-001" {
		t.Errorf("expected RULE-001 first, got %s", rules[0].ID)
	}
}

func TestExportCSVFiltered(t *testing.T) {
	svc, _ := newTestService()
	data, filename, err := svc.ExportCSV(context.Background(), browse.Criteria{
		Facets: map[string]string{"status": "rejected"},
	})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 { // header + CLM-004
		t.Fatalf("expected 2 csv lines, got %d", len(lines))
	}
	// CLM-004's diagnosis contains a comma and must survive quoted.
	if !strings.Contains(string(data), `"Asthma, unspecified"`) {
		t.Error("expected quoted diagnosis value")
	}
	if !strings.HasPrefix(filename, "claims-") {
		t.Errorf("unexpected filename %s", filename)
	}
}
