package records

import (
	"context"
	"time"

	"github.com/swasthyasetu/portal/pkg/browse"
	"github.com/swasthyasetu/portal/pkg/export"
)

type Service struct {
	repo RecordRepository
}

func NewService(repo RecordRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Vitals(ctx context.Context) (Vitals, error) {
	return s.repo.Vitals(ctx)
}

func (s *Service) Medications(ctx context.Context) ([]Medication, error) {
	return s.repo.Medications(ctx)
}

func (s *Service) SearchHistory(ctx context.Context, criteria browse.Criteria) ([]HistoryEntry, error) {
	return s.repo.SearchHistory(ctx, criteria)
}

func (s *Service) LabResults(ctx context.Context) ([]LabResult, error) {
	return s.repo.LabResults(ctx)
}

// Graph assembles the complete record set for display or export.
func (s *Service) Graph(ctx context.Context) (*RecordGraph, error) {
	vitals, err := s.repo.Vitals(ctx)
	if err != nil {
		return nil, err
	}
	meds, err := s.repo.Medications(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.repo.History(ctx)
	if err != nil {
		return nil, err
	}
	labs, err := s.repo.LabResults(ctx)
	if err != nil {
		return nil, err
	}
	return &RecordGraph{
		Vitals:         vitals,
		Medications:    meds,
		MedicalHistory: history,
		LabResults:     labs,
	}, nil
}

// ExportJSON serializes the full record graph with an export timestamp.
func (s *Service) ExportJSON(ctx context.Context) ([]byte, string, error) {
	graph, err := s.Graph(ctx)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	graph.ExportDate = now.UTC().Format(time.RFC3339)
	data, err := export.JSON(graph)
	if err != nil {
		return nil, "", err
	}
	return data, export.Filename("health-records", "json", now), nil
}
