package service

import (
	"time"

	"github.com/vahanscan/vahanscan/assess"
	"github.com/vahanscan/vahanscan/database/model"
	"github.com/vahanscan/vahanscan/logger"
	"github.com/vahanscan/vahanscan/storage"
)

// AssessmentService runs the simulated detection and owns the per-user
// assessment history. Owner ids always come from the resolved session, never
// from the request body.
type AssessmentService struct {
	store     storage.HistoryStore
	generator *assess.Generator
}

func NewAssessmentService(store storage.HistoryStore, generator *assess.Generator) *AssessmentService {
	return &AssessmentService{store: store, generator: generator}
}

// Detect draws a simulated assessment for the uploaded image and appends it
// to the owner's history.
func (s *AssessmentService) Detect(ownerId int, fileName string) (*model.Assessment, error) {
	result := s.generator.Generate()

	record := &model.Assessment{
		UserId:            ownerId,
		DamagedPart:       result.Category.Name,
		Severity:          string(result.Severity),
		EstimatedCost:     result.FormattedCost,
		DamageDescription: result.Category.Description,
		DamageLocation:    result.Category.Location,
		FileName:          fileName,
		Timestamp:         time.Now(),
	}
	if err := s.store.AppendAssessment(record); err != nil {
		return nil, err
	}

	logger.Debugf("assessment %d for user %d: %s / %s / %s",
		record.Id, ownerId, record.DamagedPart, record.Severity, record.EstimatedCost)
	return record, nil
}

// History returns a snapshot of the owner's records, newest first.
func (s *AssessmentService) History(ownerId int) ([]*model.Assessment, error) {
	return s.store.ListByOwner(ownerId)
}

// Delete removes one of the owner's records. A record belonging to another
// user is indistinguishable from a nonexistent one.
func (s *AssessmentService) Delete(ownerId int, recordId int) error {
	return s.store.DeleteByOwner(ownerId, recordId)
}
