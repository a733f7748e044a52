package handlers

import (
	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/workflow"
)

//go:generate mockgen -source=contracts.go -destination=handlers_mocks_test.go -package=handlers

type assignmentService interface {
	List() []domain.Assignment
	Get(id int64) (domain.Assignment, error)
	SetStatus(id int64, status domain.AssignmentStatus) (domain.Assignment, error)
}

type technicianLister interface {
	List() []domain.Technician
}

type locationLister interface {
	List() []domain.Location
}

type assignmentLister interface {
	List() []domain.Assignment
}

type sessionRegistry interface {
	Open() *workflow.Session
	Get(id string) (*workflow.Session, error)
	Close(id string)
}
