//go:generate mockgen -source=contracts.go -destination=workflow_mocks_test.go -package=workflow_test

package workflow

import (
	"context"

	"technician-dispatch/internal/domain"
)

type assignmentStore interface {
	Get(id int64) (domain.Assignment, error)
	Create(in domain.NewAssignment) domain.Assignment
	Update(id int64, patch domain.AssignmentPatch) (domain.Assignment, error)
	SetStatus(id int64, status domain.AssignmentStatus) (domain.Assignment, error)
	Remove(id int64)
}

type locationLookup interface {
	Exists(id int64) bool
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Notifier shows transient notices (toasts) to the user.
type Notifier interface {
	Notify(n Notice)
}
