package repository

import (
	"time"

	"technician-dispatch/internal/domain"
)

// SeedTechnicians is the sample technician directory.
func SeedTechnicians() []domain.Technician {
	return []domain.Technician{
		{ID: 1, Name: "Ahmad Rahman", Phone: "081234567890", Skill: "Service Pompa", Status: domain.TechnicianActive},
		{ID: 2, Name: "Budi Santoso", Phone: "081234567891", Skill: "Pasang Pompa", Status: domain.TechnicianActive},
		{ID: 3, Name: "Citra Dewi", Phone: "081234567892", Skill: "Perbaikan Listrik", Status: domain.TechnicianActive},
	}
}

// SeedLocations is the sample location list.
func SeedLocations() []domain.Location {
	return []domain.Location{
		{ID: 1, Name: "Mall Taman Anggrek", Address: "Jl. S. Parman, Jakarta Barat", Type: "Mall"},
		{ID: 2, Name: "Hotel Grand Hyatt", Address: "Jl. MH Thamrin, Jakarta Pusat", Type: "Hotel"},
		{ID: 3, Name: "Office Tower Kuningan", Address: "Jl. HR Rasuna Said, Jakarta Selatan", Type: "Office"},
	}
}

// SeedAssignments is the sample schedule the dashboard boots with.
func SeedAssignments() []domain.Assignment {
	return []domain.Assignment{
		{
			ID:            1,
			TechnicianIDs: []int64{1, 2},
			LocationID:    1,
			Title:         "Pasang Pompa",
			Description:   "Pasang pompa air baru",
			Date:          domain.NewDate(2025, time.June, 30),
			Status:        domain.StatusScheduled,
			Priority:      domain.PriorityMedium,
			Notes:         "Pompa air merk Grundfos",
		},
		{
			ID:            2,
			TechnicianIDs: []int64{1},
			LocationID:    2,
			Title:         "Service pompa",
			Description:   "Service pompa air",
			Date:          domain.NewDate(2025, time.June, 30),
			Status:        domain.StatusScheduled,
			Priority:      domain.PriorityHigh,
			Notes:         "Pompa sering mati",
		},
	}
}
