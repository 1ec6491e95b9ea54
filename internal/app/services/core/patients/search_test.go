package patients

import (
	"testing"

	"careform-service/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []models.PatientRecord {
	return []models.PatientRecord{
		{
			ID:        "pat-001",
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john.doe@example.com",
			Phone:     "5551234567",
			MedicalInfo: models.MedicalInfo{
				Status:     models.PatientStatusActive,
				Conditions: []string{"Hypertension"},
				LastVisit:  "2024-06-01",
			},
		},
		{
			ID:        "pat-002",
			FirstName: "jane",
			LastName:  "Smith",
			Email:     "jane.smith@example.com",
			Phone:     "5559876543",
			MedicalInfo: models.MedicalInfo{
				Status:     models.PatientStatusInactive,
				Conditions: []string{"Diabetes", "Asthma"},
				LastVisit:  "2023-11-15",
			},
		},
		{
			ID:        "pat-003",
			FirstName: "Alice",
			LastName:  "Johnson",
			Email:     "alice@example.com",
			Phone:     "5550001111",
			MedicalInfo: models.MedicalInfo{
				Status:     models.PatientStatusCritical,
				Conditions: []string{},
				LastVisit:  "2024-08-20",
			},
		},
	}
}

func TestDeriveDisplayRows(t *testing.T) {
	rows := DeriveDisplayRows(sampleRecords())

	t.Run("Order Preserved", func(t *testing.T) {
		require.Len(t, rows, 3)
		assert.Equal(t, "pat-001", rows[0].ID)
		assert.Equal(t, "pat-003", rows[2].ID)
	})

	t.Run("Display Name Trimmed", func(t *testing.T) {
		records := []models.PatientRecord{{FirstName: "John", LastName: ""}}
		derived := DeriveDisplayRows(records)
		assert.Equal(t, "John", derived[0].Name)
	})

	t.Run("Fields Flattened", func(t *testing.T) {
		assert.Equal(t, "John Doe", rows[0].Name)
		assert.Equal(t, models.PatientStatusActive, rows[0].Status)
		assert.Equal(t, "2024-06-01", rows[0].LastVisit)
		assert.Equal(t, []string{"Diabetes", "Asthma"}, rows[1].Conditions)
	})
}

func TestFilterRows(t *testing.T) {
	rows := DeriveDisplayRows(sampleRecords())

	t.Run("Empty Term Returns All", func(t *testing.T) {
		filtered := FilterRows(rows, "")
		assert.Equal(t, rows, filtered)
	})

	t.Run("Case Insensitive First Name", func(t *testing.T) {
		filtered := FilterRows(rows, "JANE")
		require.Len(t, filtered, 1)
		assert.Equal(t, "pat-002", filtered[0].ID)
	})

	t.Run("Case Insensitive Last Name", func(t *testing.T) {
		filtered := FilterRows(rows, "doe")
		require.Len(t, filtered, 1)
		assert.Equal(t, "pat-001", filtered[0].ID)
	})

	t.Run("Email Substring", func(t *testing.T) {
		filtered := FilterRows(rows, "alice@")
		require.Len(t, filtered, 1)
		assert.Equal(t, "pat-003", filtered[0].ID)
	})

	t.Run("Phone Is Literal Match", func(t *testing.T) {
		filtered := FilterRows(rows, "555987")
		require.Len(t, filtered, 1)
		assert.Equal(t, "pat-002", filtered[0].ID)
	})

	t.Run("Status Match", func(t *testing.T) {
		filtered := FilterRows(rows, "critical")
		require.Len(t, filtered, 1)
		assert.Equal(t, "pat-003", filtered[0].ID)
	})

	t.Run("Condition Match", func(t *testing.T) {
		filtered := FilterRows(rows, "asthma")
		require.Len(t, filtered, 1)
		assert.Equal(t, "pat-002", filtered[0].ID)
	})

	t.Run("No Match", func(t *testing.T) {
		filtered := FilterRows(rows, "zzz")
		assert.Empty(t, filtered)
	})
}

func TestSearchIndex(t *testing.T) {
	t.Run("Memoizes Same Version And Term", func(t *testing.T) {
		index := NewSearchIndex()
		records := sampleRecords()

		first := index.Rows(1, records, "john")
		second := index.Rows(1, records, "john")

		require.Len(t, first, 2, "john matches John Doe and Alice Johnson")
		assert.Same(t, &first[0], &second[0], "an unchanged query must reuse the cached projection")
	})

	t.Run("Recomputes On New Version", func(t *testing.T) {
		index := NewSearchIndex()
		records := sampleRecords()

		index.Rows(1, records, "")
		updated := append(records, models.PatientRecord{ID: "pat-004", FirstName: "Bob"})
		rows := index.Rows(2, updated, "")

		assert.Len(t, rows, 4)
	})

	t.Run("Recomputes On New Term", func(t *testing.T) {
		index := NewSearchIndex()
		records := sampleRecords()

		all := index.Rows(1, records, "")
		filtered := index.Rows(1, records, "jane")

		assert.Len(t, all, 3)
		assert.Len(t, filtered, 1)
	})
}
