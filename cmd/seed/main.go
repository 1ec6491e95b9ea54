package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"careform-service/internal/app/config"
	"careform-service/internal/app/drivers/logger"
	"careform-service/internal/app/services/core/schema"
	"careform-service/internal/app/services/upstream/records"
	"careform-service/internal/pkg/exceptions"
	"careform-service/internal/pkg/models"
	"careform-service/internal/pkg/utils"

	"github.com/sirupsen/logrus"
)

// seed pushes randomly generated patient records into the upstream record
// store so a fresh environment has something to list and search.

var firstNames = []string{"John", "Jane", "Alice", "Bob", "Carol", "David", "Eve", "Frank", "Grace", "Hank"}
var lastNames = []string{"Doe", "Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Garcia", "Martinez"}
var streets = []string{"Main St", "Oak Ave", "Pine Rd", "Maple Dr", "Elm St", "Cedar Ln"}
var cities = []string{"Anytown", "Otherville", "Springfield", "Riverside", "Greenville"}
var states = []string{"CA", "NY", "TX", "FL", "IL"}
var conditions = []string{"Hypertension", "Diabetes", "Asthma", "COPD", "Arthritis"}
var allergies = []string{"Peanuts", "Shellfish", "Penicillin", "Latex"}
var providers = []string{"BlueCross", "Aetna", "Cigna", "UnitedHealth", "Kaiser"}
var relationships = []string{"Spouse", "Husband", "Wife", "Parent", "Sibling", "Friend"}

var medications = []models.Medication{
	{Name: "Lisinopril", Dosage: "10mg", Frequency: "daily"},
	{Name: "Metformin", Dosage: "500mg", Frequency: "twice daily"},
	{Name: "Atorvastatin", Dosage: "20mg", Frequency: "daily"},
}

func main() {
	count := flag.Int("count", 50, "number of patient records to generate")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig)

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	recordClient := records.NewRecordClient(internalConfig.Upstream, zapLogger)
	recordSchema := schema.New()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	created := 0
	for i := 0; i < *count; i++ {
		record := randomRecord()
		if fields := recordSchema.Validate(&record); len(fields) > 0 {
			log.Fatalf("Generated record failed validation: %s", exceptions.FormatFieldErrors(fields))
		}

		saved, err := recordClient.Create(ctx, &record)
		if err != nil {
			log.Fatalf("Failed to create patient record after %d successes: %v", created, err)
		}
		created++
		log.WithFields(logrus.Fields{
			"patientID": saved.ID,
			"name":      strings.TrimSpace(saved.FirstName + " " + saved.LastName),
		}).Info("Created patient record")
	}

	log.Infof("Seeding finished, %d records created", created)
}

func randomRecord() models.PatientRecord {
	firstName := randomChoice(firstNames)
	lastName := randomChoice(lastNames)

	record := models.PatientRecord{
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: randomDate(1940, 2010),
		Email:       fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(firstName), strings.ToLower(lastName), rand.Intn(10000)),
		Phone:       randomPhone(),
		Address: models.Address{
			Street:  fmt.Sprintf("%d %s", rand.Intn(1000), randomChoice(streets)),
			City:    randomChoice(cities),
			State:   randomChoice(states),
			ZipCode: fmt.Sprintf("%05d", rand.Intn(90000)+10000),
			Country: "USA",
		},
		EmergencyContact: models.EmergencyContact{
			Name:         randomChoice(firstNames) + " " + randomChoice(lastNames),
			Relationship: randomChoice(relationships),
			Phone:        randomPhone(),
		},
		MedicalInfo: models.MedicalInfo{
			Allergies:          maybeOne(allergies, 0.3),
			CurrentMedications: []models.Medication{},
			Conditions:         maybeOne(conditions, 0.5),
			BloodType:          randomChoice(models.BloodTypes),
			LastVisit:          randomDate(2022, 2025),
			Status:             randomChoice([]string{models.PatientStatusActive, models.PatientStatusInactive}),
		},
		Insurance: models.InsuranceInfo{
			Provider:      randomChoice(providers),
			PolicyNumber:  strings.ToUpper(utils.GenerateLocalID()[:8]),
			EffectiveDate: randomDate(2015, 2023),
			Copay:         float64(rand.Intn(2)) * 20,
			Deductible:    float64(rand.Intn(2)) * 500,
		},
		Documents: []models.Document{},
	}

	if rand.Float64() > 0.5 {
		med := medications[rand.Intn(len(medications))]
		med.StartDate = randomDate(2023, 2025)
		med.IsActive = true
		record.MedicalInfo.CurrentMedications = []models.Medication{med}
	}

	return record
}

func randomChoice(values []string) string {
	return values[rand.Intn(len(values))]
}

func maybeOne(values []string, chance float64) []string {
	if rand.Float64() < chance {
		return []string{randomChoice(values)}
	}
	return []string{}
}

func randomDate(fromYear, toYear int) string {
	start := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(toYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !end.After(start) {
		return start.Format("2006-01-02")
	}
	offset := time.Duration(rand.Int63n(int64(end.Sub(start))))
	return start.Add(offset).Format("2006-01-02")
}

func randomPhone() string {
	return fmt.Sprintf("%010d", rand.Int63n(9000000000)+1000000000)
}
