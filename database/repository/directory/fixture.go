package directoryRepo

import "smartmeet/models"

// CompanyDirectoryFixture returns the seeded demo directory. It deliberately
// contains colliding first names (two John*, two Sarah*, two *Johnson,
// two *Wilson, two *Davis) so that disambiguation paths are reachable in
// demo mode and tests.
func CompanyDirectoryFixture() []models.Participant {
	return []models.Participant{
		{Email: "john.smith@company.com", Name: "John Smith", Department: "Engineering", Title: "Software Engineer", AvailabilityStatus: models.StatusAvailable},
		{Email: "sarah.johnson@company.com", Name: "Sarah Johnson", Department: "Marketing", Title: "Marketing Manager", AvailabilityStatus: models.StatusAvailable},
		{Email: "mike.davis@company.com", Name: "Mike Davis", Department: "Sales", Title: "Sales Representative", AvailabilityStatus: models.StatusBusy},
		{Email: "emily.brown@company.com", Name: "Emily Brown", Department: "HR", Title: "HR Manager", AvailabilityStatus: models.StatusAvailable},
		{Email: "david.wilson@company.com", Name: "David Wilson", Department: "Engineering", Title: "Senior Developer", AvailabilityStatus: models.StatusUnknown},
		{Email: "lisa.anderson@company.com", Name: "Lisa Anderson", Department: "Finance", Title: "Financial Analyst", AvailabilityStatus: models.StatusAvailable},
		{Email: "james.taylor@company.com", Name: "James Taylor", Department: "Operations", Title: "Operations Manager", AvailabilityStatus: models.StatusBusy},
		{Email: "maria.garcia@company.com", Name: "Maria Garcia", Department: "Design", Title: "UX Designer", AvailabilityStatus: models.StatusAvailable},
		{Email: "robert.martinez@company.com", Name: "Robert Martinez", Department: "Engineering", Title: "Tech Lead", AvailabilityStatus: models.StatusAvailable},
		{Email: "jennifer.lee@company.com", Name: "Jennifer Lee", Department: "Marketing", Title: "Content Manager", AvailabilityStatus: models.StatusUnknown},
		{Email: "michael.johnson@company.com", Name: "Michael Johnson", Department: "Sales", Title: "Account Executive", AvailabilityStatus: models.StatusAvailable},
		{Email: "sarah.davis@company.com", Name: "Sarah Davis", Department: "Engineering", Title: "QA Engineer", AvailabilityStatus: models.StatusAvailable},
		{Email: "john.brown@company.com", Name: "John Brown", Department: "Finance", Title: "Controller", AvailabilityStatus: models.StatusBusy},
		{Email: "amy.wilson@company.com", Name: "Amy Wilson", Department: "HR", Title: "Recruiter", AvailabilityStatus: models.StatusAvailable},
		{Email: "chris.miller@company.com", Name: "Chris Miller", Department: "Operations", Title: "Project Manager", AvailabilityStatus: models.StatusAvailable},
	}
}
