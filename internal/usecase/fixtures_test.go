package usecase

import "github.com/fadilmartias/submitme/internal/model"

func fullRecord() model.CandidateRecord {
	return model.CandidateRecord{
		Name:        "Jane Q Doe",
		Email:       model.Ptr("jane@example.com"),
		Phone:       model.Ptr("+44 20 7946 0000"),
		LinkedInURL: model.Ptr("https://linkedin.com/in/janedoe"),
		Website:     model.Ptr("https://jane.dev"),
		Country:     model.Ptr("United Kingdom"),
		Summary:     "Backend engineer focused on distributed systems.",
		Experience: []model.Experience{
			{
				Company:      "Acme",
				Role:         "Senior Engineer",
				Duration:     model.Ptr("2020-2024"),
				Achievements: []string{"Cut p99 latency by 40%", "Led the billing migration"},
			},
			{
				Company:      "Initech",
				Role:         "Engineer",
				Achievements: []string{},
			},
		},
		Skills: []string{"Go", "PostgreSQL"},
		Projects: []model.Project{
			{Name: "ledger", Description: "Double-entry bookkeeping service", Technologies: []string{"Go", "gRPC"}},
			{Name: "notes", Description: "Personal wiki", Technologies: []string{}},
		},
		Education: []string{"BSc Computer Science, UCL"},
	}
}

func minimalRecord(name string) model.CandidateRecord {
	record := model.CandidateRecord{Name: name}
	record.Normalize()
	return record
}
