package usecase

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/submitme/internal/model"
)

// BuildCVContext renders the record as the plain-text narrative handed to the
// model. Sections without data are left out.
func BuildCVContext(record model.CandidateRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Candidate Name: %s\n\n", record.Name)

	if country := model.Deref(record.Country); country != "" {
		fmt.Fprintf(&b, "Location/Country: %s\n\n", country)
	}

	if record.Summary != "" {
		fmt.Fprintf(&b, "Professional Summary:\n%s\n\n", record.Summary)
	}

	if len(record.Experience) > 0 {
		b.WriteString("Work Experience:\n")
		for _, exp := range record.Experience {
			fmt.Fprintf(&b, "- %s at %s", exp.Role, exp.Company)
			if duration := model.Deref(exp.Duration); duration != "" {
				fmt.Fprintf(&b, " (%s)", duration)
			}
			b.WriteString("\n")
			for _, achievement := range exp.Achievements {
				fmt.Fprintf(&b, "  • %s\n", achievement)
			}
		}
		b.WriteString("\n")
	}

	if len(record.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n\n", strings.Join(record.Skills, ", "))
	}

	if len(record.Projects) > 0 {
		b.WriteString("Projects:\n")
		for _, project := range record.Projects {
			fmt.Fprintf(&b, "- %s: %s\n", project.Name, project.Description)
			if len(project.Technologies) > 0 {
				fmt.Fprintf(&b, "  Technologies: %s\n", strings.Join(project.Technologies, ", "))
			}
		}
		b.WriteString("\n")
	}

	if len(record.Education) > 0 {
		b.WriteString("Education:\n")
		for _, entry := range record.Education {
			fmt.Fprintf(&b, "- %s\n", entry)
		}
	}

	return b.String()
}
