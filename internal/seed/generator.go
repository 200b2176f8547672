// Package seed generates and persists the demo dataset.
package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"talentflow-backend/internal/domain"

	"gorm.io/datatypes"
)

const (
	CandidateCount  = 1000
	AssessmentCount = 5
	techJobCount    = 15
	day             = 24 * time.Hour
)

// DemoUser is a login account created with plaintext credentials.
type DemoUser struct {
	Email    string
	Password string
	Role     string
	Name     string
}

var DemoUsers = []DemoUser{
	{Email: "admin@talentflow.com", Password: "admin123", Role: domain.RoleAdmin, Name: "Admin User"},
	{Email: "hr@talentflow.com", Password: "hr123", Role: domain.RoleHR, Name: "HR Manager"},
	{Email: "demo@talentflow.com", Password: "demo123", Role: domain.RoleHR, Name: "Demo User"},
}

var JobTitles = []string{
	"Senior React Developer", "Backend Node.js Engineer", "DevOps Specialist", "UI/UX Designer",
	"Product Manager", "Data Scientist", "Mobile Developer", "QA Automation Engineer",
	"Fullstack JavaScript Developer", "Machine Learning Engineer", "Technical Writer",
	"Cybersecurity Engineer", "Business Analyst", "Scrum Master", "Cloud Solutions Architect",
	"Frontend Vue.js Developer", "Python Backend Developer", "Java Spring Developer",
	"Sales Development Representative", "Digital Marketing Manager", "Customer Success Manager",
	"Operations Coordinator", "Finance Business Analyst", "HR Business Partner", "Content Marketing Specialist",
}

var (
	techTags    = []string{"React", "Node.js", "Python", "Java", "AWS", "Docker", "Kubernetes", "TypeScript", "Vue.js", "MongoDB"}
	nonTechTags = []string{"Communication", "Leadership", "Project Management", "Analytics", "Strategy", "Sales"}

	firstNames = []string{
		"Aarav", "Vivaan", "Reyansh", "Muhammad", "Sai", "Vihaan", "Aadhya", "Ananya", "Diya", "Ira",
		"John", "Emma", "Liam", "Olivia", "William", "Ava", "James", "Isabella", "Oliver", "Sophia",
		"Raj", "Priya", "Arjun", "Kavya", "Rohan", "Shreya", "Kiran", "Meera", "Dev", "Riya",
	}
	lastNames = []string{
		"Patel", "Sharma", "Gupta", "Singh", "Kumar", "Shah", "Mehta", "Joshi", "Agarwal", "Verma",
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Reddy", "Rao", "Nair", "Iyer", "Menon", "Pillai", "Das", "Ghosh", "Banerjee", "Chakraborty",
	}
)

// StageNotes holds the timeline note written for each stage, indexed like domain.Stages.
var StageNotes = []string{
	"Application submitted via careers page",
	"Initial screening completed",
	"Technical interview scheduled",
	"Final round completed",
	"Offer extended and accepted",
	"Application reviewed and closed",
}

// CandidateSeed is a candidate whose job is referenced by position in Dataset.Jobs.
type CandidateSeed struct {
	Candidate domain.Candidate
	JobIndex  int
}

type Dataset struct {
	Users       []DemoUser
	Jobs        []domain.Job
	Candidates  []CandidateSeed
	Assessments []domain.Assessment // Assessments[i] belongs to Jobs[i]
}

// Generate builds the demo dataset. The result depends only on r and now.
func Generate(r *rand.Rand, now time.Time) *Dataset {
	ds := &Dataset{Users: append([]DemoUser(nil), DemoUsers...)}

	ds.Jobs = make([]domain.Job, len(JobTitles))
	for i, title := range JobTitles {
		status := domain.JobStatusArchived
		if r.Float64() > 0.25 {
			status = domain.JobStatusActive
		}

		var tags []string
		if i < techJobCount {
			tags = append(tags, techTags[:r.IntN(4)+2]...)
		} else {
			tags = append(tags, nonTechTags[:r.IntN(3)+1]...)
		}

		ds.Jobs[i] = domain.Job{
			Title:       title,
			Slug:        domain.Slugify(title),
			Description: fmt.Sprintf("Exciting opportunity for a %s to join our innovative team and work on cutting-edge projects.", title),
			Status:      status,
			Tags:        datatypes.JSONSlice[string](tags),
			Order:       i,
			CreatedAt:   now.Add(-randomDuration(r, 90*day)),
		}
	}

	ds.Candidates = make([]CandidateSeed, CandidateCount)
	for i := range ds.Candidates {
		first := firstNames[r.IntN(len(firstNames))]
		last := lastNames[r.IntN(len(lastNames))]
		jobIndex := r.IntN(len(ds.Jobs))
		stage := domain.Stages[r.IntN(len(domain.Stages))]
		createdAt := now.Add(-randomDuration(r, 60*day))

		ds.Candidates[i] = CandidateSeed{
			JobIndex: jobIndex,
			Candidate: domain.Candidate{
				Name:       first + " " + last,
				Email:      fmt.Sprintf("%s.%s%d@email.com", strings.ToLower(first), strings.ToLower(last), i+1),
				Stage:      stage,
				CreatedAt:  createdAt,
				UpdatedAt:  createdAt,
				Phone:      fmt.Sprintf("+91%d", r.Int64N(9000000000)+1000000000),
				Experience: r.IntN(10) + 1,
			},
		}
	}

	for i := 0; i < AssessmentCount && i < len(ds.Jobs); i++ {
		ds.Assessments = append(ds.Assessments, SampleAssessment(ds.Jobs[i].Title, now))
	}

	return ds
}

func randomDuration(r *rand.Rand, span time.Duration) time.Duration {
	return time.Duration(r.Float64() * float64(span))
}

// BuildTimeline returns one entry per stage up to and including the
// candidate's current stage, a day apart starting at createdAt.
func BuildTimeline(c domain.Candidate) []domain.CandidateTimeline {
	current := domain.StageIndex(c.Stage)
	entries := make([]domain.CandidateTimeline, 0, current+1)
	for i := 0; i <= current; i++ {
		entries = append(entries, domain.CandidateTimeline{
			CandidateID: c.ID,
			Stage:       domain.Stages[i],
			Timestamp:   c.CreatedAt.Add(time.Duration(i) * day),
			Notes:       StageNotes[i],
		})
	}
	return entries
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// SampleAssessment is the technical questionnaire attached to the first jobs.
func SampleAssessment(jobTitle string, now time.Time) domain.Assessment {
	return domain.Assessment{
		Title:    "Technical Assessment - " + jobTitle,
		IsActive: true,
		Sections: datatypes.JSONSlice[domain.Section]{
			{
				ID:    "technical",
				Title: "Technical Knowledge",
				Questions: []domain.Question{
					{
						ID:       "tech_1",
						Type:     domain.QuestionSingleChoice,
						Question: "What is the virtual DOM in React?",
						Required: true,
						Options: []string{
							"A lightweight copy of the real DOM",
							"A database for storing component state",
							"A CSS framework for styling",
							"A testing library for React",
						},
					},
					{
						ID:       "tech_2",
						Type:     domain.QuestionMultiChoice,
						Question: "Which of the following are JavaScript ES6 features?",
						Required: true,
						Options:  []string{"Arrow functions", "Template literals", "Destructuring", "Classes"},
					},
					{
						ID:         "tech_3",
						Type:       domain.QuestionLongText,
						Question:   "Explain the concept of closures in JavaScript with an example.",
						Required:   true,
						Validation: &domain.QuestionValidation{MaxLength: intPtr(1000)},
					},
				},
			},
			{
				ID:    "experience",
				Title: "Professional Experience",
				Questions: []domain.Question{
					{
						ID:         "exp_1",
						Type:       domain.QuestionNumeric,
						Question:   "How many years of professional experience do you have?",
						Required:   true,
						Validation: &domain.QuestionValidation{Min: floatPtr(0), Max: floatPtr(20)},
					},
					{
						ID:         "exp_2",
						Type:       domain.QuestionShortText,
						Question:   "What is your current role/designation?",
						Required:   true,
						Validation: &domain.QuestionValidation{MaxLength: intPtr(100)},
					},
				},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
