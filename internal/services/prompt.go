package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/career-mentor/internal/models"
)

// RoadmapPersona is the system message sent with every roadmap request.
const RoadmapPersona = "You are an expert career mentor that creates comprehensive career roadmaps. You must respond only with valid JSON in the exact format requested, no additional text or explanations."

// TrustedResourceDomains are the only sources the model may link to.
var TrustedResourceDomains = []string{
	"Coursera.org, Udemy.com, edX.org for courses",
	"YouTube.com for video tutorials",
	"GitHub.com for code examples",
	"FreeCodeCamp.org for free programming content",
	"Kaggle.com for data science projects",
	"Medium.com for articles",
	"Pluralsight.com for tech training",
	"AWS, Google Cloud, Azure official documentation",
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// SessionKey isolates a generation request to the form it was made for.
func (pb *PromptBuilder) SessionKey(form *models.CareerForm) string {
	return "career_mentor_" + form.ID.String()
}

// BuildRoadmapPrompt creates the roadmap instruction for a student profile
func (pb *PromptBuilder) BuildRoadmapPrompt(form *models.CareerForm) string {
	var domains strings.Builder
	for _, d := range TrustedResourceDomains {
		domains.WriteString("   - ")
		domains.WriteString(d)
		domains.WriteString("\n")
	}

	return fmt.Sprintf(`Create a comprehensive, actionable career roadmap for a student with the following profile:
- Degree/Field: %s
- Academic Year: %s
- Current Skills: %s
- Target Career: %s
- Learning Preference: %s

Generate a detailed 12-18 month roadmap with 5-6 phases. Each phase should be 2-3 months long with clear, actionable goals.

IMPORTANT GUIDELINES:
1. Use REAL, working URLs from these trusted sources only:
%s
2. Focus areas should be specific, measurable skills
3. Projects should build progressively in complexity
4. Include both FREE and PAID resources clearly labeled
5. Make learning paths realistic and time-bound

Respond ONLY with valid JSON in this exact structure:
{
  "roadmap": [
    {
      "phase": "Months 1-2: Foundation Building",
      "focus_areas": ["Specific skill with measurable outcome", "Another concrete skill", "Third focused area"],
      "learning_resources": [
        {"title": "Specific Course/Resource Name (FREE or PAID)", "type": "course", "url": "https://coursera.org/learn/example-course"},
        {"title": "YouTube Tutorial Series Name (FREE)", "type": "video", "url": "https://youtube.com/watch?v=example"},
        {"title": "Free Resource Title (FREE)", "type": "article", "url": "https://freecodecamp.org/news/example"}
      ],
      "projects": [
        {
          "title": "Descriptive Project Name",
          "description": "Detailed description with specific technologies, expected outcomes, and key learning objectives. Mention estimated time to complete.",
          "difficulty": "Beginner"
        }
      ]
    }
  ],
  "job_roles": ["Entry Level Position", "Mid-Level Role", "Senior Position"],
  "example_companies": ["Major Tech Company", "Growing Startup", "Enterprise Corporation", "Consulting Firm", "Remote-First Company"],
  "interview_prep": {
    "important_topics": ["Technical Concept 1", "Practical Skill 2", "Industry Knowledge 3", "Soft Skill 4", "Problem Solving 5"],
    "resources": [
      {"title": "Interview Preparation Platform", "url": "https://leetcode.com"},
      {"title": "System Design Resource", "url": "https://github.com/donnemartin/system-design-primer"}
    ]
  }
}

Create 5-6 progressive phases that build upon each other. Ensure all URLs are real and accessible. Focus on %s career path with %s learning approach.`,
		form.Degree,
		form.Year,
		form.Skills,
		form.CareerInterest,
		form.LearningStyle,
		domains.String(),
		form.CareerInterest,
		form.LearningStyle,
	)
}
