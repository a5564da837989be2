package services

import "alfredoptarigan/career-mentor/internal/models"

// FallbackRoadmap is the fixed two-phase roadmap served whenever generation
// fails. It does not depend on the submitted form.
func FallbackRoadmap() models.RoadmapPayload {
	return models.RoadmapPayload{
		Roadmap: []models.Phase{
			{
				Phase:      "Months 1-3",
				FocusAreas: []string{"Foundation Building", "Basic Skills", "Environment Setup"},
				LearningResources: []models.LearningResource{
					{Title: "Getting Started Guide", Type: "article", URL: "https://www.freecodecamp.org"},
					{Title: "Basic Programming Course", Type: "course", URL: "https://www.coursera.org"},
				},
				Projects: []models.Project{
					{
						Title:       "Hello World Project",
						Description: "Create your first project to get familiar with development environment",
						Difficulty:  "Beginner",
					},
				},
			},
			{
				Phase:      "Months 4-6",
				FocusAreas: []string{"Intermediate Concepts", "Project Building", "Problem Solving"},
				LearningResources: []models.LearningResource{
					{Title: "Advanced Tutorials", Type: "video", URL: "https://www.youtube.com"},
				},
				Projects: []models.Project{
					{
						Title:       "Portfolio Project",
						Description: "Build a project to showcase your skills",
						Difficulty:  "Intermediate",
					},
				},
			},
		},
		JobRoles:         []string{"Junior Developer", "Entry-level Analyst", "Technical Intern"},
		ExampleCompanies: []string{"Google", "Microsoft", "Amazon"},
		InterviewPrep: models.InterviewPrep{
			ImportantTopics: []string{"Basic Concepts", "Problem Solving", "Communication Skills"},
			Resources: []models.LearningResource{
				{Title: "Interview Preparation Guide", URL: "https://www.leetcode.com"},
			},
		},
	}
}
