package catalog

import (
	"github.com/abhisek/compass/internal/assessment"
	"github.com/abhisek/compass/internal/scoring"
)

// Default returns the bundled "Should I Learn Data Science?" assessment.
// Defaults are already applied; the definition validates as-is.
//
// The non-technical WISCAR axes are declared blends of the two primary
// sections rather than measurements of their own, so the profile is
// fully determined by the answers.
func Default() *Definition {
	qn := &assessment.Questionnaire{
		ID:          "data-science",
		Title:       "Should I Learn Data Science?",
		Subtitle:    "Discover If You're Ready to Explore the World of Data-Driven Decision Making",
		Description: "Take our comprehensive assessment to evaluate your psychological fit, technical readiness, and career alignment for a future in Data Science.",
		Duration:    "25-30 minutes",
		WhatIs:      "Data science combines programming, statistics, machine learning, and business acumen to derive actionable insights from data.",
		TypicalCareers: []string{
			"Data Scientist",
			"Data Analyst",
			"ML Engineer",
			"Business Intelligence Analyst",
			"Quantitative Analyst",
			"AI Research Assistant",
		},
		WhoShouldConsider: []string{
			"Curious problem-solvers",
			"Detail-oriented and logical thinkers",
			"Mathematically inclined learners",
			"People who enjoy finding stories in data",
			"Individuals comfortable with both code and ambiguity",
		},
		Sections: []assessment.Section{
			{
				ID:          "psychological-fit",
				Title:       "Psychological Fit",
				Description: "Evaluate your personality traits and working style compatibility with data science roles",
				ScoreWeight: 25,
				Questions: []assessment.Question{
					scale("interest-1", "interest", "I enjoy solving puzzles, analyzing numbers, and discovering trends."),
					scale("interest-2", "interest", "I find it exciting to explore datasets and look for patterns."),
					scale("personality-1", "persistence", "I can work on complex problems for hours without getting frustrated."),
					scale("personality-2", "structure", "I prefer structured approaches to problem-solving."),
					scale("cognitive-1", "cognitive-style", "I enjoy both exploratory analysis and detailed documentation."),
					choice("motivation-1", "motivation", "What primarily motivates you to learn data science?",
						"Career advancement and salary potential",
						"Genuine curiosity about data and insights",
						"Prestige and recognition in tech",
						"Making impactful business decisions",
						"Solving real-world problems with data"),
				},
			},
			{
				ID:          "technical-aptitude",
				Title:       "Technical Aptitude",
				Description: "Assess your current technical knowledge and learning readiness",
				ScoreWeight: 35,
				Questions: []assessment.Question{
					choice("logic-1", "logical-reasoning", "If A > B and B > C, then:",
						"A > C", "A = C", "A < C", "Cannot determine"),
					choice("data-interpretation-1", "statistics", "In a dataset with mean=50 and standard deviation=10, what percentage of data falls within one standard deviation?",
						"50%", "68%", "95%", "99%"),
					choice("programming-1", "programming", "What does this Python code do: for i in range(len(data)): print(data[i])",
						"Prints each element in the data list",
						"Prints the length of data",
						"Creates a new list",
						"Sorts the data"),
					choice("math-1", "probability", "What is the probability of getting heads twice when flipping a fair coin twice?",
						"0.25", "0.5", "0.75", "1.0"),
					choice("data-science-1", "data-science-concepts", "What is the primary purpose of exploratory data analysis (EDA)?",
						"Clean and prepare data",
						"Build machine learning models",
						"Understand data patterns and relationships",
						"Deploy models to production"),
					scale("tools-1", "adaptability", "How comfortable are you with learning new programming languages and tools?"),
				},
			},
			{
				ID:          "wiscar-analysis",
				Title:       "WISCAR Analysis",
				Description: "Comprehensive evaluation across Will, Interest, Skill, Cognitive readiness, Ability to learn, and Real-world fit",
				ScoreWeight: 40,
				Questions: []assessment.Question{
					scale("will-1", "will", "I persist through challenging problems even when solutions aren't immediately obvious."),
					scale("will-2", "will", "I'm willing to invest 6-12 months learning data science fundamentals."),
					scale("interest-3", "interest", "I actively seek out articles, podcasts, or videos about data and analytics."),
					scale("skill-1", "skill", "I have experience with Excel formulas and data manipulation."),
					scale("skill-2", "skill", "I understand basic statistical concepts like mean, median, and correlation."),
					scale("cognitive-2", "cognitive", "I can think abstractly about relationships between variables."),
					scale("ability-1", "ability", "I learn best through hands-on practice and experimentation."),
					choice("real-world-1", "real-world-fit", "Which work environment appeals to you most?",
						"Collaborative team with regular stakeholder interaction",
						"Independent work with periodic check-ins",
						"Research-focused with academic freedom",
						"Fast-paced with immediate business impact",
						"Structured corporate environment"),
				},
			},
		},
	}

	cfg := scoring.Config{
		Tiers: []scoring.Tier{
			{
				MinScore:       75,
				Recommendation: scoring.RecommendYes,
				Reason:         "Strong motivation and cognitive fit. You show excellent potential for data science with good foundation skills.",
				NextSteps: []string{
					"Start Python basics course",
					"Take a beginner statistics module",
					"Explore a public dataset with Jupyter Notebook",
					"Join data science communities and forums",
				},
			},
			{
				MinScore:       50,
				Recommendation: scoring.RecommendMaybe,
				Reason:         "Good potential with some skill gaps. Consider strengthening foundations before diving deep into data science.",
				NextSteps: []string{
					"Try short-form MOOCs (Coursera, DataCamp)",
					"Learn Python for Excel users or SQL basics",
					"Run a \"data diary\" for 1 week",
					"Take online statistics refresher course",
				},
			},
			{
				MinScore:       0,
				Recommendation: scoring.RecommendNo,
				Reason:         "Current skills and interests may be better suited for alternative data-related paths.",
				NextSteps: []string{
					"Consider Data Analytics with Excel/BI tools",
					"Explore UX Research with data focus",
					"Look into Product Analyst roles (low code)",
					"Build foundational math and logic skills",
				},
			},
		},
		Axes: []scoring.Axis{
			{Key: "W", Label: "Will", Blend: map[string]float64{"psychological-fit": 0.7, "wiscar-analysis": 0.3}},
			{Key: "I", Label: "Interest", Blend: map[string]float64{"psychological-fit": 0.8, "wiscar-analysis": 0.2}},
			{Key: "S", Label: "Skill", Blend: map[string]float64{"technical-aptitude": 1}},
			{Key: "C", Label: "Cognitive Readiness", Blend: map[string]float64{"technical-aptitude": 0.6, "psychological-fit": 0.4}},
			{Key: "A", Label: "Ability to Learn", Blend: map[string]float64{"psychological-fit": 0.5, "wiscar-analysis": 0.5}},
			{Key: "R", Label: "Real-World Fit", Blend: map[string]float64{"technical-aptitude": 0.5, "wiscar-analysis": 0.5}},
		},
		Aggregate: map[string]float64{
			"psychological-fit":  1,
			"technical-aptitude": 1,
		},
		Careers: []scoring.Career{
			{
				Role:        "Data Analyst",
				Description: "Clean and analyze data to generate business insights",
				SkillLevel:  "Intermediate",
				Floor:       60,
				Offset:      10,
			},
			{
				Role:        "Business Intelligence Analyst",
				Description: "Build dashboards and KPIs for decision making",
				SkillLevel:  "Beginner-Mid",
				Floor:       65,
				Offset:      5,
			},
			{
				Role:        "Data Scientist",
				Description: "Model data and generate predictive insights",
				SkillLevel:  "Advanced",
				Floor:       40,
				Offset:      20,
			},
		},
	}

	return &Definition{Questionnaire: qn, Scoring: cfg}
}

// scale builds a default 1-5 scale question.
func scale(id, category, prompt string) assessment.Question {
	return assessment.Question{
		ID:       id,
		Type:     assessment.TypeScale,
		Prompt:   prompt,
		Category: category,
		Min:      assessment.DefaultScaleMin,
		Max:      assessment.DefaultScaleMax,
		Weight:   assessment.DefaultWeight,
	}
}

// choice builds a multiple-choice question.
func choice(id, category, prompt string, options ...string) assessment.Question {
	return assessment.Question{
		ID:       id,
		Type:     assessment.TypeMultipleChoice,
		Prompt:   prompt,
		Category: category,
		Options:  options,
		Weight:   assessment.DefaultWeight,
	}
}
