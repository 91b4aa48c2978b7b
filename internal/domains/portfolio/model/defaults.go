package model

// Default returns the built-in portfolio document served when nothing has
// been persisted yet. Content mirrors the deployed site's seed data.
func Default() *PortfolioData {
	return &PortfolioData{
		Personal: PersonalInfo{
			Name:      "Satish Kumar",
			Title:     "IT Analyst / Product Manager / Product Owner",
			Tagline:   "SaaS | Machine Learning | Procurement | Cross-Functional Leadership | Driving $10M+ Digital Transformation Initiatives",
			Location:  "Dallas–Fort Worth, TX (Remote/Hybrid, open to 25% travel)",
			Email:     "contactasatish@gmail.com",
			Phone:     "347-341-7341",
			LinkedIn:  "linkedin.com/in/asatishkr",
			HeroImage: "https://images.unsplash.com/photo-1649406458887-2b6561c36a4d?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		About: AboutInfo{
			Title:           "About Me",
			Description:     "Dynamic IT Analyst and Product Manager with 15+ years of experience leading digital transformation initiatives across SaaS, travel, telecom, and waste management sectors. Proven track record of driving $10M+ technology programs, implementing enterprise CRM and Big Data platforms, and spearheading cross-functional teams that deliver measurable business outcomes. Adept at bridging business needs and technical solutions, ensuring compliance, efficiency, and innovation.",
			BackgroundImage: "https://images.unsplash.com/photo-1644325349124-d1756b79dd42?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		Skills: []SkillCategory{
			{
				Category: "Product Management",
				Items:    []string{"Roadmaps", "Agile/Scrum", "Product Lifecycle", "Requirements Gathering"},
			},
			{
				Category: "Technical Expertise",
				Items:    []string{"Salesforce", "GCP", "Snowflake", "Hadoop/Hive", "Python", "SQL", "Tableau"},
			},
			{
				Category: "Business Impact",
				Items:    []string{"Digital Transformation", "Procurement Optimization", "Data Migration", "Compliance (RCRA, EPA, HIPAA)"},
			},
			{
				Category: "Leadership & Collaboration",
				Items:    []string{"Stakeholder Management", "Cross-Functional Leadership", "Change Management", "Training & Adoption"},
			},
		},
		Experience: []Experience{
			{
				Title:    "IT Technical Analyst",
				Company:  "Clean Earth",
				Type:     "Contract",
				Period:   "Jun 2023 – Present",
				Location: "Remote, Philadelphia, PA",
				Achievements: []string{
					"Designed profile management system for 500+ waste facilities ensuring 100% RCRA & EPA compliance",
					"Led 12-person cross-functional team delivering CRM modernization, reducing inefficiencies by 30%",
					"Directed UAT achieving 98% user satisfaction rate",
					"Trained 200+ stakeholders for smooth system adoption",
				},
			},
			{
				Title:    "Principal Technical Business Analyst",
				Company:  "Sabre Corporation",
				Type:     "Full-time",
				Period:   "Jun 2016 – May 2023",
				Location: "Southlake, TX",
				Achievements: []string{
					"Architected Salesforce solutions for global airline requirements across 15+ GDS integrations",
					"Managed $2M+ Agile projects, delivering 95% on time and under budget",
					"Optimized workflows via GCP services, cutting processing time by 40%",
					"Partnered with 50+ airline and hospitality stakeholders to define technical roadmaps",
				},
			},
			{
				Title:    "Principal Technical Product Manager",
				Company:  "Verizon",
				Type:     "Contract",
				Period:   "May 2014 – May 2016",
				Location: "Irving, TX",
				Achievements: []string{
					"Spearheaded Big Data migration for 10TB+ daily volumes",
					"Developed predictive analytics models improving insights by 35%",
					"Introduced Agile frameworks across 8 dev teams, boosting velocity by 25%",
					"Built Tableau dashboards enabling data-driven C-level decisions",
				},
			},
		},
		Projects: []Project{
			{
				ID:           1,
				Title:        "GenAI OCR Model Implementation",
				Description:  "Automated invoice and document processing system using advanced OCR and machine learning technologies",
				Impact:       "Saved 260+ man-hours by automating invoice/document processing",
				Technologies: []string{"Machine Learning", "OCR", "Python", "AI/ML Models", "Document Processing"},
				Image:        "https://images.unsplash.com/photo-1684610529682-553625a1ffed?crop=entropy&cs=srgb&fm=jpg&q=85",
				Category:     "AI/ML",
			},
			{
				ID:           2,
				Title:        "SaaS Procurement to Production Transformation",
				Description:  "End-to-end digital transformation of procurement processes with enterprise-scale SaaS implementation",
				Impact:       "Delivered $5M+ efficiency improvements through streamlined procurement workflows",
				Technologies: []string{"SaaS Platforms", "Process Automation", "Digital Transformation", "Workflow Optimization"},
				Image:        "https://images.unsplash.com/photo-1756756736901-a2bf24f2d2de?crop=entropy&cs=srgb&fm=jpg&q=85",
				Category:     "Digital Transformation",
			},
			{
				ID:           3,
				Title:        "Compliance Automation System",
				Description:  "Comprehensive regulatory compliance system ensuring adherence to industry standards and regulations",
				Impact:       "Achieved 99% adherence to regulatory standards with automated compliance monitoring",
				Technologies: []string{"Compliance Management", "Automation", "Regulatory Systems", "Quality Assurance"},
				Image:        "https://images.unsplash.com/photo-1728995025396-b5141e209455?crop=entropy&cs=srgb&fm=jpg&q=85",
				Category:     "Compliance",
			},
		},
	}
}
