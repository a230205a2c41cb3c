package cv

// Seed returns the starter document a new session sees before any edits.
// It demonstrates every section, including <strong> emphasis in skill and
// description lines, so the editor renders something useful immediately.
func Seed() Document {
	doc := Document{
		Name:    "ALEX MORGAN",
		Title:   "ML/AI Engineer",
		Summary: "Data and AI engineer with a passion for solving complex problems. Strong foundation in programming and data analysis, eager to apply and expand these skills in innovative environments. Open to relocation and excited about new professional challenges.",
		Contact: Contact{
			Email:    "alex.morgan@example.com",
			Phone:    "+43 660 1234567",
			Location: "Wien, Austria",
			GitHub:   "https://github.com/alexmorgan",
			LinkedIn: "https://www.linkedin.com/in/alex-morgan-ml/",
		},
		Languages: []Language{
			{Name: "Italian", Level: "Native", Icon: "https://flagcdn.com/w20/it.png", Proficiency: 100},
			{Name: "English", Level: "C1", Icon: "https://flagcdn.com/w20/gb.png", Proficiency: 75},
			{Name: "Spanish", Level: "B2", Icon: "https://flagcdn.com/w20/es.png", Proficiency: 55},
			{Name: "German", Level: "A2", Icon: "https://flagcdn.com/w20/de.png", Proficiency: 25},
		},
		Skills: []SkillCategory{
			{
				Name: "Programming & Data",
				Skills: []string{
					"<strong>Python</strong> (Pandas, Scikit-learn, TensorFlow)",
					"ETL Pipelines & Data Modeling",
					"<strong>Oracle Data Integrator</strong>",
					"Database Design",
				},
			},
			{
				Name: "Software Development",
				Skills: []string{
					"REST API Development",
					"Cloud Architecture (<strong>OCI</strong>, <strong>AWS</strong>)",
					"Kubernetes, Git, Agile",
				},
			},
		},
		Certifications: []Certification{
			{
				Name:    "Certified SAFe 6 Agile Software Engineer",
				Link:    "https://www.credly.com/badges/example",
				LogoURL: "https://upload.wikimedia.org/wikipedia/commons/a/ac/No_image_available.svg",
			},
			{
				Name:    "OCI Data Science Professional",
				Link:    "https://catalog-education.oracle.com/ords/certview/sharebadge?id=example",
				LogoURL: "https://logos-world.net/wp-content/uploads/2020/09/Oracle-Symbol.png",
			},
		},
		Education: []Education{
			{
				Degree:     "Master's Degree of Bioengineering for Neuroscience",
				University: "University of Padua, Italy",
				Period:     "2021-2023",
				Thesis:     "Electrochemical characterization of biosensors via impedance spectroscopy.",
			},
			{
				Degree:     "Bachelor of Science in Bioengineering",
				University: "Politecnico di Bari, Italy",
				Period:     "2018-2021",
				Thesis:     "Photonic sensor for hemoglobin measurement.",
			},
		},
		Experience: []Experience{
			{
				Role:     "Data Engineer",
				Company:  "Nortal",
				Period:   "Nov 2023 - Present",
				Location: "Wien, Austria",
				Description: []string{
					"Designed <strong>ETL pipelines</strong> integrating clinical data sources into a central warehouse",
					"Built interoperability workflows on <strong>HL7 FHIR</strong> and <strong>OpenEHR</strong>",
					"Developed internal tooling with <strong>Oracle APEX</strong> and REST APIs",
				},
				LogoURL: "https://upload.wikimedia.org/wikipedia/commons/a/ac/No_image_available.svg",
			},
			{
				Role:     "Lab Analyst",
				Company:  "Biodevices Lab",
				Period:   "Feb 2023 - Oct 2023",
				Location: "Padua, Italy",
				Description: []string{
					"Explored <strong>biosensor configurations</strong> to optimize performance",
					"Conducted <strong>cyclic voltammetry</strong> and <strong>impedance spectroscopy</strong>",
					"Simulated biosensor behavior using <strong>COMSOL Multiphysics</strong>",
				},
				LogoURL: "https://upload.wikimedia.org/wikipedia/commons/a/ac/No_image_available.svg",
			},
		},
	}
	doc.Normalize()
	return doc
}
