package ner

// Catalog holds the candidate values each placeholder kind resolves to.
type Catalog struct {
	FirstNames   []string
	LastNames    []string
	Universities []string
	Companies    []string
	Locations    []string
	Jobs         []string
	Degrees      []string
	Skills       []string
}

// DefaultCatalog returns the Sri Lankan employee catalogs used for the PII corpus.
func DefaultCatalog() *Catalog {
	return &Catalog{
		FirstNames:   firstNames,
		LastNames:    lastNames,
		Universities: universities,
		Companies:    companies,
		Locations:    locations,
		Jobs:         jobs,
		Degrees:      degrees,
		Skills:       skills,
	}
}

var firstNames = []string{
	"Kasun", "Hasitha", "Nuwan", "Chathura", "Dilshan", "Hashini", "Nimal", "Kamal",
	"Chamara", "Lahiru", "Amila", "Ruwan", "Saman", "Mahesh", "Dinuka", "Kalpani",
	"Nadeesha", "Ravindu", "Gayan", "Dulanjali", "Navindu", "Savindu", "Vidura",
	"Dilani", "Kavindu", "Tharindu", "Isher", "Shehan", "Malith", "Janaka",
	"Priyantha", "Kumara", "Sanjeewa", "Bandara", "Perera", "Silva", "Fernando",
	"Roshan", "Suresh", "Lakmal", "Dinesh", "Manjula", "Thilini", "Pavithra",
}

var lastNames = []string{
	"Perera", "Silva", "Fernando", "De Silva", "Bandara", "Jayasinghe", "Dissanayake",
	"Ranasinghe", "Karunaratne", "Herath", "Ekanayake", "Gunaratne", "Wickramasinghe",
	"Senanayake", "Liyanage", "Gamage", "Abeysekera", "Samarasinghe", "Tennakoon",
	"Wijeratne", "Samaraweera", "Rajapaksa", "Weerasinghe", "Kulathunga", "Jayawardena",
}

var universities = []string{
	// State
	"University of Colombo", "University of Peradeniya", "University of Moratuwa",
	"University of Sri Jayewardenepura", "University of Kelaniya", "University of Ruhuna",
	"University of Jaffna", "Eastern University", "South Eastern University",
	"Rajarata University", "Sabaragamuwa University", "Wayamba University",
	"Uva Wellassa University", "Open University of Sri Lanka",
	"University of the Visual and Performing Arts", "Gampaha Wickramarachchi University",
	"Ocean University of Sri Lanka",

	// Non-state
	"SLIIT", "IIT", "NSBM Green University", "CINEC Campus", "Horizon Campus",
	"ESOFT Metro Campus", "NIBM", "APIIT", "ICBT Campus", "Saegis Campus",
	"KAATSU International University", "Gateway Graduate School", "ACBT",
	"KIU", "Royal Institute of Colombo", "BMS", "BCAS Campus", "IDM Nations Campus",
	"Sri Lanka Technological Campus", "SLTC",
}

var companies = []string{
	"WSO2", "IFS", "Virtusa", "99x", "Sysco LABS", "Pearson", "CodeGen",
	"LSEG", "MillenniumIT", "Cake Engineering", "John Keells Holdings", "Dialog Axiata",
	"Mobitel", "MAS Holdings", "Brandix", "HNB", "Sampath Bank", "Commercial Bank",
	"Surge Global", "Fortude", "Tiqri", "Zone24x7", "Cambio Software Engineering",
	"Creative Software", "Rootcode Labs", "Calcey Technologies", "PickMe", "Daraz",
	"DirectFN", "Gevek", "Aeturnum", "Code94",
}

var locations = []string{
	"Colombo", "Kandy", "Galle", "Matara", "Jaffna", "Kurunegala", "Gampaha",
	"Negombo", "Kalutara", "Batticaloa", "Trincomalee", "Anuradhapura", "Polonnaruwa",
	"Badulla", "Nuwara Eliya", "Ratnapura", "Kegalle", "Hambantota", "Malabe",
	"Nugegoda", "Dehiwala", "Mount Lavinia", "Moratuwa", "Maharagama", "Kottawa",
	"Rajagiriya", "Battaramulla", "Nawala", "Kiribathgoda", "Panadura", "Horana",
	"Piliyandala", "Homagama", "Athurugiriya",
}

var jobs = []string{
	"Software Engineer", "Senior Software Engineer", "Associate Tech Lead", "Tech Lead",
	"QA Engineer", "Automation Engineer", "UI/UX Designer",
	"DevOps Engineer", "Data Scientist", "Machine Learning Engineer", "AI Engineer",
	"Full Stack Developer", "Frontend Developer", "Backend Developer", "Mobile App Developer",
	"Systems Engineer", "Network Engineer", "Database Administrator", "Cloud Engineer",
	"Cyber Security Analyst", "Information Security Manager", "Solutions Architect",
	"Product Owner", "Scrum Master", "Business Analyst", "Data Engineer",
	"Cloud Architect", "Site Reliability Engineer",
}

var degrees = []string{
	"Computer Science", "Software Engineering", "Information Technology",
	"Data Science", "Cyber Security", "Networking", "Information Systems",
	"Computer Systems Engineering", "Artificial Intelligence", "Computer Networking",
	"Management Information Systems",
}

var skills = []string{
	"Python", "Java", "C++", "C#", "JavaScript", "TypeScript", "React", "Angular",
	"Vue.js", "Node.js", "Spring Boot", "Django", "Flask", "FastAPI", "SQL", "NoSQL",
	"MongoDB", "PostgreSQL", "MySQL", "Oracle", "AWS", "Azure", "GCP", "Docker",
	"Kubernetes", "Terraform", "Jenkins", "Git", "CI/CD", "Machine Learning",
	"Deep Learning", "NLP", "TensorFlow", "PyTorch", "Pandas", "NumPy", "Scikit-learn",
	"Linux", "Bash", "PowerBI", "Tableau", "Hadoop", "Spark", "Kafka", "Redis",
	"GraphQL", "REST API", "Microservices", "Swift", "Kotlin", "Flutter", "React Native",
	"Figma", "Adobe XD", "JIRA", "Agile", "Scrum",
}
