package generate

// Word pools for synthetic values. Test data only, no claim of realism
// beyond passing a casual eyeball.

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com",
	"icloud.com", "mail.com", "fastmail.com", "zoho.com", "aol.com",
	"example.com", "test.com", "company.org", "corp.net", "business.io",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"product", "service", "platform", "digital", "cloud", "data", "system",
	"network", "security", "performance", "solution", "integration", "analytics",
	"automation", "infrastructure", "management", "enterprise", "scalable",
	"reliable", "efficient", "innovative", "modern", "advanced", "premium",
	"professional", "dynamic", "global", "strategic", "customer", "market",
	"growth", "development", "technology", "software",
}

var streetNames = []string{
	"Main", "Oak", "Pine", "Maple", "Cedar", "Elm", "Washington", "Lake",
	"Hill", "Park", "River", "Spring", "Church", "High", "Mill", "Walnut",
	"Chestnut", "Broad", "Center", "Union",
}

var streetSuffixes = []string{"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Way", "Ct"}

var cities = []string{
	"Springfield", "Riverside", "Franklin", "Greenville", "Bristol", "Clinton",
	"Fairview", "Salem", "Madison", "Georgetown", "Arlington", "Ashland",
	"Burlington", "Manchester", "Oxford", "Clayton", "Milton", "Auburn",
	"Dayton", "Lexington",
}

var countries = []string{
	"United States", "Canada", "United Kingdom", "Germany", "France", "Japan",
	"Australia", "Brazil", "India", "Mexico", "Italy", "Spain", "Netherlands",
	"Sweden", "Norway", "Denmark", "Finland", "Poland", "Ireland", "New Zealand",
}

var companySuffixes = []string{"Inc", "LLC", "Group", "Labs", "Systems", "Solutions", "Corp", "Partners"}
