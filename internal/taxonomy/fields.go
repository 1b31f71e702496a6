package taxonomy

// defaultGroups lists the specific four-digit ASJC fields, grouped by
// discipline in prompt-rendering order.
var defaultGroups = []Group{
	{
		Name: "Multidisciplinary",
		Fields: []Field{
			{"1000", "Multidisciplinary"},
		},
	},
	{
		Name: "Computer Science (1700s)",
		Fields: []Field{
			{"1702", "Artificial Intelligence"},
			{"1703", "Computational Theory and Mathematics"},
			{"1704", "Computer Graphics and Computer-Aided Design"},
			{"1705", "Computer Networks and Communications"},
			{"1706", "Computer Science Applications"},
			{"1707", "Computer Vision and Pattern Recognition"},
			{"1708", "Hardware and Architecture"},
			{"1709", "Human-Computer Interaction"},
			{"1710", "Information Systems"},
			{"1711", "Signal Processing"},
			{"1712", "Software"},
		},
	},
	{
		Name: "Engineering (2200s)",
		Fields: []Field{
			{"2202", "Aerospace Engineering"},
			{"2203", "Automotive Engineering"},
			{"2204", "Biomedical Engineering"},
			{"2205", "Civil and Structural Engineering"},
			{"2206", "Computational Mechanics"},
			{"2207", "Control and Systems Engineering"},
			{"2208", "Electrical and Electronic Engineering"},
			{"2209", "Industrial and Manufacturing Engineering"},
			{"2210", "Mechanical Engineering"},
			{"2211", "Mechanics of Materials"},
			{"2212", "Ocean Engineering"},
			{"2213", "Safety, Risk, Reliability and Quality"},
			{"2214", "Media Technology"},
			{"2215", "Building and Construction"},
			{"2216", "Architecture"},
		},
	},
	{
		Name: "Mathematics (2600s)",
		Fields: []Field{
			{"2602", "Algebra and Number Theory"},
			{"2603", "Analysis"},
			{"2604", "Applied Mathematics"},
			{"2605", "Computational Mathematics"},
			{"2606", "Control and Optimization"},
			{"2607", "Discrete Mathematics and Combinatorics"},
			{"2608", "Geometry and Topology"},
			{"2609", "Logic"},
			{"2610", "Mathematical Physics"},
			{"2611", "Modeling and Simulation"},
			{"2612", "Numerical Analysis"},
			{"2613", "Statistics and Probability"},
			{"2614", "Theoretical Computer Science"},
		},
	},
	{
		Name: "Medicine (2700s)",
		Fields: []Field{
			{"2703", "Anesthesiology and Pain Medicine"},
			{"2704", "Biochemistry (medical)"},
			{"2705", "Cardiology and Cardiovascular Medicine"},
			{"2708", "Dermatology"},
			{"2711", "Emergency Medicine"},
			{"2712", "Endocrinology, Diabetes and Metabolism"},
			{"2713", "Epidemiology"},
			{"2715", "Gastroenterology"},
			{"2716", "Genetics (clinical)"},
			{"2718", "Health Informatics"},
			{"2719", "Health Policy"},
			{"2724", "Internal Medicine"},
			{"2725", "Infectious Diseases"},
			{"2728", "Neurology (clinical)"},
			{"2729", "Obstetrics and Gynecology"},
			{"2730", "Oncology"},
			{"2731", "Ophthalmology"},
			{"2738", "Psychiatry and Mental Health"},
			{"2739", "Public Health, Environmental and Occupational Health"},
			{"2741", "Radiology, Nuclear Medicine and Imaging"},
			{"2746", "Surgery"},
		},
	},
	{
		Name: "Agricultural and Biological Sciences (1100s)",
		Fields: []Field{
			{"1102", "Agronomy and Crop Science"},
			{"1103", "Animal Science and Zoology"},
			{"1104", "Aquatic Science"},
			{"1105", "Ecology, Evolution, Behavior and Systematics"},
			{"1106", "Food Science"},
			{"1107", "Forestry"},
			{"1108", "Horticulture"},
			{"1109", "Insect Science"},
			{"1110", "Plant Science"},
			{"1111", "Soil Science"},
		},
	},
	{
		Name: "Biochemistry, Genetics and Molecular Biology (1300s)",
		Fields: []Field{
			{"1302", "Aging"},
			{"1303", "Biochemistry"},
			{"1304", "Biophysics"},
			{"1305", "Biotechnology"},
			{"1306", "Cancer Research"},
			{"1307", "Cell Biology"},
			{"1309", "Developmental Biology"},
			{"1310", "Endocrinology"},
			{"1311", "Genetics"},
			{"1312", "Molecular Biology"},
			{"1313", "Molecular Medicine"},
			{"1314", "Physiology"},
		},
	},
	{
		Name: "Business, Management and Accounting (1400s)",
		Fields: []Field{
			{"1402", "Accounting"},
			{"1403", "Business and International Management"},
			{"1404", "Management Information Systems"},
			{"1405", "Management of Technology and Innovation"},
			{"1406", "Marketing"},
			{"1407", "Organizational Behavior and Human Resource Management"},
			{"1408", "Strategy and Management"},
			{"1409", "Tourism, Leisure and Hospitality Management"},
		},
	},
	{
		Name: "Environmental Science (2300s)",
		Fields: []Field{
			{"2302", "Ecological Modeling"},
			{"2303", "Ecology"},
			{"2304", "Environmental Chemistry"},
			{"2305", "Environmental Engineering"},
			{"2306", "Global and Planetary Change"},
			{"2307", "Health, Toxicology and Mutagenesis"},
			{"2308", "Management, Monitoring, Policy and Law"},
			{"2310", "Pollution"},
			{"2311", "Waste Management and Disposal"},
			{"2312", "Water Science and Technology"},
		},
	},
	{
		Name: "Energy (2100s)",
		Fields: []Field{
			{"2102", "Energy Engineering and Power Technology"},
			{"2103", "Fuel Technology"},
			{"2104", "Nuclear Energy and Engineering"},
			{"2105", "Renewable Energy, Sustainability and the Environment"},
		},
	},
	{
		Name: "Materials Science (2500s)",
		Fields: []Field{
			{"2502", "Biomaterials"},
			{"2503", "Ceramics and Composites"},
			{"2504", "Electronic, Optical and Magnetic Materials"},
			{"2505", "Materials Chemistry"},
			{"2506", "Metals and Alloys"},
			{"2507", "Polymers and Plastics"},
			{"2508", "Surfaces, Coatings and Films"},
		},
	},
	{
		Name: "Social Sciences (3300s)",
		Fields: []Field{
			{"3302", "Archeology"},
			{"3303", "Development"},
			{"3304", "Education"},
			{"3305", "Geography, Planning and Development"},
			{"3306", "Health (social science)"},
			{"3308", "Law"},
			{"3310", "Linguistics and Language"},
			{"3312", "Sociology and Political Science"},
			{"3313", "Transportation"},
			{"3314", "Anthropology"},
			{"3315", "Communication"},
			{"3320", "Political Science and International Relations"},
		},
	},
	{
		Name: "Physics and Astronomy (3100s)",
		Fields: []Field{
			{"3102", "Acoustics and Ultrasonics"},
			{"3103", "Astronomy and Astrophysics"},
			{"3104", "Condensed Matter Physics"},
			{"3105", "Instrumentation"},
			{"3106", "Nuclear and High Energy Physics"},
			{"3107", "Atomic and Molecular Physics, and Optics"},
			{"3108", "Radiation"},
			{"3109", "Statistical and Nonlinear Physics"},
		},
	},
}
