package services

var allServices = []Service{
	{
		ID:          "web-dev",
		Title:       "Web Development",
		Slug:        "web-development",
		Description: "Custom web applications built with cutting-edge technologies for optimal performance and user experience.",
		Category:    "development",
	},
	{
		ID:          "cms-dev",
		Title:       "CMS Development",
		Slug:        "cms-development",
		Description: "Powerful content management systems tailored to your business needs.",
		Category:    "development",
	},
	{
		ID:          "mvp-dev",
		Title:       "MVP Development",
		Slug:        "mvp-development",
		Description: "Launch your startup in days or weeks, not months. Rapid MVP development to validate your idea.",
		Category:    "development",
	},
	{
		ID:          "web-app-dev",
		Title:       "Web Application Development",
		Slug:        "web-application-development",
		Description: "Full-featured web applications with robust backend systems and intuitive interfaces.",
		Category:    "development",
	},
	{
		ID:          "mobile-app-dev",
		Title:       "Mobile App Development",
		Slug:        "mobile-app-development",
		Description: "Native and cross-platform mobile applications for iOS and Android.",
		Category:    "development",
	},
	{
		ID:          "backend-dev",
		Title:       "Back-end Development",
		Slug:        "back-end-development",
		Description: "Enterprise-grade backend systems built by senior engineering talent.",
		Category:    "development",
	},
	{
		ID:          "frontend-dev",
		Title:       "Front-end Development",
		Slug:        "front-end-development",
		Description: "Modern, responsive, and performant user interfaces.",
		Category:    "development",
	},
	{
		ID:          "web-portal-dev",
		Title:       "Web Portal Development",
		Slug:        "web-portal-development",
		Description: "Custom web portals for internal tools, customer dashboards, and more.",
		Category:    "development",
	},
}

var industryServices = []IndustryService{
	{
		ID:          "healthcare",
		Industry:    "Healthcare",
		Slug:        "healthcare",
		Description: "HIPAA-compliant healthcare solutions with enterprise security and scalability.",
		Services: []Service{
			{ID: "healthcare-software", Title: "Healthcare Software Development", Slug: "healthcare-software-development", Description: "Custom healthcare software solutions built with compliance and security in mind."},
			{ID: "healthcare-it", Title: "Healthcare IT Consulting", Slug: "healthcare-it-consulting", Description: "Expert guidance on healthcare technology strategy and implementation."},
			{ID: "healthcare-app", Title: "Healthcare App Development", Slug: "healthcare-app-development", Description: "Mobile and web applications for healthcare providers and patients."},
			{ID: "healthcare-uiux", Title: "Healthcare UI/UX Design", Slug: "healthcare-ui-ux-design", Description: "User-centered design for healthcare applications."},
			{ID: "medical-apps-patients", Title: "Medical Apps for Patients", Slug: "medical-apps-for-patients", Description: "Patient-facing applications for health tracking and telemedicine."},
			{ID: "healthcare-testing", Title: "Healthcare Software Testing", Slug: "healthcare-software-testing", Description: "Comprehensive testing to ensure reliability and compliance."},
			{ID: "telemedicine-app", Title: "Telemedicine App Development", Slug: "telemedicine-app-development", Description: "Secure telemedicine platforms for remote patient care."},
			{ID: "healthcare-website", Title: "Healthcare Website Design", Slug: "healthcare-website-design", Description: "Professional websites for healthcare providers and organizations."},
		},
	},
	{
		ID:          "education",
		Industry:    "Education",
		Slug:        "education",
		Description: "Transform learning experiences with innovative educational technology solutions.",
		Services: []Service{
			{ID: "education-software", Title: "Education Software Development", Slug: "education-software-development", Description: "Custom educational software for institutions and EdTech startups."},
			{ID: "education-app", Title: "Education App Development", Slug: "education-app-development", Description: "Mobile learning applications for students and educators."},
			{ID: "lms-dev", Title: "LMS Development Services", Slug: "lms-development-services", Description: "Learning Management Systems tailored to your educational needs."},
			{ID: "elearning-app", Title: "E-learning Application Development", Slug: "e-learning-application-development", Description: "Interactive e-learning platforms for online education."},
			{ID: "elearning-software", Title: "E-learning Software Development", Slug: "e-learning-software-development", Description: "Comprehensive e-learning solutions with advanced features."},
			{ID: "education-portals", Title: "Education Portals Development", Slug: "education-portals-development", Description: "Student and teacher portals for educational institutions."},
			{ID: "school-management", Title: "School Management Software", Slug: "school-management-software", Description: "All-in-one school administration and management systems."},
		},
	},
	{
		ID:          "finance",
		Industry:    "Finance",
		Slug:        "finance",
		Description: "Secure, compliant financial technology solutions built with enterprise-grade security.",
		Services: []Service{
			{ID: "financial-software", Title: "Financial Software Development", Slug: "financial-software-development", Description: "Custom fintech solutions for modern financial services."},
			{ID: "financial-web-design", Title: "Web Design for Financial Services", Slug: "web-design-for-financial-services", Description: "Professional websites for financial institutions and services."},
			{ID: "financial-mobile-app", Title: "Financial Mobile App Development", Slug: "financial-mobile-app-development", Description: "Secure mobile banking and fintech applications."},
			{ID: "banking-apps", Title: "Banking Apps Development", Slug: "banking-apps-development", Description: "Full-featured banking applications with advanced security."},
			{ID: "payment-app", Title: "Payment App Development", Slug: "payment-app-development", Description: "Payment processing applications and digital wallets."},
			{ID: "payment-integration", Title: "Payment Integration Services", Slug: "payment-integration-services", Description: "Seamless integration of payment gateways and processors."},
		},
	},
	{
		ID:          "transportation",
		Industry:    "Transportation and Logistics",
		Slug:        "transportation-logistics",
		Description: "Optimize operations with intelligent transportation and logistics solutions.",
		Services: []Service{
			{ID: "transportation-software", Title: "Transportation Software Development", Slug: "transportation-software-development", Description: "Custom software for transportation companies and logistics providers."},
			{ID: "logistics-app", Title: "Logistics App Development", Slug: "logistics-app-development", Description: "Mobile and web apps for logistics management and tracking."},
			{ID: "logistics-web-design", Title: "Logistics Web Design", Slug: "logistics-web-design", Description: "Professional websites for logistics and transportation companies."},
			{ID: "transportation-management", Title: "Transportation Management Software", Slug: "transportation-management-software", Description: "Comprehensive TMS solutions for fleet and route optimization."},
			{ID: "supply-chain-software", Title: "Supply Chain Software Development", Slug: "supply-chain-software-development", Description: "End-to-end supply chain management systems."},
		},
	},
	{
		ID:          "ai-ml",
		Industry:    "Machine Learning & AI",
		Slug:        "machine-learning-ai",
		Description: "Cutting-edge AI solutions powered by deep engineering expertise.",
		Services: []Service{
			{ID: "ai-consulting", Title: "AI Consulting Services", Slug: "ai-consulting-services", Description: "Strategic AI consulting from experienced ML engineers."},
			{ID: "ai-development", Title: "AI Development Services", Slug: "ai-development-services", Description: "Custom AI solutions and machine learning models."},
			{ID: "ai-integration", Title: "AI Integration Services", Slug: "ai-integration-services", Description: "Seamless integration of AI capabilities into existing systems."},
			{ID: "ai-chatbot", Title: "AI Chatbot Development", Slug: "ai-chatbot-development", Description: "Intelligent chatbots powered by advanced NLP and LLMs."},
			{ID: "chatgpt-integration", Title: "ChatGPT Integration", Slug: "chatgpt-integration", Description: "Custom ChatGPT and LLM integrations for your products."},
		},
	},
}
