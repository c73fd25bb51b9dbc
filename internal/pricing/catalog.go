package pricing

// Option is a selectable line item within a step, carrying a flat
// additive base price in whole currency units.
type Option struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BasePrice   int    `json:"basePrice"`
	Description string `json:"description"`
}

// Step is one stage of the pricing questionnaire. ID is 1-based display
// data; selections are keyed by the step's zero-based position in
// Catalog.Steps, never by ID.
type Step struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	MultiSelect bool     `json:"multiSelect,omitempty"`
	Options     []Option `json:"options"`
}

// Catalog is the full questionnaire. It is immutable after construction;
// replace the whole value to change it, never mutate in place.
type Catalog struct {
	Steps          []Step `json:"steps"`
	TimelineStepID int    `json:"timelineStepId"`
}

// Timeline multipliers applied to the non-timeline subtotal.
const (
	RushMultiplier     = 1.3
	StandardMultiplier = 1.0
	FlexibleMultiplier = 0.85
)

// Timeline option identifiers with multiplier semantics.
const (
	timelineRush     = "rush"
	timelineFlexible = "flexible"
)

// DefaultCatalog returns the production questionnaire: project type,
// core features, integrations, design level, and delivery timeline.
func DefaultCatalog() Catalog {
	return Catalog{
		TimelineStepID: 5,
		Steps: []Step{
			{
				ID:          1,
				Title:       "Project Type",
				Description: "What type of project do you need?",
				Options: []Option{
					{ID: "landing", Name: "Landing Page", BasePrice: 350, Description: "Single page website perfect for product launches, events, or simple business presence"},
					{ID: "website", Name: "Multi-page Website", BasePrice: 800, Description: "3-10 pages with navigation, perfect for businesses needing multiple content sections"},
					{ID: "webapp", Name: "Web Application", BasePrice: 2500, Description: "Interactive web app with user accounts, dashboards, and business logic"},
					{ID: "mobile", Name: "Mobile App", BasePrice: 3500, Description: "Native or cross-platform mobile app for iOS and Android"},
					{ID: "fullstack", Name: "Full-stack Platform", BasePrice: 5000, Description: "Complete platform with web, mobile, admin panel, and backend infrastructure"},
				},
			},
			{
				ID:          2,
				Title:       "Core Features",
				Description: "Select the features you need (select all that apply)",
				MultiSelect: true,
				Options: []Option{
					{ID: "auth", Name: "User Authentication", BasePrice: 500, Description: "Secure login/signup system with email verification, password reset, and session management"},
					{ID: "payment", Name: "Payment Integration", BasePrice: 800, Description: "Stripe, PayPal, or other payment gateway integration with checkout flow"},
					{ID: "admin", Name: "Admin Dashboard", BasePrice: 1200, Description: "Backend admin panel for managing users, content, and system settings"},
					{ID: "api", Name: "REST API", BasePrice: 600, Description: "RESTful API for mobile apps or third-party integrations"},
					{ID: "realtime", Name: "Real-time Features", BasePrice: 1000, Description: "Live updates, chat, notifications using WebSockets or Firebase"},
					{ID: "notifications", Name: "Push Notifications", BasePrice: 400, Description: "Email and/or mobile push notifications for user engagement"},
				},
			},
			{
				ID:          3,
				Title:       "Integrations",
				Description: "Third-party integrations needed",
				MultiSelect: true,
				Options: []Option{
					{ID: "crm", Name: "CRM Integration", BasePrice: 600, Description: "Connect to Salesforce, HubSpot, or other CRM for lead management"},
					{ID: "analytics", Name: "Analytics (GA, Mixpanel)", BasePrice: 300, Description: "User behavior tracking and analytics dashboard integration"},
					{ID: "email", Name: "Email Service (SendGrid, Mailgun)", BasePrice: 400, Description: "Automated email sending for transactional and marketing emails"},
					{ID: "storage", Name: "Cloud Storage (AWS S3)", BasePrice: 500, Description: "File upload and storage for user documents, images, or videos"},
					{ID: "social", Name: "Social Media Login", BasePrice: 350, Description: "Login with Google, Facebook, LinkedIn, or other social providers"},
				},
			},
			{
				ID:          4,
				Title:       "Design & UI",
				Description: "Design complexity level",
				Options: []Option{
					{ID: "basic", Name: "Basic UI (Template-based)", BasePrice: 0, Description: "Clean, professional design using pre-built components and templates"},
					{ID: "custom", Name: "Custom Design", BasePrice: 800, Description: "Unique design tailored to your brand with custom components"},
					{ID: "premium", Name: "Premium Design with Animations", BasePrice: 1500, Description: "High-end design with micro-interactions, animations, and advanced UX"},
				},
			},
			{
				ID:          5,
				Title:       "Timeline",
				Description: "When do you need it delivered?",
				Options: []Option{
					{ID: "rush", Name: "Rush (1-2 weeks) +30%", BasePrice: 0, Description: "Express delivery with priority development and extended team hours"},
					{ID: "standard", Name: "Standard (3-4 weeks)", BasePrice: 0, Description: "Standard timeline with balanced development pace and quality assurance"},
					{ID: "flexible", Name: "Flexible (5+ weeks) -15%", BasePrice: 0, Description: "Budget-friendly option with flexible delivery schedule"},
				},
			},
		},
	}
}
