// Package services holds the agency's static service catalog: the
// development service lines plus per-industry groupings. The data is
// compiled in and immutable; the API serves it read-only.
package services

// Service is a single service line offered by the agency.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

// IndustryService groups the services offered to one industry.
type IndustryService struct {
	ID          string    `json:"id"`
	Industry    string    `json:"industry"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Services    []Service `json:"services"`
}

// All returns every top-level service line.
func All() []Service {
	return allServices
}

// Industries returns the per-industry service groupings.
func Industries() []IndustryService {
	return industryServices
}

// BySlug returns the service with the given slug, searching the
// top-level lines first and then the industry-specific entries.
func BySlug(slug string) (Service, bool) {
	for _, s := range allServices {
		if s.Slug == slug {
			return s, true
		}
	}
	for _, industry := range industryServices {
		for _, s := range industry.Services {
			if s.Slug == slug {
				return s, true
			}
		}
	}
	return Service{}, false
}

// IndustryBySlug returns one industry grouping by its slug.
func IndustryBySlug(slug string) (IndustryService, bool) {
	for _, industry := range industryServices {
		if industry.Slug == slug {
			return industry, true
		}
	}
	return IndustryService{}, false
}
