package domain

// Service represents a service offering listed in the catalog
type Service struct {
	ID              string
	Title           string
	Category        string
	Description     string
	Price           float64
	Rating          float64 // 0..5
	NumberOfRatings int
	Image           string
	ProviderID      string
}

// Provider represents a service provider
type Provider struct {
	ID          string
	Name        string
	Avatar      string
	Profession  string
	Description string
	Rating      float64 // 0..5
	TotalJobs   int
	Location    string
	ServiceIDs  []string
}

// OffersService returns true if the provider lists the service
func (p *Provider) OffersService(serviceID string) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Review represents a customer review of a service
type Review struct {
	ID         string
	ServiceID  string
	ProviderID string
	UserID     string
	UserName   string
	Avatar     *string
	Rating     int // 1..5
	Comment    string
	Date       string // YYYY-MM-DD
}

// Category represents a service category
type Category struct {
	ID       string
	Title    string
	IconName string
}
