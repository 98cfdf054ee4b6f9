package catalog

import "github.com/m04kA/D2D-MarketplaceService/internal/domain"

// Bundled возвращает справочный набор данных, встроенный в бинарник
func Bundled() Dataset {
	return Dataset{
		Services:   bundledServices(),
		Providers:  bundledProviders(),
		Reviews:    bundledReviews(),
		Categories: bundledCategories(),
	}
}

func bundledServices() []domain.Service {
	return []domain.Service{
		{
			ID:              "1",
			Title:           "House Deep Cleaning",
			Category:        "cleaning",
			Description:     "Professional deep cleaning service for your entire home. Our team will clean every corner, including kitchen, bathrooms, bedrooms, and living spaces.",
			Price:           120,
			Rating:          4.8,
			NumberOfRatings: 156,
			Image:           "https://images.pexels.com/photos/4239091/pexels-photo-4239091.jpeg",
			ProviderID:      "1",
		},
		{
			ID:              "2",
			Title:           "Bathroom Plumbing Repair",
			Category:        "plumbing",
			Description:     "Expert plumbing services for bathroom fixtures. We repair leaks, unclog drains, and fix or replace faucets, showers, and toilets.",
			Price:           85,
			Rating:          4.6,
			NumberOfRatings: 89,
			Image:           "https://images.pexels.com/photos/6000157/pexels-photo-6000157.jpeg",
			ProviderID:      "2",
		},
		{
			ID:              "3",
			Title:           "Electrical Panel Upgrade",
			Category:        "electrical",
			Description:     "Upgrade your electrical panel for improved safety and capacity. Our licensed electricians will replace your old panel with a modern one.",
			Price:           1200,
			Rating:          4.9,
			NumberOfRatings: 67,
			Image:           "https://images.pexels.com/photos/8005397/pexels-photo-8005397.jpeg",
			ProviderID:      "3",
		},
		{
			ID:              "4",
			Title:           "Premium Haircut & Styling",
			Category:        "beauty",
			Description:     "Get a professional haircut and styling at your home. Our experienced stylists will give you a fresh new look without leaving your house.",
			Price:           75,
			Rating:          4.7,
			NumberOfRatings: 212,
			Image:           "https://images.pexels.com/photos/3992874/pexels-photo-3992874.jpeg",
			ProviderID:      "4",
		},
		{
			ID:              "5",
			Title:           "Furniture Assembly",
			Category:        "repair",
			Description:     "Professional furniture assembly service. We'll put together any type of furniture quickly and correctly, saving you time and frustration.",
			Price:           60,
			Rating:          4.5,
			NumberOfRatings: 178,
			Image:           "https://images.pexels.com/photos/7218505/pexels-photo-7218505.jpeg",
			ProviderID:      "5",
		},
		{
			ID:              "6",
			Title:           "Interior Wall Painting",
			Category:        "painting",
			Description:     "Transform your space with professional interior painting. Our team provides color consultation, prep work, and expert painting of your walls.",
			Price:           350,
			Rating:          4.8,
			NumberOfRatings: 94,
			Image:           "https://images.pexels.com/photos/8092462/pexels-photo-8092462.jpeg",
			ProviderID:      "6",
		},
		{
			ID:              "7",
			Title:           "Local Moving Service",
			Category:        "moving",
			Description:     "Full-service local moving. Our professional movers will pack, load, transport, and unpack your belongings safely and efficiently.",
			Price:           450,
			Rating:          4.6,
			NumberOfRatings: 132,
			Image:           "https://images.pexels.com/photos/4246091/pexels-photo-4246091.jpeg",
			ProviderID:      "7",
		},
		{
			ID:              "8",
			Title:           "Lawn Mowing & Trimming",
			Category:        "gardening",
			Description:     "Professional lawn care service. We'll mow your lawn, trim edges, and clean up afterward, leaving your yard looking perfectly maintained.",
			Price:           55,
			Rating:          4.7,
			NumberOfRatings: 203,
			Image:           "https://images.pexels.com/photos/589/garden-gardener-grass-landscape.jpg",
			ProviderID:      "8",
		},
	}
}

func bundledProviders() []domain.Provider {
	return []domain.Provider{
		{
			ID:          "1",
			Name:        "Emma Johnson",
			Profession:  "Professional Cleaner",
			Description: "Experienced cleaner with over 5 years in residential and commercial cleaning. Specializing in deep cleaning and organization.",
			Rating:      4.8,
			TotalJobs:   156,
			Location:    "Brooklyn, NY",
			ServiceIDs:  []string{"1"},
		},
		{
			ID:          "2",
			Name:        "Michael Rodriguez",
			Avatar:      "./assets/images/plumbing.png",
			Profession:  "Master Plumber",
			Description: "Licensed plumber with 10+ years experience handling all types of plumbing issues. Specializing in bathroom and kitchen repairs.",
			Rating:      4.6,
			TotalJobs:   89,
			Location:    "Queens, NY",
			ServiceIDs:  []string{"2"},
		},
		{
			ID:          "3",
			Name:        "David Chen",
			Profession:  "Licensed Electrician",
			Description: "Certified electrician with expertise in residential and commercial electrical systems. Focusing on safety and quality workmanship.",
			Rating:      4.9,
			TotalJobs:   67,
			Location:    "Manhattan, NY",
			ServiceIDs:  []string{"3"},
		},
		{
			ID:          "4",
			Name:        "Sophia Martinez",
			Profession:  "Hair Stylist",
			Description: "Professional hair stylist with 7 years of salon experience. Specializing in cuts, color, and styling for all hair types.",
			Rating:      4.7,
			TotalJobs:   212,
			Location:    "Brooklyn, NY",
			ServiceIDs:  []string{"4"},
		},
		{
			ID:          "5",
			Name:        "James Wilson",
			Profession:  "Furniture Specialist",
			Description: "Skilled furniture assembly and repair specialist. Experienced with all major furniture brands and styles.",
			Rating:      4.5,
			TotalJobs:   178,
			Location:    "Bronx, NY",
			ServiceIDs:  []string{"5"},
		},
		{
			ID:          "6",
			Name:        "Olivia Brown",
			Profession:  "Professional Painter",
			Description: "Experienced painter specializing in interior and exterior painting. Providing color consultation and premium finishes.",
			Rating:      4.8,
			TotalJobs:   94,
			Location:    "Staten Island, NY",
			ServiceIDs:  []string{"6"},
		},
		{
			ID:          "7",
			Name:        "Daniel Kim",
			Profession:  "Moving Specialist",
			Description: "Professional mover with a team specializing in local and long-distance moves. Focused on safe and efficient relocation services.",
			Rating:      4.6,
			TotalJobs:   132,
			Location:    "Queens, NY",
			ServiceIDs:  []string{"7"},
		},
		{
			ID:          "8",
			Name:        "Emily Taylor",
			Profession:  "Landscape Gardener",
			Description: "Professional gardener with expertise in lawn care, planting, and garden design. Creating beautiful outdoor spaces for over 8 years.",
			Rating:      4.7,
			TotalJobs:   203,
			Location:    "Brooklyn, NY",
			ServiceIDs:  []string{"8"},
		},
	}
}

func bundledReviews() []domain.Review {
	avatar := func(s string) *string { return &s }

	return []domain.Review{
		{
			ID:         "1",
			ServiceID:  "1",
			ProviderID: "1",
			UserID:     "u1",
			UserName:   "Alex Thompson",
			Avatar:     avatar("https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg"),
			Rating:     5,
			Comment:    "Emma did an amazing job cleaning our apartment. Every surface was spotless and she paid attention to all the details. Would definitely hire again!",
			Date:       "2023-11-15",
		},
		{
			ID:         "2",
			ServiceID:  "1",
			ProviderID: "1",
			UserID:     "u2",
			UserName:   "Jessica Liu",
			Avatar:     avatar("https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg"),
			Rating:     4,
			Comment:    "Very thorough cleaning service. My home looks and smells great! Taking off one star only because they arrived 15 minutes late.",
			Date:       "2023-11-02",
		},
		{
			ID:         "3",
			ServiceID:  "1",
			ProviderID: "1",
			UserID:     "u3",
			UserName:   "Marcus Johnson",
			Rating:     5,
			Comment:    "Exceptional service! Emma was professional, efficient, and left my house cleaner than it's ever been. Highly recommended!",
			Date:       "2023-10-20",
		},
		{
			ID:         "4",
			ServiceID:  "2",
			ProviderID: "2",
			UserID:     "u4",
			UserName:   "Sarah Williams",
			Avatar:     avatar("https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg"),
			Rating:     5,
			Comment:    "Michael fixed our leaking shower quickly and professionally. He explained the problem clearly and gave us tips to prevent future issues.",
			Date:       "2023-11-10",
		},
		{
			ID:         "5",
			ServiceID:  "2",
			ProviderID: "2",
			UserID:     "u5",
			UserName:   "Robert Chen",
			Rating:     4,
			Comment:    "Good service. Fixed the clogged sink efficiently. Slightly more expensive than expected but the quality of work was worth it.",
			Date:       "2023-10-28",
		},
		{
			ID:         "6",
			ServiceID:  "3",
			ProviderID: "3",
			UserID:     "u6",
			UserName:   "Jennifer Lopez",
			Avatar:     avatar("https://images.pexels.com/photos/1382731/pexels-photo-1382731.jpeg"),
			Rating:     5,
			Comment:    "David did an excellent job upgrading our electrical panel. Very knowledgeable and professional. The work passed inspection with no issues.",
			Date:       "2023-11-05",
		},
		{
			ID:         "7",
			ServiceID:  "4",
			ProviderID: "4",
			UserID:     "u7",
			UserName:   "Kevin Park",
			Rating:     5,
			Comment:    "Sophia gave me the best haircut I've had in years! She listened to what I wanted and offered great suggestions. Very happy with the results!",
			Date:       "2023-11-12",
		},
		{
			ID:         "8",
			ServiceID:  "5",
			ProviderID: "5",
			UserID:     "u8",
			UserName:   "Lisa Garcia",
			Avatar:     avatar("https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg"),
			Rating:     4,
			Comment:    "James assembled our new IKEA furniture quickly and correctly. He was friendly and professional throughout.",
			Date:       "2023-11-08",
		},
	}
}

func bundledCategories() []domain.Category {
	return []domain.Category{
		{ID: "cleaning", Title: "Cleaning", IconName: "spraycan"},
		{ID: "plumbing", Title: "Plumbing", IconName: "wrench"},
		{ID: "electrical", Title: "Electrical", IconName: "zap"},
		{ID: "beauty", Title: "Beauty", IconName: "scissors"},
		{ID: "repair", Title: "Repair", IconName: "hammer"},
		{ID: "painting", Title: "Painting", IconName: "paintbrush"},
		{ID: "moving", Title: "Moving", IconName: "truck"},
		{ID: "gardening", Title: "Gardening", IconName: "flower"},
	}
}
