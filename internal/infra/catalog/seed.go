package catalog

import "giggo-server/internal/domain/listing"

// The seed mirrors the production catalog snapshot the marketplace launched
// with: eight listings across twelve categories in the New Delhi area.

func seedCategories() []listing.Category {
	return []listing.Category{
		{ID: "cleaning", Name: "Cleaning", Icon: "🧹", GigCount: 245},
		{ID: "plumbing", Name: "Plumbing", Icon: "🔧", GigCount: 128},
		{ID: "electrical", Name: "Electrical", Icon: "⚡", GigCount: 96},
		{ID: "tutoring", Name: "Tutoring", Icon: "📚", GigCount: 312},
		{ID: "design", Name: "Design", Icon: "🎨", GigCount: 189},
		{ID: "photography", Name: "Photo", Icon: "📸", GigCount: 156},
		{ID: "fitness", Name: "Fitness", Icon: "💪", GigCount: 203},
		{ID: "cooking", Name: "Cooking", Icon: "👨‍🍳", GigCount: 87},
		{ID: "beauty", Name: "Beauty", Icon: "💅", GigCount: 178},
		{ID: "moving", Name: "Moving", Icon: "📦", GigCount: 64},
		{ID: "tech", Name: "Tech Help", Icon: "💻", GigCount: 221},
		{ID: "gardening", Name: "Garden", Icon: "🌱", GigCount: 92},
	}
}

func seedListings() []listing.Spec {
	return []listing.Spec{
		{
			ID:           "1",
			Title:        "Deep Home Cleaning",
			Category:     "cleaning",
			CategoryIcon: "🧹",
			Description:  "Professional deep cleaning service for your entire home. Includes kitchen, bathrooms, bedrooms, and living areas. We use eco-friendly products.",
			PriceRupees:  1499,
			PriceUnit:    "per session",
			Provider: listing.Provider{
				ID: "p1", Name: "Priya Sharma", Avatar: "PS",
				Rating: 4.9, ReviewCount: 234, Verified: true, CompletedGigs: 567,
			},
			Location: listing.Location{Lat: 28.6139, Lng: 77.209},
			Distance: "1.2 km",
			Duration: "3-4 hrs",
			Tags:     []string{"Eco-friendly", "Top Rated"},
			Featured: true,
		},
		{
			ID:           "2",
			Title:        "Plumbing Repair & Installation",
			Category:     "plumbing",
			CategoryIcon: "🔧",
			Description:  "Expert plumbing services including leak repair, pipe installation, fixture replacement, and drain cleaning. Quick and reliable.",
			PriceRupees:  799,
			PriceUnit:    "per visit",
			Provider: listing.Provider{
				ID: "p2", Name: "Rajesh Kumar", Avatar: "RK",
				Rating: 4.7, ReviewCount: 189, Verified: true, CompletedGigs: 423,
			},
			Location: listing.Location{Lat: 28.6229, Lng: 77.215},
			Distance: "2.5 km",
			Duration: "1-2 hrs",
			Tags:     []string{"Quick Service", "Guaranteed"},
			Featured: true,
		},
		{
			ID:           "3",
			Title:        "Math & Science Tutoring",
			Category:     "tutoring",
			CategoryIcon: "📚",
			Description:  "Personalized tutoring for students from grade 6-12. Specializing in mathematics, physics, and chemistry with proven results.",
			PriceRupees:  599,
			PriceUnit:    "per hour",
			Provider: listing.Provider{
				ID: "p3", Name: "Anita Desai", Avatar: "AD",
				Rating: 4.95, ReviewCount: 412, Verified: true, CompletedGigs: 890,
			},
			Location: listing.Location{Lat: 28.6099, Lng: 77.205},
			Distance: "0.8 km",
			Duration: "1 hr",
			Tags:     []string{"Top Tutor", "Online Available"},
			Featured: true,
		},
		{
			ID:           "4",
			Title:        "Personal Fitness Training",
			Category:     "fitness",
			CategoryIcon: "💪",
			Description:  "Customized workout plans and one-on-one training sessions. Whether you want to lose weight, build muscle, or improve flexibility.",
			PriceRupees:  999,
			PriceUnit:    "per session",
			Provider: listing.Provider{
				ID: "p4", Name: "Vikram Singh", Avatar: "VS",
				Rating: 4.8, ReviewCount: 156, Verified: true, CompletedGigs: 345,
			},
			Location: listing.Location{Lat: 28.6189, Lng: 77.220},
			Distance: "3.1 km",
			Duration: "1 hr",
			Tags:     []string{"Certified", "Home Visit"},
			Featured: false,
		},
		{
			ID:           "5",
			Title:        "Logo & Brand Design",
			Category:     "design",
			CategoryIcon: "🎨",
			Description:  "Creative logo design and complete brand identity packages. Get a unique, professional look for your business or personal brand.",
			PriceRupees:  2999,
			PriceUnit:    "per project",
			Provider: listing.Provider{
				ID: "p5", Name: "Meera Patel", Avatar: "MP",
				Rating: 4.85, ReviewCount: 278, Verified: true, CompletedGigs: 612,
			},
			Location: listing.Location{Lat: 28.6159, Lng: 77.212},
			Distance: "1.8 km",
			Duration: "3-5 days",
			Tags:     []string{"Portfolio Available", "Rush Available"},
			Featured: true,
		},
		{
			ID:           "6",
			Title:        "Event Photography",
			Category:     "photography",
			CategoryIcon: "📸",
			Description:  "Professional photography for weddings, birthdays, corporate events, and more. High-quality edited photos delivered within a week.",
			PriceRupees:  4999,
			PriceUnit:    "per event",
			Provider: listing.Provider{
				ID: "p6", Name: "Arjun Nair", Avatar: "AN",
				Rating: 4.9, ReviewCount: 198, Verified: true, CompletedGigs: 289,
			},
			Location: listing.Location{Lat: 28.6109, Lng: 77.218},
			Distance: "2.0 km",
			Duration: "4-8 hrs",
			Tags:     []string{"Award Winning", "Drone Available"},
			Featured: false,
		},
		{
			ID:           "7",
			Title:        "Home Cook / Chef Service",
			Category:     "cooking",
			CategoryIcon: "👨‍🍳",
			Description:  "Hire a professional cook for daily meals, parties, or special occasions. Multi-cuisine expertise including North Indian, South Indian, and Continental.",
			PriceRupees:  1299,
			PriceUnit:    "per day",
			Provider: listing.Provider{
				ID: "p7", Name: "Sunita Devi", Avatar: "SD",
				Rating: 4.75, ReviewCount: 167, Verified: true, CompletedGigs: 456,
			},
			Location: listing.Location{Lat: 28.6169, Lng: 77.207},
			Distance: "1.5 km",
			Duration: "Full day",
			Tags:     []string{"Multi-cuisine", "Party Catering"},
			Featured: false,
		},
		{
			ID:           "8",
			Title:        "Electrical Repair & Wiring",
			Category:     "electrical",
			CategoryIcon: "⚡",
			Description:  "Licensed electrician for all electrical needs. Wiring, switch installation, fan repair, inverter setup, and safety inspections.",
			PriceRupees:  699,
			PriceUnit:    "per visit",
			Provider: listing.Provider{
				ID: "p8", Name: "Mohammed Ali", Avatar: "MA",
				Rating: 4.65, ReviewCount: 145, Verified: true, CompletedGigs: 378,
			},
			Location: listing.Location{Lat: 28.6209, Lng: 77.213},
			Distance: "2.8 km",
			Duration: "1-3 hrs",
			Tags:     []string{"Licensed", "Emergency Available"},
			Featured: false,
		},
	}
}
