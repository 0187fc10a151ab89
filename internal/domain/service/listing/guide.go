package listing

import "bidhub/internal/domain/entity"

// Guide returns the static content of the "how it works" view.
func Guide() entity.Guide {
	return entity.Guide{
		Title: "How BidHub Works",
		Intro: "Experience the future of online auctions with AI-powered voice bidding",
		Steps: []entity.GuideStep{
			{
				Title:       "1. Register & Verify",
				Description: "Create your account, verify your identity, and set up your bidding preferences. Our secure platform ensures your information is protected.",
			},
			{
				Title:       "2. Browse Live Auctions",
				Description: "Explore our curated selection of auction items. Filter by category, price range, or time remaining to find items that interest you.",
			},
			{
				Title:       "3. Place Bids (Voice or Manual)",
				Description: "Use our innovative voice assistant to place bids hands-free, or use the traditional web interface. Both methods provide real-time feedback and confirmation.",
			},
			{
				Title:       "4. Win & Collect",
				Description: "When you win an auction, you'll receive instant notification. Complete the payment process and arrange for secure delivery of your item.",
			},
		},
		Features: []entity.GuideFeature{
			{Title: "Real-Time Updates", Description: "Live bid tracking with instant notifications and WebSocket connections."},
			{Title: "Voice Bidding", Description: "Revolutionary AI-powered voice assistant for hands-free bidding."},
			{Title: "Secure Platform", Description: "Advanced security measures to protect your data and transactions."},
		},
		About: []string{
			"BidHub is a revolutionary online bidding platform that combines traditional auction functionality with cutting-edge AI voice assistant technology. Our platform allows users to participate in real-time auctions using both traditional web interfaces and innovative voice commands.",
			"Built on WebSocket connections for real-time updates and integrated voice recognition, BidHub provides a seamless and engaging auction experience for both casual bidders and serious collectors.",
		},
	}
}
