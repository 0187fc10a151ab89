package feed

import (
	"time"

	"github.com/shopspring/decimal"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/value"
)

// FallbackAuctions is the catalogue served when the feed cannot be used. End
// times are relative to now; one record has already ended.
func FallbackAuctions(now time.Time) entity.AuctionList {
	return entity.AuctionList{
		{
			ID:           "1",
			Name:         "Vintage Rolex Submariner",
			Category:     value.CategoryWatches,
			CurrentPrice: decimal.NewFromInt(15000),
			NextBid:      decimal.NewFromInt(15500),
			Bids:         23,
			EndTime:      now.Add(2 * time.Hour),
			ImageURL:     "https://images.unsplash.com/photo-1620625443224-b3695579455b?q=80&w=2864&auto=format&fit=crop",
			Status:       value.StatusActive,
		},
		{
			ID:           "2",
			Name:         "Rare Pokémon Card Collection",
			Category:     value.CategoryCollectibles,
			CurrentPrice: decimal.NewFromInt(2500),
			NextBid:      decimal.NewFromInt(2600),
			Bids:         45,
			EndTime:      now.Add(3 * time.Hour),
			ImageURL:     "https://images.unsplash.com/photo-1635832029474-1363593605ab?q=80&w=2864&auto=format&fit=crop",
			Status:       value.StatusActive,
		},
		{
			ID:           "3",
			Name:         "Antique Chinese Vase",
			Category:     value.CategoryArtAndAntiques,
			CurrentPrice: decimal.NewFromInt(8900),
			NextBid:      decimal.NewFromInt(9000),
			Bids:         12,
			EndTime:      now.Add(-time.Hour),
			ImageURL:     "https://images.unsplash.com/photo-1579783928621-7a13d2687b43?q=80&w=2787&auto=format&fit=crop",
			Status:       value.StatusEnded,
		},
		{
			ID:           "4",
			Name:         "Classic Gibson Guitar",
			Category:     value.CategoryMusicalInstruments,
			CurrentPrice: decimal.NewFromInt(3200),
			NextBid:      decimal.NewFromInt(3300),
			Bids:         16,
			EndTime:      now.Add(time.Hour),
			ImageURL:     "https://images.unsplash.com/photo-1550291652-6ea9114a47b1?q=80&w=2940&auto=format&fit=crop",
			Status:       value.StatusActive,
		},
		{
			ID:           "5",
			Name:         "Luxury Handbag Collection",
			Category:     value.CategoryFashion,
			CurrentPrice: decimal.NewFromInt(1200),
			NextBid:      decimal.NewFromInt(1300),
			Bids:         31,
			EndTime:      now.Add(15 * time.Minute),
			ImageURL:     "https://images.unsplash.com/photo-1590737149929-23a3c2292e92?q=80&w=2787&auto=format&fit=crop",
			Status:       value.StatusEndingSoon,
		},
		{
			ID:           "6",
			Name:         "Vintage Camera Equipment",
			Category:     value.CategoryElectronics,
			CurrentPrice: decimal.NewFromInt(750),
			NextBid:      decimal.NewFromInt(800),
			Bids:         9,
			EndTime:      now.Add(5 * time.Hour),
			ImageURL:     "https://images.unsplash.com/photo-1512756290469-ec264b7fbf87?q=80&w=2856&auto=format&fit=crop",
			Status:       value.StatusActive,
		},
	}
}
