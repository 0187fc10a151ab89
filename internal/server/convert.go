package server

import (
	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/service/listing"
	"bidhub/pkg/lox"
	"bidhub/pkg/rest"
)

func newRESTCountdown(c entity.Countdown) rest.Countdown {
	return rest.Countdown{
		Days:    c.Days,
		Hours:   c.Hours,
		Minutes: c.Minutes,
		Seconds: c.Seconds,
		Ended:   c.Ended,
		Text:    c.String(),
	}
}

func newRESTAuctionCard(card listing.Card) rest.AuctionCard {
	return rest.AuctionCard{
		ID:           card.ID.String(),
		Name:         card.Name,
		Category:     card.Category.String(),
		CurrentPrice: card.CurrentPrice,
		NextBid:      card.NextBid,
		Bids:         card.Bids,
		EndTime:      card.EndTime,
		Countdown:    newRESTCountdown(card.Countdown),
		Ended:        card.Ended,
		Badge:        card.Badge,
		Urgency:      card.Urgency.String(),
		ImageURL:     card.ImageURL,
		ActionLabel:  card.ActionLabel,
	}
}

func newRESTAuctionList(view listing.View) rest.AuctionList {
	return rest.AuctionList{
		State:       view.State.String(),
		ActiveCount: view.ActiveCount,
		Total:       view.Total,
		Auctions:    lox.Map(view.Cards, newRESTAuctionCard),
	}
}

func newRESTSession(session entity.Session) rest.Session {
	return rest.Session{
		Token: session.Token,
		User: rest.User{
			Name:  session.User.Name,
			Email: session.User.Email,
		},
	}
}

func newRESTGuide(guide entity.Guide) rest.Guide {
	return rest.Guide{
		Title: guide.Title,
		Intro: guide.Intro,
		Steps: lox.Map(guide.Steps, func(s entity.GuideStep) rest.GuideItem {
			return rest.GuideItem{Title: s.Title, Description: s.Description}
		}),
		Features: lox.Map(guide.Features, func(f entity.GuideFeature) rest.GuideItem {
			return rest.GuideItem{Title: f.Title, Description: f.Description}
		}),
		About: guide.About,
	}
}
