package impl

import (
	"sort"

	"peeko/internal/domain/entity"
)

// buildInbox groups messages by conversation partner in a single pass. Each summary carries the
// partner's latest message and the number of unopened messages addressed to owner. Summaries are
// ordered by latest activity, newest first. Partners missing from users are named by their code.
func buildInbox(owner string, messages []*entity.Message, users []*entity.User) []*entity.ConversationSummary {
	byCode := make(map[string]*entity.User, len(users))
	for _, user := range users {
		byCode[user.UserCode] = user
	}

	groups := make(map[string]*entity.ConversationSummary)
	for _, msg := range messages {
		partner := msg.PartnerOf(owner)

		summary, ok := groups[partner]
		if !ok {
			summary = &entity.ConversationSummary{PartnerCode: partner, PartnerName: partner}
			if user, found := byCode[partner]; found {
				summary.PartnerName = user.DisplayName()
				id := user.ID
				summary.PartnerUserID = &id
			}
			groups[partner] = summary
		}

		// Input is oldest first, so on equal timestamps the later insert wins.
		if summary.LastMessage == nil || !msg.CreatedAt.Before(summary.LastMessage.CreatedAt) {
			summary.LastMessage = msg
		}

		if msg.DestinationCode == owner && !msg.Opened {
			summary.UnreadCount++
		}
	}

	inbox := make([]*entity.ConversationSummary, 0, len(groups))
	for _, summary := range groups {
		inbox = append(inbox, summary)
	}

	sort.Slice(inbox, func(i, j int) bool {
		a, b := inbox[i].LastMessage.CreatedAt, inbox[j].LastMessage.CreatedAt
		if a.Equal(b) {
			return inbox[i].PartnerCode < inbox[j].PartnerCode
		}

		return a.After(b)
	})

	return inbox
}

// partnerCodes lists the distinct partners of owner across messages.
func partnerCodes(owner string, messages []*entity.Message) []string {
	seen := make(map[string]struct{})
	codes := make([]string, 0)
	for _, msg := range messages {
		partner := msg.PartnerOf(owner)
		if _, ok := seen[partner]; ok {
			continue
		}
		seen[partner] = struct{}{}
		codes = append(codes, partner)
	}

	return codes
}
