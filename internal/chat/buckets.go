package chat

import (
	"fmt"
	"time"

	"github.com/spec-kit/knowledge-hub/internal/domain"
)

// ConversationGroup is one date bucket of the sidebar listing.
type ConversationGroup struct {
	Label         string
	Conversations []domain.Conversation
}

// GroupByRecency buckets conversations by UpdatedAt relative to now:
// Today, Yesterday, "N days ago" inside a week, calendar date beyond. Pure
// projection over the snapshot; conversation order is preserved inside each
// bucket.
func GroupByRecency(conversations []domain.Conversation, now time.Time) []ConversationGroup {
	var groups []ConversationGroup
	index := make(map[string]int)

	for _, conv := range conversations {
		label := recencyLabel(conv.UpdatedAt, now)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, ConversationGroup{Label: label})
		}
		groups[i].Conversations = append(groups[i].Conversations, conv)
	}
	return groups
}

func recencyLabel(updatedAt, now time.Time) string {
	days := daysBetween(updatedAt, now)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return updatedAt.Format("Jan 2, 2006")
	}
}

// daysBetween counts calendar day boundaries crossed between the two
// instants in the local zone.
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	return int(toDay.Sub(fromDay) / (24 * time.Hour))
}
