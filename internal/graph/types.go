package graph

import (
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/GlebRadaev/coursehub/internal/domain"
)

type paymentResolver struct {
	p *domain.Payment
}

func (r *paymentResolver) ID() graphql.ID { return graphql.ID(r.p.ID.String()) }
func (r *paymentResolver) UserID() graphql.ID { return graphql.ID(r.p.UserID.String()) }
func (r *paymentResolver) CourseID() graphql.ID { return graphql.ID(r.p.CourseID.String()) }
func (r *paymentResolver) Amount() string { return r.p.Amount.StringFixed(2) }
func (r *paymentResolver) Status() string { return string(r.p.Status) }
func (r *paymentResolver) Method() string { return string(r.p.Method) }
func (r *paymentResolver) Reference() string { return r.p.Reference }
func (r *paymentResolver) RefundReason() *string {
	return r.p.RefundReason
}

func (r *paymentResolver) TransactionNote() *string {
	if r.p.TransactionNote == "" {
		return nil
	}
	return &r.p.TransactionNote
}

func (r *paymentResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.p.CreatedAt} }
func (r *paymentResolver) UpdatedAt() graphql.Time { return graphql.Time{Time: r.p.UpdatedAt} }

type enrollmentResolver struct {
	e *domain.Enrollment
}

func (r *enrollmentResolver) ID() graphql.ID { return graphql.ID(r.e.ID.String()) }
func (r *enrollmentResolver) UserID() graphql.ID { return graphql.ID(r.e.UserID.String()) }
func (r *enrollmentResolver) CourseID() graphql.ID { return graphql.ID(r.e.CourseID.String()) }
func (r *enrollmentResolver) Status() string { return string(r.e.Status) }
func (r *enrollmentResolver) Progress() int32 { return int32(r.e.Progress) }

func (r *enrollmentResolver) CompletedLessons() []graphql.ID {
	ids := make([]graphql.ID, 0, len(r.e.CompletedLessons))
	for _, id := range r.e.CompletedLessons {
		ids = append(ids, graphql.ID(id.String()))
	}
	return ids
}

func (r *enrollmentResolver) ExpiryDate() *graphql.Time { return optionalTime(r.e.ExpiryDate) }
func (r *enrollmentResolver) LastAccessedAt() *graphql.Time { return optionalTime(r.e.LastAccessedAt) }

func (r *enrollmentResolver) History() []*historyEntryResolver {
	entries := make([]*historyEntryResolver, 0, len(r.e.History))
	for i := range r.e.History {
		entries = append(entries, &historyEntryResolver{h: r.e.History[i]})
	}
	return entries
}

func (r *enrollmentResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.e.CreatedAt} }
func (r *enrollmentResolver) UpdatedAt() graphql.Time { return graphql.Time{Time: r.e.UpdatedAt} }

type historyEntryResolver struct {
	h domain.HistoryEntry
}

func (r *historyEntryResolver) Status() string { return string(r.h.Status) }
func (r *historyEntryResolver) Progress() int32 { return int32(r.h.Progress) }
func (r *historyEntryResolver) Timestamp() graphql.Time { return graphql.Time{Time: r.h.Timestamp} }

func optionalTime(t *time.Time) *graphql.Time {
	if t == nil {
		return nil
	}
	return &graphql.Time{Time: *t}
}
