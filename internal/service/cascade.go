package service

import (
	"context"
	"fmt"

	"artdesk.app/api/internal/model"
)

// Kind identifies an entity type registered with the cascade engine.
type Kind string

const (
	KindClient       Kind = "client"
	KindUser         Kind = "user"
	KindMembership   Kind = "membership"
	KindInvitation   Kind = "invitation"
	KindTask         Kind = "task"
	KindArt          Kind = "art"
	KindArtComment   Kind = "art_comment"
	KindArtFeedback  Kind = "art_feedback"
	KindSubscription Kind = "subscription"
)

// dependentRow is one reachable child instance, with its current
// tombstone state. Restore only recurses into tombstoned rows.
type dependentRow struct {
	ID      int64
	Deleted bool
}

// dependent is a typed accessor from a parent row to its child rows.
// Listing must include tombstoned rows so delete stays idempotent and
// restore can find what to resurrect.
type dependent struct {
	kind Kind
	list func(ctx context.Context, s StoreProvider, parentID int64) ([]dependentRow, error)
}

// descriptor registers an entity type with the engine: how to set and
// clear its tombstone, how to remove it permanently, and which
// relations it cascades over.
type descriptor struct {
	tombstone      func(ctx context.Context, s StoreProvider, id int64) error
	clearTombstone func(ctx context.Context, s StoreProvider, id int64) error
	hardDelete     func(ctx context.Context, s StoreProvider, id int64) error
	dependents     []dependent
}

// Cascader propagates soft deletes and restores across the declared
// ownership graph. It performs no authorization; callers must have
// cleared the access evaluator first, and must run it inside the
// operation's transaction.
type Cascader struct {
	registry map[Kind]descriptor
}

func NewCascader() *Cascader {
	return &Cascader{registry: buildRegistry()}
}

// SoftDelete tombstones the entity, then recursively soft-deletes every
// instance reachable through its declared relations. Already-tombstoned
// dependents are visited again; the operation is idempotent.
func (c *Cascader) SoftDelete(ctx context.Context, s StoreProvider, kind Kind, id int64) error {
	d, ok := c.registry[kind]
	if !ok {
		return fmt.Errorf("unregistered entity kind %q", kind)
	}

	if err := d.tombstone(ctx, s, id); err != nil {
		return fmt.Errorf("tombstoning %s %d: %w", kind, id, err)
	}

	for _, dep := range d.dependents {
		rows, err := dep.list(ctx, s, id)
		if err != nil {
			return fmt.Errorf("listing %s dependents of %s %d: %w", dep.kind, kind, id, err)
		}
		for _, row := range rows {
			if err := c.SoftDelete(ctx, s, dep.kind, row.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// Restore clears the entity's tombstone, then recursively restores
// every currently tombstoned dependent. The engine does not track why
// a dependent was tombstoned: restoring a parent resurrects children
// that were deleted independently and earlier.
func (c *Cascader) Restore(ctx context.Context, s StoreProvider, kind Kind, id int64) error {
	d, ok := c.registry[kind]
	if !ok {
		return fmt.Errorf("unregistered entity kind %q", kind)
	}

	if err := d.clearTombstone(ctx, s, id); err != nil {
		return fmt.Errorf("restoring %s %d: %w", kind, id, err)
	}

	for _, dep := range d.dependents {
		rows, err := dep.list(ctx, s, id)
		if err != nil {
			return fmt.Errorf("listing %s dependents of %s %d: %w", dep.kind, kind, id, err)
		}
		for _, row := range rows {
			if !row.Deleted {
				continue
			}
			if err := c.Restore(ctx, s, dep.kind, row.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// Purge removes the row permanently, skipping the cascade entirely.
func (c *Cascader) Purge(ctx context.Context, s StoreProvider, kind Kind, id int64) error {
	d, ok := c.registry[kind]
	if !ok {
		return fmt.Errorf("unregistered entity kind %q", kind)
	}
	if err := d.hardDelete(ctx, s, id); err != nil {
		return fmt.Errorf("purging %s %d: %w", kind, id, err)
	}
	return nil
}

func buildRegistry() map[Kind]descriptor {
	return map[Kind]descriptor{
		KindClient: {
			tombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Clients().Delete(ctx, id)
			},
			clearTombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Clients().Restore(ctx, id)
			},
			hardDelete: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Clients().Purge(ctx, id)
			},
			dependents: []dependent{
				{kind: KindTask, list: func(ctx context.Context, s StoreProvider, id int64) ([]dependentRow, error) {
					tasks, err := s.Tasks().ListByClientIncludingDeleted(ctx, id)
					if err != nil {
						return nil, err
					}
					return taskRows(tasks), nil
				}},
				{kind: KindMembership, list: func(ctx context.Context, s StoreProvider, id int64) ([]dependentRow, error) {
					memberships, err := s.Memberships().ListByClientIncludingDeleted(ctx, id)
					if err != nil {
						return nil, err
					}
					return membershipRows(memberships), nil
				}},
				{kind: KindInvitation, list: func(ctx context.Context, s StoreProvider, id int64) ([]dependentRow, error) {
					invitations, err := s.Invitations().ListByClientIncludingDeleted(ctx, id)
					if err != nil {
						return nil, err
					}
					return invitationRows(invitations), nil
				}},
			},
		},
		KindUser: {
			tombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Users().Delete(ctx, id)
			},
			clearTombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Users().Restore(ctx, id)
			},
			hardDelete: func(ctx context.Context, s StoreProvider, id int64) error {
				return fmt.Errorf("users cannot be purged")
			},
			dependents: []dependent{
				{kind: KindMembership, list: func(ctx context.Context, s StoreProvider, id int64) ([]dependentRow, error) {
					memberships, err := s.Memberships().ListByUserIncludingDeleted(ctx, id)
					if err != nil {
						return nil, err
					}
					return membershipRows(memberships), nil
				}},
				{kind: KindSubscription, list: func(ctx context.Context, s StoreProvider, id int64) ([]dependentRow, error) {
					subscriptions, err := s.Subscriptions().ListByUserIncludingDeleted(ctx, id)
					if err != nil {
						return nil, err
					}
					rows := make([]dependentRow, len(subscriptions))
					for i, sub := range subscriptions {
						rows[i] = dependentRow{ID: sub.ID, Deleted: sub.DeletedAt != nil}
					}
					return rows, nil
				}},
				{kind: KindTask, list: func(ctx context.Context, s StoreProvider, id int64) ([]dependentRow, error) {
					tasks, err := s.Tasks().ListByAssigneeIncludingDeleted(ctx, id)
					if err != nil {
						return nil, err
					}
					return taskRows(tasks), nil
				}},
				{kind: KindArtComment, list: func(ctx context.Context, s StoreProvider, id int64) ([]dependentRow, error) {
					comments, err := s.ArtComments().ListByUserIncludingDeleted(ctx, id)
					if err != nil {
						return nil, err
					}
					return commentRows(comments), nil
				}},
				{kind: KindArtFeedback, list: func(ctx context.Context, s StoreProvider, id int64) ([]dependentRow, error) {
					feedbacks, err := s.ArtFeedbacks().ListByUserIncludingDeleted(ctx, id)
					if err != nil {
						return nil, err
					}
					return feedbackRows(feedbacks), nil
				}},
			},
		},
		KindTask: {
			tombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Tasks().Delete(ctx, id)
			},
			clearTombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Tasks().Restore(ctx, id)
			},
			hardDelete: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Tasks().Purge(ctx, id)
			},
			dependents: []dependent{
				{kind: KindArt, list: func(ctx context.Context, s StoreProvider, id int64) ([]dependentRow, error) {
					arts, err := s.Arts().ListByTaskIncludingDeleted(ctx, id)
					if err != nil {
						return nil, err
					}
					rows := make([]dependentRow, len(arts))
					for i, art := range arts {
						rows[i] = dependentRow{ID: art.ID, Deleted: art.DeletedAt != nil}
					}
					return rows, nil
				}},
			},
		},
		KindArt: {
			tombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Arts().Delete(ctx, id)
			},
			clearTombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Arts().Restore(ctx, id)
			},
			hardDelete: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Arts().Purge(ctx, id)
			},
			dependents: []dependent{
				{kind: KindArtComment, list: func(ctx context.Context, s StoreProvider, id int64) ([]dependentRow, error) {
					comments, err := s.ArtComments().ListByArtIncludingDeleted(ctx, id)
					if err != nil {
						return nil, err
					}
					return commentRows(comments), nil
				}},
				{kind: KindArtFeedback, list: func(ctx context.Context, s StoreProvider, id int64) ([]dependentRow, error) {
					feedbacks, err := s.ArtFeedbacks().ListByArtIncludingDeleted(ctx, id)
					if err != nil {
						return nil, err
					}
					return feedbackRows(feedbacks), nil
				}},
			},
		},
		KindMembership: {
			tombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Memberships().Delete(ctx, id)
			},
			clearTombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Memberships().Restore(ctx, id)
			},
			hardDelete: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Memberships().Purge(ctx, id)
			},
		},
		KindInvitation: {
			tombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Invitations().Delete(ctx, id)
			},
			clearTombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Invitations().Restore(ctx, id)
			},
			hardDelete: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Invitations().Purge(ctx, id)
			},
		},
		KindArtComment: {
			tombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.ArtComments().Delete(ctx, id)
			},
			clearTombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.ArtComments().Restore(ctx, id)
			},
			hardDelete: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.ArtComments().Purge(ctx, id)
			},
		},
		KindArtFeedback: {
			tombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.ArtFeedbacks().Delete(ctx, id)
			},
			clearTombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.ArtFeedbacks().Restore(ctx, id)
			},
			hardDelete: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.ArtFeedbacks().Purge(ctx, id)
			},
		},
		KindSubscription: {
			tombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Subscriptions().Delete(ctx, id)
			},
			clearTombstone: func(ctx context.Context, s StoreProvider, id int64) error {
				return s.Subscriptions().Restore(ctx, id)
			},
			hardDelete: func(ctx context.Context, s StoreProvider, id int64) error {
				return fmt.Errorf("subscriptions cannot be purged")
			},
		},
	}
}

func taskRows(tasks []model.Task) []dependentRow {
	rows := make([]dependentRow, len(tasks))
	for i, t := range tasks {
		rows[i] = dependentRow{ID: t.ID, Deleted: t.DeletedAt != nil}
	}
	return rows
}

func membershipRows(memberships []model.Membership) []dependentRow {
	rows := make([]dependentRow, len(memberships))
	for i, m := range memberships {
		rows[i] = dependentRow{ID: m.ID, Deleted: m.DeletedAt != nil}
	}
	return rows
}

func invitationRows(invitations []model.Invitation) []dependentRow {
	rows := make([]dependentRow, len(invitations))
	for i, inv := range invitations {
		rows[i] = dependentRow{ID: inv.ID, Deleted: inv.DeletedAt != nil}
	}
	return rows
}

func commentRows(comments []model.ArtComment) []dependentRow {
	rows := make([]dependentRow, len(comments))
	for i, c := range comments {
		rows[i] = dependentRow{ID: c.ID, Deleted: c.DeletedAt != nil}
	}
	return rows
}

func feedbackRows(feedbacks []model.ArtFeedback) []dependentRow {
	rows := make([]dependentRow, len(feedbacks))
	for i, f := range feedbacks {
		rows[i] = dependentRow{ID: f.ID, Deleted: f.DeletedAt != nil}
	}
	return rows
}
