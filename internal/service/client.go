package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"artdesk.app/api/common/id"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/store"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientName     = errors.New("client name is required")
)

// ClientInput carries the mutable profile fields of a client account.
type ClientInput struct {
	Name        string
	ContactName *string
	Email       *string
	Phone       *string
	Notes       *string
	WebsiteURL  *string
	Status      string
}

// CollaboratorList is the membership roster of a client together with
// the cap derived from the owner's plan.
type CollaboratorList struct {
	Memberships      []model.Membership `json:"memberships"`
	Count            int64              `json:"count"`
	MaxCollaborators int64              `json:"max_collaborators"`
}

type ClientService interface {
	Create(ctx context.Context, ownerID int64, input ClientInput) (*model.Client, error)
	Get(ctx context.Context, actorID, clientID int64) (*model.Client, error)
	List(ctx context.Context, actorID int64) ([]model.Client, error)
	Update(ctx context.Context, actorID, clientID int64, input ClientInput) (*model.Client, error)
	Delete(ctx context.Context, actorID, clientID int64) error
	Restore(ctx context.Context, actorID, clientID int64) error
	Collaborators(ctx context.Context, actorID, clientID int64) (*CollaboratorList, error)
}

type clientService struct {
	authorizer      Authorizer
	clientStore     store.ClientStore
	membershipStore store.MembershipStore
	txRunner        TxRunner
	cascader        *Cascader
}

func NewClientService(
	authorizer Authorizer,
	clientStore store.ClientStore,
	membershipStore store.MembershipStore,
	txRunner TxRunner,
	cascader *Cascader,
) ClientService {
	return &clientService{
		authorizer:      authorizer,
		clientStore:     clientStore,
		membershipStore: membershipStore,
		txRunner:        txRunner,
		cascader:        cascader,
	}
}

func (s *clientService) Create(ctx context.Context, ownerID int64, input ClientInput) (*model.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrClientName
	}

	client := &model.Client{
		ID:          id.New(),
		Name:        input.Name,
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		Notes:       input.Notes,
		WebsiteURL:  input.WebsiteURL,
		Status:      input.Status,
	}
	if client.Status == "" {
		client.Status = "active"
	}

	// The creator becomes the first owner in the same transaction.
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Clients().Create(ctx, client); err != nil {
			return err
		}
		return stores.Memberships().Create(ctx, &model.Membership{
			ID:       id.New(),
			ClientID: client.ID,
			UserID:   ownerID,
			Role:     model.RoleOwner,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	slog.InfoContext(ctx, "client created",
		"client_id", client.ID,
		"owner_id", ownerID,
	)

	return client, nil
}

func (s *clientService) Get(ctx context.Context, actorID, clientID int64) (*model.Client, error) {
	client, err := s.clientStore.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("getting client: %w", err)
	}

	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesAnyMember...); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context, actorID int64) ([]model.Client, error) {
	return s.clientStore.ListByUser(ctx, actorID)
}

func (s *clientService) Update(ctx context.Context, actorID, clientID int64, input ClientInput) (*model.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrClientName
	}

	client, err := s.clientStore.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("getting client: %w", err)
	}

	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesEditors...); err != nil {
		return nil, err
	}

	client.Name = input.Name
	client.ContactName = input.ContactName
	client.Email = input.Email
	client.Phone = input.Phone
	client.Notes = input.Notes
	client.WebsiteURL = input.WebsiteURL
	if input.Status != "" {
		client.Status = input.Status
	}

	if err := s.clientStore.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("updating client: %w", err)
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, actorID, clientID int64) error {
	if _, err := s.clientStore.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("getting client: %w", err)
	}

	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesOwnerOnly...); err != nil {
		return err
	}

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		return s.cascader.SoftDelete(ctx, stores, KindClient, clientID)
	})
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	slog.InfoContext(ctx, "client soft-deleted",
		"client_id", clientID,
		"deleted_by", actorID,
	)
	return nil
}

func (s *clientService) Restore(ctx context.Context, actorID, clientID int64) error {
	client, err := s.clientStore.GetByIDIncludingDeleted(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("getting client: %w", err)
	}
	if client.DeletedAt == nil {
		return nil
	}

	// The cascade tombstoned the actor's membership along with the
	// client, so authorization has to read through tombstones here.
	if err := s.authorizeOwnerIncludingDeleted(ctx, actorID, clientID); err != nil {
		return err
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		return s.cascader.Restore(ctx, stores, KindClient, clientID)
	})
	if err != nil {
		return fmt.Errorf("restoring client: %w", err)
	}

	slog.InfoContext(ctx, "client restored",
		"client_id", clientID,
		"restored_by", actorID,
	)
	return nil
}

func (s *clientService) Collaborators(ctx context.Context, actorID, clientID int64) (*CollaboratorList, error) {
	if _, err := s.authorizer.Authorize(ctx, actorID, clientID, RolesAnyMember...); err != nil {
		return nil, err
	}

	memberships, err := s.membershipStore.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}

	max, err := s.authorizer.MaxCollaborators(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &CollaboratorList{
		Memberships:      memberships,
		Count:            int64(len(memberships)),
		MaxCollaborators: max,
	}, nil
}

func (s *clientService) authorizeOwnerIncludingDeleted(ctx context.Context, actorID, clientID int64) error {
	memberships, err := s.membershipStore.ListByClientIncludingDeleted(ctx, clientID)
	if err != nil {
		return fmt.Errorf("listing memberships: %w", err)
	}
	for _, m := range memberships {
		if m.UserID == actorID && m.Role == model.RoleOwner {
			return nil
		}
	}
	return ErrUnauthorized
}
