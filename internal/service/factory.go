package service

import (
	"time"

	"artdesk.app/api/internal/storage"
	"artdesk.app/api/internal/store"
)

type Services struct {
	stores     *store.Stores
	txRunner   TxRunner
	cascader   *Cascader
	notifier   InvitationNotifier
	files      storage.FileStore
	sessionTTL time.Duration
}

func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	notifier InvitationNotifier,
	files storage.FileStore,
	sessionTTL time.Duration,
) *Services {
	return &Services{
		stores:     stores,
		txRunner:   txRunner,
		cascader:   NewCascader(),
		notifier:   notifier,
		files:      files,
		sessionTTL: sessionTTL,
	}
}

func (s *Services) Authorizer() Authorizer {
	return NewAuthorizer(
		s.stores.Memberships(),
		s.stores.Tasks(),
		s.stores.Arts(),
		s.stores.Subscriptions(),
	)
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.sessionTTL)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users(), s.stores.Subscriptions(), s.txRunner, s.cascader)
}

func (s *Services) Clients() ClientService {
	return NewClientService(s.Authorizer(), s.stores.Clients(), s.stores.Memberships(), s.txRunner, s.cascader)
}

func (s *Services) Memberships() MembershipService {
	return NewMembershipService(s.Authorizer(), s.stores.Memberships(), s.txRunner, s.cascader)
}

func (s *Services) Invitations() InvitationService {
	return NewInvitationService(
		s.Authorizer(),
		s.stores.Users(),
		s.stores.Clients(),
		s.stores.Invitations(),
		s.stores.Memberships(),
		s.txRunner,
		s.notifier,
	)
}

func (s *Services) Tasks() TaskService {
	return NewTaskService(s.Authorizer(), s.stores.Tasks(), s.stores.Memberships(), s.txRunner, s.cascader)
}

func (s *Services) Arts() ArtService {
	return NewArtService(
		s.Authorizer(),
		s.stores.Arts(),
		s.stores.ArtComments(),
		s.stores.ArtFeedbacks(),
		s.txRunner,
		s.cascader,
		s.files,
	)
}
