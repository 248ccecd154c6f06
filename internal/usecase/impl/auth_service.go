// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "skillhub/internal/delivery/context"
	"skillhub/internal/domain/entity"
	domainerrors "skillhub/internal/domain/errors"
	"skillhub/internal/domain/repository"
	"skillhub/internal/domain/service"
	"skillhub/internal/errors"
	"skillhub/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	verifiers    map[entity.ProviderType]service.OAuthVerifier
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifiers    []service.OAuthVerifier `group:"oauth_verifiers"`
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	verifiers := make(map[entity.ProviderType]service.OAuthVerifier, len(params.Verifiers))
	for _, v := range params.Verifiers {
		verifiers[v.Provider()] = v
	}

	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verifiers:    verifiers,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account bound to the given email and issues a
// token for it. The email pre-check gives the common duplicate a clean
// error; the unique index catches the remaining create/create race.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	exists, err := srv.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email existence")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashed,
		Provider:     entity.ProviderTypeLocal,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			// Lost the race against a concurrent register with the same email.
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID))

	return srv.issueFor(user)
}

// Login verifies a local credential pair. Unknown-user and wrong-password
// both return ErrInvalidCredentials, and the unknown-user path burns a
// dummy bcrypt comparison so the two failures take comparable time.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.DummyCheck(input.Password)

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.PasswordHash == "" {
		// External-provider account with no local credential.
		srv.hasher.DummyCheck(input.Password)

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueFor(user)
}

// OAuthLogin verifies the provider credential, reconciles the asserted
// identity into a user record and issues a token for it.
func (srv *authService) OAuthLogin(ctx context.Context, input usecase.OAuthLoginInput) (*usecase.AuthOutput, error) {
	if !input.Provider.IsExternal() {
		return nil, domainerrors.ErrUnsupportedProvider.WrapMessage(input.Provider.String())
	}

	verifier, ok := srv.verifiers[input.Provider]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider.WrapMessage(string(input.Provider))
	}

	attrs, err := verifier.VerifyCredential(ctx, input.Credential)
	if err != nil {
		srv.log(ctx).Warn("OAuth credential verification failed",
			slog.String("provider", string(input.Provider)), slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage(err.Error())
	}

	profile, err := extractProfile(input.Provider, attrs)
	if err != nil {
		return nil, err
	}

	user, err := srv.reconcile(ctx, profile)
	if err != nil {
		return nil, err
	}

	return srv.issueFor(user)
}

// reconcile maps a verified provider identity onto exactly one user record:
// an existing binding is refreshed, a missing one is created. The unique
// index on (provider, providerUserId) arbitrates concurrent creates; the
// loser re-reads and returns the winning record.
func (srv *authService) reconcile(ctx context.Context, profile *service.OAuthProfile) (*entity.User, error) {
	user, err := srv.userRepo.FindByProvider(ctx, profile.Provider, profile.ProviderUserID)
	if err == nil {
		// The provider binding is permanent; email and display name track
		// whatever the provider asserts on each login.
		changed := false
		if profile.Email != "" && user.Email != profile.Email {
			user.Email = profile.Email
			changed = true
		}
		if profile.Name != "" && user.Name != profile.Name {
			user.Name = profile.Name
			changed = true
		}

		if changed {
			if err := srv.userRepo.Update(ctx, user); err != nil {
				if errors.Is(err, repository.ErrDuplicateUser) {
					// The asserted email is already bound to another account.
					return nil, errors.Wrap(domainerrors.ErrConflict, "email already belongs to another account")
				}

				return nil, errors.Wrap(err, "failed to refresh user profile")
			}
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by provider")
	}

	user = &entity.User{
		Email:          profile.Email,
		Name:           profile.Name,
		Provider:       profile.Provider,
		ProviderUserID: profile.ProviderUserID,
	}

	err = srv.userRepo.Create(ctx, user)
	if err == nil {
		srv.log(ctx).Info("Created user from provider login",
			slog.String("provider", string(profile.Provider)), slog.String("userID", user.ID))

		return user, nil
	}
	if !errors.Is(err, repository.ErrDuplicateUser) {
		return nil, errors.Wrap(err, "failed to create user from provider login")
	}

	// A concurrent reconcile for the same identity won the insert.
	user, err = srv.userRepo.FindByProvider(ctx, profile.Provider, profile.ProviderUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read user after duplicate create")
	}

	return user, nil
}

func (srv *authService) issueFor(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Issue(user.PrincipalID())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// extractProfile normalizes the raw provider attributes into an OAuthProfile.
// Github hides the email for some accounts and the display name is optional,
// so both fall back to values derived from the login handle.
func extractProfile(provider entity.ProviderType, attrs map[string]any) (*service.OAuthProfile, error) {
	switch provider {
	case entity.ProviderTypeGoogle:
		sub, _ := attrs["sub"].(string)
		email, _ := attrs["email"].(string)
		if sub == "" || email == "" {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("google payload missing sub or email")
		}

		name, _ := attrs["name"].(string)

		return &service.OAuthProfile{
			Provider:       provider,
			ProviderUserID: sub,
			Email:          email,
			Name:           name,
		}, nil

	case entity.ProviderTypeGitHub:
		id := stringifyAttr(attrs["id"])
		if id == "" {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("github payload missing id")
		}

		login, _ := attrs["login"].(string)

		email, _ := attrs["email"].(string)
		if email == "" {
			email = login + "@github.com"
		}

		name, _ := attrs["name"].(string)
		if name == "" {
			name = login
		}

		return &service.OAuthProfile{
			Provider:       provider,
			ProviderUserID: id,
			Email:          email,
			Name:           name,
		}, nil

	default:
		return nil, domainerrors.ErrUnsupportedProvider.WrapMessage(string(provider))
	}
}

// stringifyAttr renders a JSON-decoded scalar as its canonical string form.
// Github serializes the user id as a number, which encoding/json decodes
// into float64.
func stringifyAttr(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
