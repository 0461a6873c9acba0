package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/logilink/logilink-client/internal/adapter"
	"github.com/logilink/logilink-client/internal/session"
	"github.com/logilink/logilink-client/internal/store"
	"github.com/logilink/logilink-client/models"
)

const (
	mobileNumberLength = 10
	loginTypeOTP       = "otp"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.BackendAdapter
	sessions   *session.Store
	flow       *session.Flow

	deviceType string
	// deviceToken identifies this installation to the backend. Generated
	// once per process; the backend treats it as an opaque string.
	deviceToken string
}

func NewClientAuthService(localStore *store.ClientStorages, backendAdapter adapter.BackendAdapter, sessions *session.Store, deviceType string) ClientAuthService {
	return &clientAuthService{
		localStore:  localStore,
		adapter:     backendAdapter,
		sessions:    sessions,
		flow:        session.NewFlow(),
		deviceType:  deviceType,
		deviceToken: uuid.NewString(),
	}
}

func (a *clientAuthService) CheckPhone(ctx context.Context, mobileNumber string) (bool, error) {
	if !validMobileNumber(mobileNumber) {
		return false, fmt.Errorf("%w: %q", ErrInvalidMobileNumber, mobileNumber)
	}

	exists, err := a.adapter.CheckMobile(ctx, mobileNumber)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCheckMobileOnServer, err)
	}

	// An unregistered number never enters the login flow; the UI branches
	// to registration instead.
	if exists {
		a.flow.PhoneChecked(mobileNumber)
	}

	return exists, nil
}

func (a *clientAuthService) RequestOTP(ctx context.Context, mobileNumber string) (models.OTPChallenge, error) {
	if !validMobileNumber(mobileNumber) {
		return models.OTPChallenge{}, fmt.Errorf("%w: %q", ErrInvalidMobileNumber, mobileNumber)
	}
	if err := a.flow.RequestAllowed(mobileNumber); err != nil {
		return models.OTPChallenge{}, err
	}

	resp, err := a.adapter.SendOTP(ctx, mobileNumber)
	if err != nil {
		// The flow stays where it was: a failed delivery must not let
		// the UI advance to code entry.
		return models.OTPChallenge{}, fmt.Errorf("%w: %v", ErrSendOTPOnServer, err)
	}

	if err := a.flow.ChallengeRequested(mobileNumber); err != nil {
		return models.OTPChallenge{}, err
	}

	return models.OTPChallenge{
		MobileNumber: mobileNumber,
		Sent:         true,
		EchoCode:     resp.Code,
		RequestedAt:  time.Now(),
	}, nil
}

func (a *clientAuthService) VerifyOTP(ctx context.Context, mobileNumber string, code string) (models.Identity, error) {
	if len(code) != models.OTPLength {
		return models.Identity{}, fmt.Errorf("%w: got %d digits, want %d", ErrInvalidOTPLength, len(code), models.OTPLength)
	}
	if err := a.flow.VerifyAllowed(mobileNumber); err != nil {
		return models.Identity{}, err
	}

	a.sessions.Apply(func(st session.State) session.State {
		return session.WithLoading(st, true)
	})

	identity, err := a.adapter.LoginOTP(ctx, models.LoginOTPRequest{
		MobileNumber: mobileNumber,
		OTP:          code,
		DeviceType:   a.deviceType,
		DeviceToken:  a.deviceToken,
		LoginType:    loginTypeOTP,
	})
	if err != nil {
		a.sessions.Apply(func(st session.State) session.State {
			return session.WithError(st, "login failed")
		})
		return models.Identity{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	a.sessions.Apply(func(st session.State) session.State {
		return session.WithIdentity(st, identity)
	})
	a.flow.Reset()

	if err := a.persistSession(ctx); err != nil {
		return identity, fmt.Errorf("persist session: %w", err)
	}

	return identity, nil
}

func (a *clientAuthService) Register(ctx context.Context, form models.RegistrationForm) (models.User, error) {
	if !validMobileNumber(form.MobileNumber) {
		return models.User{}, fmt.Errorf("%w: %q", ErrInvalidMobileNumber, form.MobileNumber)
	}

	user, err := a.adapter.Register(ctx, form)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	// The number is registered now; let the user request a code right away.
	a.flow.PhoneChecked(form.MobileNumber)

	return user, nil
}

func (a *clientAuthService) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	if !a.sessions.Get().Authenticated() {
		return models.User{}, ErrNotAuthenticated
	}

	updated, err := a.adapter.UpdateProfile(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	var mergeErr error
	a.sessions.Apply(func(st session.State) session.State {
		next, err := session.WithMergedProfile(st, updated)
		if err != nil {
			mergeErr = err
			return st
		}
		return next
	})
	if mergeErr != nil {
		return models.User{}, mergeErr
	}

	if err := a.persistSession(ctx); err != nil {
		return updated, fmt.Errorf("persist session: %w", err)
	}

	return updated, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.flow.Reset()
	a.sessions.Apply(session.Cleared)
	a.adapter.SetToken("")

	if err := a.localStore.StateRepository.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	return nil
}

// persistSession writes the current identity slice to durable storage, or
// clears it when the session is anonymous.
func (a *clientAuthService) persistSession(ctx context.Context) error {
	st := a.sessions.Get()
	if st.User == nil {
		return a.localStore.StateRepository.ClearSession(ctx)
	}

	return a.localStore.StateRepository.SaveSession(ctx, store.PersistedSession{
		User:         *st.User,
		AccessToken:  st.AccessToken,
		RefreshToken: st.RefreshToken,
	})
}

func validMobileNumber(mobileNumber string) bool {
	if len(mobileNumber) != mobileNumberLength {
		return false
	}
	for _, r := range mobileNumber {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
