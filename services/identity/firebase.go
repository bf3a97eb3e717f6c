package identity

import (
	"context"
	"fmt"

	"poojaghar/utils"

	"go.uber.org/zap"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// FirebaseProvider implements Provider against Firebase Auth. Credential
// flows (sign-up, password sign-in) go through the Identity Toolkit REST
// surface keyed by the project's web API key; sign-out revokes refresh
// tokens through the Admin SDK client in utils.
type FirebaseProvider struct {
	rp *identitytoolkit.RelyingpartyService
}

// NewFirebaseProvider builds a provider from the project's web API key.
func NewFirebaseProvider(apiKey string) (*FirebaseProvider, error) {
	svc, err := identitytoolkit.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity toolkit service: %w", err)
	}
	return &FirebaseProvider{rp: svc.Relyingparty}, nil
}

// CreateAccount registers a new email/password account.
func (p *FirebaseProvider) CreateAccount(email, password string) (*Principal, error) {
	req := &identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}
	resp, err := p.rp.SignupNewUser(req).Do()
	if err != nil {
		return nil, classify(err)
	}

	utils.GetLogger().Info("identity: account created", zap.String("uid", resp.LocalId))
	return &Principal{UID: resp.LocalId, Email: resp.Email, IDToken: resp.IdToken}, nil
}

// SignIn verifies an email/password credential.
func (p *FirebaseProvider) SignIn(email, password string) (*Principal, error) {
	req := &identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}
	resp, err := p.rp.VerifyPassword(req).Do()
	if err != nil {
		return nil, classify(err)
	}

	utils.GetLogger().Info("identity: sign-in succeeded", zap.String("uid", resp.LocalId))
	return &Principal{UID: resp.LocalId, Email: resp.Email, IDToken: resp.IdToken}, nil
}

// SignOut revokes the user's refresh tokens and drops any cached verified
// token for the user, so outstanding ID tokens die with the session.
func (p *FirebaseProvider) SignOut(uid string) error {
	ctx := context.Background()
	if err := utils.FirebaseAuthClient.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens for %s: %w", uid, err)
	}

	authCache := utils.GetAuthCacheClient()
	setKey := utils.AuthUserTokensPrefix + uid
	hashes, err := authCache.SMembers(ctx, setKey).Result()
	if err == nil {
		for _, hash := range hashes {
			_ = authCache.Del(ctx, utils.AuthCachePrefix+hash).Err()
		}
	}
	_ = authCache.Del(ctx, setKey).Err()

	utils.GetLogger().Info("identity: signed out", zap.String("uid", uid))
	return nil
}
