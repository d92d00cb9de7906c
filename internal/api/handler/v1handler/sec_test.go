package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"utilbox/internal/api/handler/v1handler"
	"utilbox/internal/api/specs/v1specs"
	"utilbox/pkg/domain"
	"utilbox/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// genRSAKeys generates an RSA key pair and returns the private key and the
// PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestNewSecHandler_DisabledWithoutKey(t *testing.T) {
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{})
	require.NoError(t, err)
	require.False(t, sh.Enabled())

	ctx, err := sh.HandleBearerAuth(context.Background(), v1specs.CheckPalindromeOperation, v1specs.BearerAuth{Token: "anything"})
	require.NoError(t, err)
	require.Equal(t, domain.UserID{}, v1handler.GetUserIDFromContext(ctx))
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	require.True(t, sh.Enabled())

	uid := uuid.New()
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour))

	ctx, err := sh.HandleBearerAuth(context.Background(), "", v1specs.BearerAuth{Token: tkn})
	require.NoError(t, err)
	require.Equal(t, domain.UserID(uid), v1handler.GetUserIDFromContext(ctx))
}

func TestHandleBearerAuth_Rejections(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	privOther, _ := genRSAKeys(t)
	now := time.Now()

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tokens := map[string]string{
		"invalid signature": signJWTRS256(t, privOther, uuid.NewString(), now, now.Add(time.Hour)),
		"expired":           signJWTRS256(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-time.Hour)),
		"invalid subject":   signJWTRS256(t, priv, "not-a-uuid", now, now.Add(time.Hour)),
		"wrong algorithm":   hs256,
		"garbage":           "abc.def.ghi",
	}

	for name, tkn := range tokens {
		t.Run(name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), "", v1specs.BearerAuth{Token: tkn})
			require.Error(t, err)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestSecMiddleware_EnforcesToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	tk, h := newTestHandler(t)
	srv := newTestServer(t, h, sh)

	rec := serve(t, srv, http.MethodPost, "/v1/palindrome", `{"text":"aba"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())

	uid := uuid.New()
	tk.EXPECT().CheckPalindrome(gomock.Any(), "aba").DoAndReturn(
		func(ctx context.Context, raw string) domain.PalindromeResult {
			require.Equal(t, domain.UserID(uid), v1handler.GetUserIDFromContext(ctx))

			return domain.PalindromeResult{Input: raw, Normalized: raw, Palindrome: true}
		})

	now := time.Now()
	req := httptest.NewRequest(http.MethodPost, "/v1/palindrome", strings.NewReader(`{"text":"aba"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour)))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSecMiddleware_InvalidToken(t *testing.T) {
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	_, h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/tip", strings.NewReader(`{"subtotal":"1","tipPercentage":"1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	rec := httptest.NewRecorder()
	newTestServer(t, h, sh).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"invalid token"}`, rec.Body.String())
}

func TestSecMiddleware_DisabledPassesThrough(t *testing.T) {
	tk, h := newTestHandler(t)
	tk.EXPECT().CountCharacters(gomock.Any(), "ab").Return(domain.CharacterTally{Vowels: 1, Consonants: 1})

	req := httptest.NewRequest(http.MethodPost, "/v1/characters", strings.NewReader(`{"text":"ab"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer ignored")
	rec := httptest.NewRecorder()
	newTestServer(t, h, nil).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
