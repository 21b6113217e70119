package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAuthProvider(t *testing.T) {
	p := NewLocalAuthProvider(1, internal.NopLogger())

	token, err := p.Issue(internal.Intern{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, "mock-jwt-token", token)

	id, err := p.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	_, err = p.ValidateToken(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTProvider_RoundTrip(t *testing.T) {
	p, err := NewJWTProvider("test-secret", internal.NopLogger())
	require.NoError(t, err)

	token, err := p.Issue(internal.Intern{ID: 3, Name: "Mike Rodriguez"})
	require.NoError(t, err)
	assert.NotEqual(t, PlaceholderToken, token)

	id, err := p.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestJWTProvider_Rejects(t *testing.T) {
	p, err := NewJWTProvider("test-secret", internal.NopLogger())
	require.NoError(t, err)
	other, err := NewJWTProvider("other-secret", internal.NopLogger())
	require.NoError(t, err)

	foreign, err := other.Issue(internal.Intern{ID: 2})
	require.NoError(t, err)
	_, err = p.ValidateToken(context.Background(), foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	issued := time.Now().Add(-48 * time.Hour)
	p.now = func() time.Time { return issued }
	expired, err := p.Issue(internal.Intern{ID: 2})
	require.NoError(t, err)
	p.now = time.Now
	_, err = p.ValidateToken(context.Background(), expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = p.ValidateToken(context.Background(), PlaceholderToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewAuthority(t *testing.T) {
	a, err := NewAuthority("", 1, internal.NopLogger())
	require.NoError(t, err)
	assert.IsType(t, &LocalAuthProvider{}, a)

	a, err = NewAuthority("secret", 1, internal.NopLogger())
	require.NoError(t, err)
	assert.IsType(t, &JWTProvider{}, a)
}

func TestCurrentInternMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p, err := NewJWTProvider("test-secret", internal.NopLogger())
	require.NoError(t, err)

	r := gin.New()
	r.Use(CurrentInternMiddleware(p, 1))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentInternID(c, -1)})
	})

	token, err := p.Issue(internal.Intern{ID: 4})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "no header", header: "", want: `{"id":1}`},
		{name: "valid token", header: "Bearer " + token, want: `{"id":4}`},
		{name: "garbage token", header: "Bearer garbage", want: `{"id":1}`},
		{name: "wrong scheme", header: "Basic " + token, want: `{"id":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}
