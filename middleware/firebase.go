package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseVerifier validates Firebase ID tokens. The service account arrives
// base64-encoded in FB_SERVICE_KEY.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(ctx context.Context, serviceKeyBase64 string) (*FirebaseVerifier, error) {
	decoded, err := base64.StdEncoding.DecodeString(serviceKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("decode FB_SERVICE_KEY: %w", err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(decoded))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return "", errors.New("token carries no email claim")
	}
	return email, nil
}
