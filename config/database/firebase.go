package database

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// InitFirebase creates the Firestore client from base64 encoded service
// account credentials.
func InitFirebase(ctx context.Context, encodedCredentials, projectID string, logger *zap.Logger) (*firestore.Client, error) {
	if encodedCredentials == "" {
		return nil, errors.New("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	}
	if projectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID environment variable is missing")
	}

	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Firebase credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsJSON(decodedCredentials))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	logger.Info("Firestore initialized", zap.String("project", projectID))

	return client, nil
}
