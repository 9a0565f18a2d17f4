package firestore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Credentials holds the document store service-account credential. Either a
// credentials file path or the individual service-account fields must be set.
type Credentials struct {
	CredentialsFile string

	ProjectID           string
	PrivateKeyID        string
	PrivateKey          string
	ClientEmail         string
	ClientID            string
	AuthURI             string
	TokenURI            string
	AuthProviderCertURL string
	ClientCertURL       string
}

type serviceAccount struct {
	Type                string `json:"type"`
	ProjectID           string `json:"project_id"`
	PrivateKeyID        string `json:"private_key_id"`
	PrivateKey          string `json:"private_key"`
	ClientEmail         string `json:"client_email"`
	ClientID            string `json:"client_id"`
	AuthURI             string `json:"auth_uri"`
	TokenURI            string `json:"token_uri"`
	AuthProviderCertURL string `json:"auth_provider_x509_cert_url"`
	ClientCertURL       string `json:"client_x509_cert_url"`
}

// NewClient initializes a Firebase app and returns a Firestore client.
func NewClient(ctx context.Context, creds Credentials) (*firestore.Client, error) {
	opt, err := credentialsOption(creds)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore client: %w", err)
	}
	return client, nil
}

func credentialsOption(creds Credentials) (option.ClientOption, error) {
	if creds.CredentialsFile != "" {
		return option.WithCredentialsFile(creds.CredentialsFile), nil
	}

	account := serviceAccount{
		Type:         "service_account",
		ProjectID:    creds.ProjectID,
		PrivateKeyID: creds.PrivateKeyID,
		// Env vars carry the key with escaped newlines.
		PrivateKey:          strings.ReplaceAll(creds.PrivateKey, `\n`, "\n"),
		ClientEmail:         creds.ClientEmail,
		ClientID:            creds.ClientID,
		AuthURI:             creds.AuthURI,
		TokenURI:            creds.TokenURI,
		AuthProviderCertURL: creds.AuthProviderCertURL,
		ClientCertURL:       creds.ClientCertURL,
	}

	data, err := json.Marshal(account)
	if err != nil {
		return nil, fmt.Errorf("failed to build service account credential: %w", err)
	}
	return option.WithCredentialsJSON(data), nil
}
