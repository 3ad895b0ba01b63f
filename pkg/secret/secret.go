package secret

import (
	"context"
	"fmt"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	gax "github.com/googleapis/gax-go/v2"
)

// Client is an interface for the secretmanager.Client
// Ref: https://pkg.go.dev/cloud.google.com/go/secretmanager/apiv1
// This interface is used for mocking the secretmanager.Client in unit tests.
type Client interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
}

// Latest returns the payload of the latest version of a secret.
func Latest(ctx context.Context, client Client, projectID string, secretName string) (string, error) {
	secretValue, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: VersionName(projectID, secretName),
	})
	if err != nil {
		return "", fmt.Errorf("failed to access secret %s: %w", secretName, err)
	}
	return string(secretValue.GetPayload().GetData()), nil
}

// VersionName returns the resource name of the latest version of a secret.
// E.g., projects/my-project/secrets/vision-api-key/versions/latest
func VersionName(projectID string, secretName string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretName)
}
