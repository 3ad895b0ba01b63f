package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	gcs "cloud.google.com/go/storage"
	vision "cloud.google.com/go/vision/v2/apiv1"
	"github.com/ridge/must/v2"
	"google.golang.org/api/option"

	"github.com/visionex-project/visiondetect/detect/impl"
	"github.com/visionex-project/visiondetect/detect/impl/storage"
	"github.com/visionex-project/visiondetect/pkg/env"
	"github.com/visionex-project/visiondetect/pkg/secret"
)

func newDetector(ctx context.Context, path string, opts ...impl.Option) (*impl.Detector, func(), error) {
	visionClient, err := vision.NewImageAnnotatorClient(ctx, visionClientOptions(ctx)...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	closers := []io.Closer{visionClient}

	if storage.IsURI(path) {
		storageClient, err := gcs.NewClient(ctx)
		if err != nil {
			closeAll(closers)
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		closers = append(closers, storageClient)
		opts = append(opts, impl.WithStorage(storage.New(storageClient)))
	}

	return impl.New(visionClient, opts...), func() { closeAll(closers) }, nil
}

func closeAll(closers []io.Closer) {
	for _, closer := range closers {
		if err := closer.Close(); err != nil {
			log.Printf("Failed to close client: %v", err)
		}
	}
}

// Credentials default to Application Default Credentials (GOOGLE_APPLICATION_CREDENTIALS).
func visionClientOptions(ctx context.Context) []option.ClientOption {
	var opts []option.ClientOption
	if endpoint := env.StringVariable("VISION_ENDPOINT", ""); endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	if key := visionAPIKey(ctx); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	return opts
}

func visionAPIKey(ctx context.Context) string {
	// Check if a direct API key is provided (for local development)
	if key := os.Getenv("VISION_API_KEY"); key != "" {
		return key
	}

	secretName := env.StringVariable("VISION_API_KEY_SECRET_NAME", "")
	if secretName == "" {
		return ""
	}

	// Use GCP Secret Manager
	secretmanagerClient := must.OK1(secretmanager.NewClient(ctx))
	defer secretmanagerClient.Close()
	return must.OK1(secret.Latest(ctx, secretmanagerClient, env.RequiredStringVariable("GCP_PROJECT_ID"), secretName))
}
