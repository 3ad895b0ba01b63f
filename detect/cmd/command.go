package main

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visionex-project/visiondetect/detect/impl"
)

const longDescription = `Detects text in an image with the Google Cloud Vision API.

Commands:
	text | isbn | lotto
	(faces | labels | landmarks | logos | safe-search | properties | web | crop are not supported by this client)
Path:
	A file path (ex: ./resources/wakeupcat.jpg), a URI for a Cloud Storage resource (gs://...)
	or an http(s) image URL`

// Creates a detector for the given input path. The returned func releases every client the detector holds.
type detectorFactory func(ctx context.Context, path string, opts ...impl.Option) (*impl.Detector, func(), error)

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer, factory detectorFactory) int {
	reporter := impl.NewReporter(stdout, stderr)

	root := newRootCommand(reporter, factory)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return reporter.Fail(root.ExecuteContext(ctx))
}

func newRootCommand(reporter *impl.Reporter, factory detectorFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "detect <command> <path>",
		Short:         "Detects text in an image with the Google Cloud Vision API",
		Long:          longDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		// Reached only when no known subcommand matched.
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			_, err := impl.ParseMode(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &impl.UsageError{Message: err.Error()}
	})

	root.AddCommand(
		newTextCommand(reporter, factory),
		newISBNCommand(reporter, factory),
		newLottoCommand(reporter, factory),
	)
	return root
}

func newTextCommand(reporter *impl.Reporter, factory detectorFactory) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   string(impl.ModeText) + " <path>",
		Short: "Prints every detected text with its position",
		Args:  exactlyOnePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDetector(cmd.Context(), factory, args[0], nil, func(detector *impl.Detector) error {
				if asJSON {
					result, err := detector.DetectJSON(cmd.Context(), args[0])
					reporter.Print(result)
					return err
				}
				result, err := detector.Detect(cmd.Context(), impl.ModeText, args[0])
				reporter.Print(result)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw service response as JSON")
	return cmd
}

func newISBNCommand(reporter *impl.Reporter, factory detectorFactory) *cobra.Command {
	return &cobra.Command{
		Use:   string(impl.ModeISBN) + " <path>",
		Short: `Prints the text that follows the word "ISBN"`,
		Args:  exactlyOnePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDetector(cmd.Context(), factory, args[0], nil, func(detector *impl.Detector) error {
				result, err := detector.Detect(cmd.Context(), impl.ModeISBN, args[0])
				reporter.Print(result)
				return err
			})
		},
	}
}

func newLottoCommand(reporter *impl.Reporter, factory detectorFactory) *cobra.Command {
	var match bool
	cmd := &cobra.Command{
		Use:   string(impl.ModeLotto) + " <path>",
		Short: "Lists detected texts while looking for lottery numbers",
		Args:  exactlyOnePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []impl.Option{impl.WithLottoMatching(match)}
			return withDetector(cmd.Context(), factory, args[0], opts, func(detector *impl.Detector) error {
				result, err := detector.Detect(cmd.Context(), impl.ModeLotto, args[0])
				reporter.Print(result)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&match, "match", false, "return the first text matching "+impl.LottoPattern.String())
	return cmd
}

func exactlyOnePath(cmd *cobra.Command, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return &impl.UsageError{Message: "usage: detect " + cmd.Use}
	}
	return nil
}

// Runs fn with a detector whose clients are released on every return path.
func withDetector(ctx context.Context, factory detectorFactory, path string, opts []impl.Option, fn func(*impl.Detector) error) error {
	detector, release, err := factory(ctx, path, opts...)
	if err != nil {
		return err
	}
	defer release()

	return fn(detector)
}
