package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"
	"github.com/handsomefox/modelfetch/api"
	"github.com/handsomefox/modelfetch/fetcher"
	"github.com/handsomefox/modelfetch/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	args := defaultArgs()
	arg.MustParse(&args)

	logging.Setup(nil, args.Verbose)

	log.Debug().Any("app_arguments", args).Send()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, &args, os.Stdout)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("error running the app")
	}
}

func run(ctx context.Context, args *AppArguments, out io.Writer) error {
	base, err := api.NewRepoURL(args.Host, args.ModelID, args.Revision)
	if err != nil {
		return err
	}
	client := api.DefaultClient().WithBaseURL(base).WithTimeout(args.Timeout)

	manifest := fetcher.DefaultManifest
	if len(args.Files) != 0 {
		manifest = fetcher.Manifest(args.Files)
	}

	f := fetcher.New(client, args.Directory, fetcher.NewReporter(out))
	summary, err := f.RunAll(ctx, manifest)
	if err != nil {
		return err
	}

	log.Info().
		Int("ready", summary.Ready).
		Int("failed", summary.Failed).
		Int("total", summary.Total).
		Msg("Finished downloading")

	return nil
}
