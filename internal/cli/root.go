// Package cli wires the cobra command tree. Without a subcommand the desktop
// window is opened; info and get run the same fetch and download workflows
// in the terminal.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/yt-downloader/internal/config"
	"github.com/ytget/yt-downloader/internal/download"
	"github.com/ytget/yt-downloader/internal/youtube"
)

const (
	ExitOK            = 0
	ExitCLIError      = 1
	ExitResolveError  = 2
	ExitDownloadError = 3
)

// ExitError wraps an error with a process exit code. A nil Err means the
// failure was already reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// env is shared by all commands of one invocation.
type env struct {
	version      string
	viper        *viper.Viper
	opts         config.Options
	newResolver  func(cfg youtube.Config) youtube.Resolver
	downloadOpts []download.Option
}

func defaultResolver(cfg youtube.Config) youtube.Resolver {
	return youtube.NewClient(cfg)
}

func newRootCmd(e *env) *cobra.Command {
	d := config.DefaultOptions()

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Download YouTube videos as MP4, MP3 or legacy MP4",
		Long:          "yt-downloader fetches the streams of a YouTube video and saves one of three variants into the working directory: video.mp4 (highest resolution, no audio), audio.mp3 (highest bitrate audio) or legacy.mp4 (progressive audio and video). Run without arguments to open the window.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Init(cmd.Root().PersistentFlags(), e.viper); err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			e.opts = config.Load(e.viper)
			setupLogging(cmd.ErrOrStderr(), e.opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(e)
		},
	}

	// Persistent flags available to all subcommands
	flags := root.PersistentFlags()
	flags.BoolP("verbose", "v", d.Verbose, "Enable debug logging")
	flags.Duration("timeout", d.Timeout, "HTTP timeout per request")
	flags.Int("retries", d.Retries, "Extra attempts for requests failing with a network error or 5xx")
	flags.String("user-agent", d.UserAgent, "Override the HTTP User-Agent header")
	flags.Bool("reuse-media", d.ReuseMedia, "Reuse fetched details for downloads instead of resolving again")

	root.AddCommand(newInfoCmd(e))
	root.AddCommand(newGetCmd(e))
	root.AddCommand(newVersionCmd(e))

	return root
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context, version string) error {
	e := &env{
		version:     version,
		viper:       viper.New(),
		newResolver: defaultResolver,
	}
	return newRootCmd(e).ExecuteContext(ctx)
}
