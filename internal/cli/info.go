package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-downloader/internal/session"
	"github.com/ytget/yt-downloader/internal/youtube"
)

func newInfoCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "info <url>",
		Short: "Show the title and the best stream of each variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presenter := newConsolePresenter(cmd.OutOrStdout(), cmd.ErrOrStderr())
			ctrl := session.NewController(session.NewState(), e.newResolver(e.opts.ClientConfig()), presenter, session.Immediate)

			if _, err := ctrl.Fetch(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, youtube.ErrInvalidURL) {
					return &ExitError{Code: ExitCLIError}
				}
				return &ExitError{Code: ExitResolveError}
			}
			return nil
		},
	}
}
