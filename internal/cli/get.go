package cli

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-downloader/internal/download"
	"github.com/ytget/yt-downloader/internal/model"
	"github.com/ytget/yt-downloader/internal/platform"
	"github.com/ytget/yt-downloader/internal/session"
	"github.com/ytget/yt-downloader/internal/youtube"
)

func newGetCmd(e *env) *cobra.Command {
	var variantFlag string

	cmd := &cobra.Command{
		Use:   "get <url>",
		Short: "Download one variant into the working directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := model.ParseVariant(variantFlag)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			dir, err := platform.WorkingDirectory()
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}

			presenter := newConsolePresenter(cmd.OutOrStdout(), cmd.ErrOrStderr())
			ctrl := session.NewController(session.NewState(), e.newResolver(e.opts.ClientConfig()), presenter, session.Immediate)
			opts := append([]download.Option{download.WithReuseMedia(e.opts.ReuseMedia)}, e.downloadOpts...)
			coord := download.NewCoordinator(dir, ctrl, opts...)

			bar := newTaskBar(cmd.ErrOrStderr())
			coord.SetUpdateCallback(bar.update)

			task, err := coord.Download(args[0], variant)
			if err != nil {
				if errors.Is(err, youtube.ErrInvalidURL) {
					return &ExitError{Code: ExitCLIError}
				}
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			coord.Wait()

			final, _ := coord.GetTask(task.ID)
			switch {
			case final != nil && final.Status == model.TaskStatusCompleted:
				return nil
			case final != nil && final.FailedIn == model.TaskStatusResolving:
				return &ExitError{Code: ExitResolveError}
			default:
				return &ExitError{Code: ExitDownloadError}
			}
		},
	}

	cmd.Flags().StringVar(&variantFlag, "variant", model.VariantVideoOnly.String(), "Variant to download: mp4, legacy or mp3")
	return cmd
}

// taskBar drives a terminal progress bar from task updates.
type taskBar struct {
	mu  sync.Mutex
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newTaskBar(w io.Writer) *taskBar {
	return &taskBar{w: w}
}

func (b *taskBar) update(task *model.DownloadTask) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case task.Status == model.TaskStatusDownloading:
		if b.bar == nil {
			max := task.Total
			if max <= 0 {
				max = -1 // spinner when the size is unknown
			}
			b.bar = progressbar.NewOptions64(
				max,
				progressbar.OptionSetWriter(b.w),
				progressbar.OptionSetDescription(fmt.Sprintf("%s @ %s", task.Variant.Label(), task.Quality)),
				progressbar.OptionShowBytes(true),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "=",
					SaucerHead:    ">",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(b.w)
				}),
			)
		}
		_ = b.bar.Set64(task.Written)
	case task.Status == model.TaskStatusCompleted && b.bar != nil:
		_ = b.bar.Finish()
	}
}
