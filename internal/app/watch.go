package app

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chimera-tools/chimera-format/internal/watch"
)

const WatchCmdName = "watch"

func NewWatchCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   WatchCmdName + " [dir...] [-- args...]",
		Short: "Re-run the formatter whenever C or C++ sources change",
		Example: `
  chimera-format watch
  chimera-format watch ../Chimera ../source
  chimera-format watch ../source -- --dry-run`,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		dirs, passthrough := args, []string(nil)
		if at := cmd.ArgsLenAtDash(); at >= 0 {
			dirs, passthrough = args[:at], args[at:]
		}
		if len(dirs) == 0 {
			dirs = []string{"."}
		}
		return st.watch(cmd.Context(), dirs, passthrough, nil)
	}

	return cmd
}

// watch formats once, then again after every debounced batch of source
// changes below dirs. Runs never overlap; changes seen while a run is in
// progress collapse into at most one follow-up run.
func (s *state) watch(ctx context.Context, dirs, args []string, ready chan<- struct{}) error {
	w := watch.NewWatcher(watch.Options{
		Extensions: s.settings.Watch.Extensions,
		Exclude:    s.settings.Watch.Exclude,
		Debounce:   s.settings.Watch.Debounce,
	}, s.logger)

	triggers := make(chan string, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return w.Watch(gctx, dirs, func(path string) {
			select {
			case triggers <- path:
			default:
			}
		})
	})

	g.Go(func() error {
		select {
		case <-w.Ready:
		case <-gctx.Done():
			return gctx.Err()
		}
		s.formatOnce(gctx, args, "")
		if ready != nil {
			close(ready)
		}
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case path := <-triggers:
				s.formatOnce(gctx, args, path)
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		s.logger.Info("Interrupted by user")
		return nil
	}
	return err
}

func (s *state) formatOnce(ctx context.Context, args []string, changed string) {
	if changed != "" {
		s.logger.Info("Change detected, formatting", "path", changed)
	}
	code, err := s.launcher.Run(ctx, args)
	switch {
	case err != nil:
		s.logger.Error("Formatting failed", "error", err)
	case code != 0:
		s.logger.Warn("Formatting helper exited with non-zero status", "status", code)
	default:
		s.logger.Info("Formatting complete")
	}
}
