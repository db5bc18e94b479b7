package commands

import (
	"errors"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/janiskrasemann/whisker/internal/logging"
	"github.com/janiskrasemann/whisker/internal/view"
)

func previewCmd() *cobra.Command {
	var (
		output    string
		noBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render one cat card to HTML and open it in a browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.vm.Close()

			file := view.NewFile(output, a.renderer, logger)
			a.vm.Attach(file)
			a.vm.OnInitComplete()
			a.vm.Wait()

			var path string
			select {
			case path = <-file.Written():
			default:
				return errors.New("no card was rendered, see warnings above")
			}

			if noBrowser {
				return nil
			}
			if err := exec.Command(openCommand(), path).Start(); err != nil {
				logger.Warn("Failed to open browser", logging.Err(err))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write HTML here instead of a temp file")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "do not open the rendered file")
	return cmd
}

func openCommand() string {
	switch runtime.GOOS {
	case "linux":
		return "xdg-open"
	default:
		return "open"
	}
}
