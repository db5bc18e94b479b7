package commands

import (
	"github.com/spf13/cobra"

	"github.com/janiskrasemann/whisker/internal/view"
)

func onceCmd() *cobra.Command {
	var noMail bool

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Fetch one cat card, print it and mail it when configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.vm.Close()

			views := view.Multi{view.NewConsole(cmd.OutOrStdout(), a.renderer, logger)}
			if a.mail != nil && !noMail {
				views = append(views, a.mail)
			}
			a.vm.Attach(views)

			a.vm.OnInitComplete()
			a.vm.Wait()
			return nil
		},
	}

	cmd.Flags().BoolVar(&noMail, "no-mail", false, "print only, even when email is configured")
	return cmd
}
