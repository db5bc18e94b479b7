// Package commands defines the whisker CLI and wires dependencies for subcommands.
//
// Commands
//
//   - once      Fetch one cat card, print it and mail it when email is configured
//   - preview   Render one card to an HTML file and open it in a browser
//   - serve     Produce a card on a cron schedule and expose /metrics
//
// # Implementation
//
// The root command loads the config file and builds the logger before any
// subcommand runs. Each subcommand builds its own view-model scoped to the
// command's context, attaches the views it needs and triggers runs.
package commands
