// Package cli implements the wayfarer command line.
//
// Running wayfarer with no arguments opens the interactive view when stdin
// and stdout are terminals and prints a plain overview otherwise. The
// subcommands print one page each:
//
//	wayfarer days                 itinerary table
//	wayfarer day <n>              one day's stops
//	wayfarer flights | stays      flight and accommodation pages
//	wayfarer guide <name>         worship, survival, driving, stretch, weather
//	wayfarer pack                 numbered packing checklist
//	wayfarer pack toggle <c> <i>  flip one item (1-based)
//	wayfarer pack pick            tick items off with a form
//	wayfarer logs                 tail the session log file
//
// Commands share one session opened in the root's PersistentPreRunE, so
// global flags (--config, --storage, --day-policy, --log-level) apply
// everywhere. Bad arguments return *UsageError, which ExitCode maps to 2.
package cli
