// Package cmdutil provides the flags and the load, reconcile and save
// cycle shared by the e2settings commands.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// ChangeFlags holds the flags of commands that modify the settings.
type ChangeFlags struct {
	DryRun bool
}

// AddChangeFlags adds --dry-run to a command.
func AddChangeFlags(cmd *cobra.Command) *ChangeFlags {
	flags := &ChangeFlags{}
	cmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false,
		"Show what would change without writing files")
	return flags
}

// CleanupFlags selects the cleanup operations to run.
type CleanupFlags struct {
	EmptyMarkers     bool
	EmptyBouquets    bool
	Streams          bool
	InvalidItems     bool
	Duplicates       bool
	OrphanedServices bool
	KeepMarkers      []string
}

// AddCleanupFlags adds the cleanup selection flags to a command.
func AddCleanupFlags(cmd *cobra.Command) *CleanupFlags {
	flags := &CleanupFlags{}
	cmd.Flags().BoolVar(&flags.EmptyMarkers, "empty-markers", true,
		"Remove markers that head no entries")
	cmd.Flags().BoolVar(&flags.EmptyBouquets, "empty-bouquets", true,
		"Remove bouquets without items")
	cmd.Flags().BoolVar(&flags.Streams, "streams", false,
		"Remove IPTV stream entries")
	cmd.Flags().BoolVar(&flags.InvalidItems, "invalid", true,
		"Remove bouquet items whose reference does not resolve")
	cmd.Flags().BoolVar(&flags.Duplicates, "duplicates", true,
		"Remove repeated entries within a bouquet")
	cmd.Flags().BoolVar(&flags.OrphanedServices, "orphans", false,
		"Remove services whose transponder is missing")
	cmd.Flags().StringSliceVar(&flags.KeepMarkers, "keep-marker", nil,
		"Marker label to keep even when empty (repeatable, adds to keep_markers)")
	return flags
}
