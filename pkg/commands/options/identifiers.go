package options

import "github.com/spf13/cobra"

// IDOptions toggles id display on list output.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the --show-ids flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-ids", "i", false,
		"Show record ids, needed for edit/remove/progress.")
}
